// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reader extracts the plain text of documents, dispatching on file
// extension. PDF, DOCX, and XLSX files go through their parsing libraries;
// HTML goes through the HTML engine; plain-text formats are returned as-is.
package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/doctool/internal/htmlops"
)

// Read extracts the text content of the file at path. The extension decides
// the backend; an extension no backend claims is rejected before any read.
func Read(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return readPDF(path)
	case ".docx":
		return readDocx(path)
	case ".xlsx":
		return readSpreadsheet(path)
	case ".html", ".htm":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return htmlops.ToText(string(data))
	case ".txt", ".md", ".csv", ".log":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported file extension %q", ext)
	}
}
