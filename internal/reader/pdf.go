// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reader

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// readPDF concatenates the plain text of every page, one page per line
// group. Extraction is best-effort within a readable document: a page whose
// content stream fails to decode is skipped rather than failing the file.
func readPDF(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil || text == "" {
			continue
		}
		sb.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}
