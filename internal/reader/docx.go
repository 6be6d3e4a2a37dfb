// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reader

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// readDocx opens the archive and reduces its document XML to plain text.
func readDocx(path string) (string, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer r.Close()

	text, err := docxText(r.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("extracting text of %s: %w", path, err)
	}
	return text, nil
}

// docxText extracts the readable text of WordprocessingML markup. The docx
// library exposes the raw document XML only, so character data is collected
// with a token walk: text lives in w:t elements, w:p ends become newlines,
// w:tab and w:br become their plain-text equivalents.
func docxText(content string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))
	var sb strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parsing document xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteString("\t")
			case "br":
				sb.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
