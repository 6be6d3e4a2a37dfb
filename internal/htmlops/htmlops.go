// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package htmlops implements the HTML transformations behind the html_*
// operations: sanitizing, visible-text extraction, Markdown conversion,
// resource listing, and pretty-printing. Functions are pure; persistence
// belongs to the caller.
package htmlops

import (
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yosssi/gohtml"
	"golang.org/x/net/html"
)

// Clean sanitizes markup with the user-generated-content policy: script and
// style subtrees, inline event handlers, and embedded frames are stripped
// while benign formatting survives.
func Clean(input string) string {
	return bluemonday.UGCPolicy().Sanitize(input)
}

// ToMarkdown converts markup to Markdown.
func ToMarkdown(input string) (string, error) {
	out, err := md.NewConverter("", true, nil).ConvertString(input)
	if err != nil {
		return "", fmt.Errorf("converting to markdown: %w", err)
	}
	return out, nil
}

// Format re-indents markup for readability. The document structure is
// untouched.
func Format(input string) string {
	return gohtml.Format(input)
}

// blockTags are the elements that force a line break during text
// extraction.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"table": true, "ul": true, "ol": true, "blockquote": true, "pre": true,
	"article": true, "section": true, "header": true, "footer": true,
}

// ToText extracts the visible text of markup. Script and style subtrees are
// skipped, block elements become line breaks, lines are trimmed, and blank
// runs collapse to one.
func ToText(input string) (string, error) {
	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		block := n.Type == html.ElementNode && blockTags[n.Data]
		if block {
			sb.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			sb.WriteString("\n")
		}
	}
	walk(doc)

	return tidyText(sb.String()), nil
}

// Resource is one external asset referenced by a document.
type Resource struct {
	// Tag is the referencing element: img, script, link, or a.
	Tag string

	// URL is the reference exactly as written in the document.
	URL string
}

// resourceAttrs maps referencing elements to the attribute carrying the
// reference.
var resourceAttrs = map[string]string{
	"img":    "src",
	"script": "src",
	"link":   "href",
	"a":      "href",
}

// ExtractResources lists every img, script, link, and anchor reference in
// document order. Elements without the relevant attribute, or with a blank
// one, are skipped.
func ExtractResources(input string) ([]Resource, error) {
	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	var resources []Resource
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if attr, ok := resourceAttrs[n.Data]; ok {
				for _, a := range n.Attr {
					if a.Key == attr && strings.TrimSpace(a.Val) != "" {
						resources = append(resources, Resource{Tag: n.Data, URL: a.Val})
						break
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return resources, nil
}

// FormatResources renders resources one per line as "tag url".
func FormatResources(resources []Resource) string {
	var sb strings.Builder
	for _, r := range resources {
		fmt.Fprintf(&sb, "%s %s\n", r.Tag, r.URL)
	}
	return sb.String()
}

// tidyText trims every line and collapses the blank-line runs left behind
// by nested block elements.
func tidyText(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, line)
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}
