// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package htmlops

import (
	"strings"
	"testing"
)

const samplePage = `<html><head>
<link rel="stylesheet" href="styles/main.css">
<script src="app.js"></script>
<style>body { color: red; }</style>
</head><body>
<h1>Report</h1>
<p>First paragraph with a <a href="https://example.com/more">link</a>.</p>
<p>Second   paragraph.</p>
<img src="figures/plot.png" alt="plot">
<script>alert("injected");</script>
</body></html>`

func TestClean(t *testing.T) {
	got := Clean(samplePage)

	if strings.Contains(got, "<script") || strings.Contains(got, "alert(") {
		t.Errorf("Clean() kept script content:\n%s", got)
	}
	if strings.Contains(got, "<style") {
		t.Errorf("Clean() kept style element:\n%s", got)
	}
	if !strings.Contains(got, "First paragraph") {
		t.Errorf("Clean() dropped benign text:\n%s", got)
	}
	if !strings.Contains(got, "<p>") {
		t.Errorf("Clean() dropped benign markup:\n%s", got)
	}
}

func TestCleanStripsEventHandlers(t *testing.T) {
	got := Clean(`<p onclick="steal()">hello</p>`)

	if strings.Contains(got, "onclick") {
		t.Errorf("Clean() kept event handler: %q", got)
	}
	if !strings.Contains(got, "hello") {
		t.Errorf("Clean() dropped text content: %q", got)
	}
}

func TestToText(t *testing.T) {
	got, err := ToText(samplePage)
	if err != nil {
		t.Fatalf("ToText() error = %v", err)
	}

	for _, want := range []string{"Report", "First paragraph with a link.", "Second   paragraph."} {
		if !strings.Contains(got, want) {
			t.Errorf("ToText() missing %q:\n%s", want, got)
		}
	}
	for _, banned := range []string{"alert(", "color: red", "<p>", "<h1>"} {
		if strings.Contains(got, banned) {
			t.Errorf("ToText() kept %q:\n%s", banned, got)
		}
	}

	// Block elements separate lines: the heading and the paragraph must not
	// share one.
	for _, line := range strings.Split(got, "\n") {
		if strings.Contains(line, "Report") && strings.Contains(line, "First paragraph") {
			t.Errorf("heading and paragraph share a line: %q", line)
		}
	}
}

func TestToTextCollapsesBlankRuns(t *testing.T) {
	got, err := ToText("<div><div><div><p>deep</p></div></div></div><p>after</p>")
	if err != nil {
		t.Fatalf("ToText() error = %v", err)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("ToText() left a multi-blank run: %q", got)
	}
}

func TestToMarkdown(t *testing.T) {
	got, err := ToMarkdown(`<h1>Title</h1><p>Hello <strong>world</strong>, see <a href="https://example.com">docs</a>.</p>`)
	if err != nil {
		t.Fatalf("ToMarkdown() error = %v", err)
	}

	for _, want := range []string{"# Title", "**world**", "[docs](https://example.com)"} {
		if !strings.Contains(got, want) {
			t.Errorf("ToMarkdown() missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "<h1>") || strings.Contains(got, "<p>") {
		t.Errorf("ToMarkdown() kept raw markup:\n%s", got)
	}
}

func TestExtractResources(t *testing.T) {
	got, err := ExtractResources(samplePage)
	if err != nil {
		t.Fatalf("ExtractResources() error = %v", err)
	}

	want := []Resource{
		{Tag: "link", URL: "styles/main.css"},
		{Tag: "script", URL: "app.js"},
		{Tag: "a", URL: "https://example.com/more"},
		{Tag: "img", URL: "figures/plot.png"},
	}
	if len(got) != len(want) {
		t.Fatalf("ExtractResources() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("resource %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExtractResourcesSkipsBlank(t *testing.T) {
	got, err := ExtractResources(`<a href="">empty</a><a name="anchor-only">no href</a><img src="ok.png">`)
	if err != nil {
		t.Fatalf("ExtractResources() error = %v", err)
	}
	if len(got) != 1 || got[0].URL != "ok.png" {
		t.Errorf("ExtractResources() = %v, want only ok.png", got)
	}
}

func TestFormatResources(t *testing.T) {
	got := FormatResources([]Resource{
		{Tag: "img", URL: "a.png"},
		{Tag: "a", URL: "https://example.com"},
	})
	want := "img a.png\na https://example.com\n"
	if got != want {
		t.Errorf("FormatResources() = %q, want %q", got, want)
	}
}

func TestFormat(t *testing.T) {
	got := Format("<div><p>a</p><p>b</p></div>")

	if !strings.Contains(got, "\n") {
		t.Errorf("Format() produced no line breaks: %q", got)
	}
	for _, want := range []string{"<div>", "<p>", "a", "b", "</div>"} {
		if !strings.Contains(got, want) {
			t.Errorf("Format() lost %q: %q", want, got)
		}
	}
	// Nested content gains indentation.
	indented := false
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			indented = true
			break
		}
	}
	if !indented {
		t.Errorf("Format() produced no indentation:\n%s", got)
	}
}
