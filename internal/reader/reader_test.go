// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reader

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// makeTextPDF writes a one-page PDF containing text drawn with the built-in
// Helvetica font. Object offsets are recorded while building so the xref
// table is exact.
func makeTextPDF(t *testing.T, path, text string) {
	t.Helper()

	var buf bytes.Buffer
	var offsets []int
	addObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")
	addObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	addObj("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	addObj("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
		"/Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>\nendobj\n")
	stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	addObj(fmt.Sprintf("4 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream))
	addObj("5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefPos)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

// makeDocx writes a minimal WordprocessingML archive with one w:p per
// paragraph.
func makeDocx(t *testing.T, path string, paragraphs []string) {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		fmt.Fprintf(&body, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", p)
	}

	entries := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`,
		"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>` + body.String() + `</w:body>
</w:document>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestReadPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	content := "line one\nline two\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != content {
		t.Errorf("Read() = %q, want %q", got, content)
	}
}

func TestReadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.tar")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Read(path)
	if err == nil {
		t.Fatal("Read() of .tar succeeded, want error")
	}
	if !strings.Contains(err.Error(), ".tar") {
		t.Errorf("error %q does not name the extension", err)
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Read() of missing file succeeded, want error")
	}
}

func TestReadHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte("<h1>Title</h1><p>Body text.</p><script>nope()</script>"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !strings.Contains(got, "Title") || !strings.Contains(got, "Body text.") {
		t.Errorf("Read() = %q, want title and body text", got)
	}
	if strings.Contains(got, "nope()") {
		t.Errorf("Read() kept script content: %q", got)
	}
}

func TestReadPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	makeTextPDF(t, path, "Hello PDF")

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !strings.Contains(got, "Hello PDF") {
		t.Errorf("Read() = %q, want it to contain %q", got, "Hello PDF")
	}
}

func TestReadPDFCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Read(path); err == nil {
		t.Error("Read() of corrupt pdf succeeded, want error")
	}
}

func TestReadDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memo.docx")
	makeDocx(t, path, []string{"First paragraph", "Second paragraph"})

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := "First paragraph\nSecond paragraph\n"
	if got != want {
		t.Errorf("Read() = %q, want %q", got, want)
	}
}

func TestReadDocxCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	if err := os.WriteFile(path, []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Read(path); err == nil {
		t.Error("Read() of corrupt docx succeeded, want error")
	}
}

func TestReadSpreadsheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.xlsx")

	f := excelize.NewFile()
	for cell, value := range map[string]any{
		"A1": "name", "B1": "qty",
		"A2": "widget", "B2": 42,
	} {
		if err := f.SetCellValue("Sheet1", cell, value); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SetCellBool("Sheet1", "C2", true); err != nil {
		t.Fatal(err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !strings.HasPrefix(got, "# Sheet1\n") {
		t.Errorf("Read() = %q, want sheet heading first", got)
	}
	if !strings.Contains(got, "name\tqty") {
		t.Errorf("Read() = %q, want header row", got)
	}
	if !strings.Contains(got, "widget\t42\ttrue") {
		t.Errorf("Read() = %q, want data row with number and bool rendering", got)
	}
}

func TestDocxText(t *testing.T) {
	content := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:r><w:t>a</w:t></w:r><w:r><w:tab/><w:t>b</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>c</w:t><w:br/><w:t>d</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	got, err := docxText(content)
	if err != nil {
		t.Fatalf("docxText() error = %v", err)
	}
	want := "a\tb\nc\nd\n"
	if got != want {
		t.Errorf("docxText() = %q, want %q", got, want)
	}
}

func TestClassifyCell(t *testing.T) {
	tests := []struct {
		raw      string
		cellType excelize.CellType
		want     string
		kind     CellKind
	}{
		{"", excelize.CellTypeNumber, "", CellNull},
		{"42", excelize.CellTypeNumber, "42", CellNumber},
		{"3.5", excelize.CellTypeNumber, "3.5", CellNumber},
		{"TRUE", excelize.CellTypeBool, "true", CellBool},
		{"FALSE", excelize.CellTypeBool, "false", CellBool},
		{"hello", excelize.CellTypeSharedString, "hello", CellString},
		{"7", excelize.CellTypeSharedString, "7", CellString},
		{"not a number", excelize.CellTypeUnset, "not a number", CellString},
	}
	for _, tt := range tests {
		got := classifyCell(tt.raw, tt.cellType)
		if got.Kind != tt.kind {
			t.Errorf("classifyCell(%q, %v).Kind = %v, want %v", tt.raw, tt.cellType, got.Kind, tt.kind)
		}
		if got.String() != tt.want {
			t.Errorf("classifyCell(%q, %v).String() = %q, want %q", tt.raw, tt.cellType, got.String(), tt.want)
		}
	}
}
