// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dispatch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/doctool/internal/fileutil"
	"github.com/pdiddy/doctool/internal/htmlops"
	"github.com/pdiddy/doctool/internal/office"
	"github.com/pdiddy/doctool/internal/pdfops"
	"github.com/pdiddy/doctool/internal/reader"
	"github.com/pdiddy/doctool/internal/textops"
	"github.com/pdiddy/doctool/internal/transcode"
)

// handlers implements the operations. All I/O happens here: engines compute,
// handlers read inputs, persist outputs under identifier-qualified names,
// and report the written paths.
type handlers struct {
	deps Deps
}

func (h *handlers) documentReader(req readerRequest) Result {
	text, err := reader.Read(req.FilePath)
	if err != nil {
		return failErr(err)
	}
	return Result{Success: true, Data: text}
}

func (h *handlers) pdfMerger(req mergeRequest) Result {
	if err := fileutil.EnsureDir(req.OutputDir); err != nil {
		return failErr(err)
	}
	outPath := filepath.Join(req.OutputDir, fmt.Sprintf("merged_%s.pdf", fileutil.NewID()))

	pages, err := pdfops.Merge(req.InputPaths, outPath)
	if err != nil {
		return failErr(err)
	}
	return succeed("merged %d files (%d pages) into %s", len(req.InputPaths), pages, outPath)
}

func (h *handlers) pdfSplitter(req splitRequest) Result {
	docs, err := pdfops.ExtractRanges(req.InputPath, req.Ranges)
	if err != nil {
		return failErr(err)
	}
	if err := fileutil.EnsureDir(req.OutputDir); err != nil {
		return failErr(err)
	}

	id := fileutil.NewID()
	paths := make([]string, 0, len(docs))
	for i, doc := range docs {
		path := filepath.Join(req.OutputDir, fmt.Sprintf("split_%s_%d.pdf", id, i+1))
		if err := fileutil.WriteFileAtomic(path, doc); err != nil {
			return failErr(err)
		}
		paths = append(paths, path)
	}
	return succeed("split %s into %d files: %s", req.InputPath, len(paths), strings.Join(paths, ", "))
}

// renderer returns the office collaborator or a failure when none is wired.
func (h *handlers) renderer(inputPath string) (office.Renderer, *Result) {
	if !strings.EqualFold(filepath.Ext(inputPath), ".docx") {
		res := fail("unsupported file extension %q: input must be a .docx file", filepath.Ext(inputPath))
		return nil, &res
	}
	if h.deps.Office == nil {
		res := fail("no office renderer available")
		return nil, &res
	}
	return h.deps.Office, nil
}

func (h *handlers) docxToPDF(req renderRequest) Result {
	r, failure := h.renderer(req.InputPath)
	if failure != nil {
		return *failure
	}
	if err := fileutil.EnsureDir(filepath.Dir(req.OutputPath)); err != nil {
		return failErr(err)
	}
	if err := r.ConvertToPDF(req.InputPath, req.OutputPath); err != nil {
		return failErr(err)
	}
	return succeed("converted %s to %s", req.InputPath, req.OutputPath)
}

func (h *handlers) docxToHTML(req transformRequest) Result {
	r, failure := h.renderer(req.InputPath)
	if failure != nil {
		return *failure
	}
	if err := fileutil.EnsureDir(req.OutputDir); err != nil {
		return failErr(err)
	}
	outPath := filepath.Join(req.OutputDir,
		fmt.Sprintf("%s_%s.html", fileutil.Stem(req.InputPath), fileutil.NewID()))
	if err := r.ConvertToHTML(req.InputPath, outPath); err != nil {
		return failErr(err)
	}
	return succeed("converted %s to %s", req.InputPath, outPath)
}

// transformFile runs one read-transform-write cycle: it reads the input,
// applies fn, and persists the result under an identifier-qualified name
// derived from the input's stem plus suffix and ext.
func (h *handlers) transformFile(req transformRequest, suffix, ext string, fn func(string) (string, error)) Result {
	data, err := os.ReadFile(req.InputPath)
	if err != nil {
		return fail("reading %s: %v", req.InputPath, err)
	}
	out, err := fn(string(data))
	if err != nil {
		return failErr(err)
	}

	if err := fileutil.EnsureDir(req.OutputDir); err != nil {
		return failErr(err)
	}
	outPath := filepath.Join(req.OutputDir,
		fmt.Sprintf("%s%s_%s%s", fileutil.Stem(req.InputPath), suffix, fileutil.NewID(), ext))
	if err := fileutil.WriteFileAtomic(outPath, []byte(out)); err != nil {
		return failErr(err)
	}
	return succeed("wrote %s", outPath)
}

func (h *handlers) htmlCleaner(req transformRequest) Result {
	return h.transformFile(req, "_cleaned", ".html", func(s string) (string, error) {
		return htmlops.Clean(s), nil
	})
}

func (h *handlers) htmlToText(req transformRequest) Result {
	return h.transformFile(req, "", ".txt", htmlops.ToText)
}

func (h *handlers) htmlToMarkdown(req transformRequest) Result {
	return h.transformFile(req, "", ".md", htmlops.ToMarkdown)
}

func (h *handlers) htmlExtractResources(req transformRequest) Result {
	return h.transformFile(req, "_resources", ".txt", func(s string) (string, error) {
		resources, err := htmlops.ExtractResources(s)
		if err != nil {
			return "", err
		}
		return htmlops.FormatResources(resources), nil
	})
}

func (h *handlers) htmlFormatter(req transformRequest) Result {
	return h.transformFile(req, "_formatted", ".html", func(s string) (string, error) {
		return htmlops.Format(s), nil
	})
}

func (h *handlers) textFormatter(req transformRequest) Result {
	return h.transformFile(req, "_formatted", ".txt", func(s string) (string, error) {
		return textops.Normalize(s), nil
	})
}

func (h *handlers) textEncodingConverter(req encodeRequest) Result {
	data, err := os.ReadFile(req.InputPath)
	if err != nil {
		return fail("reading %s: %v", req.InputPath, err)
	}
	out, err := transcode.Convert(data, req.FromEncoding, req.ToEncoding)
	if err != nil {
		return failErr(err)
	}

	if err := fileutil.EnsureDir(req.OutputDir); err != nil {
		return failErr(err)
	}
	outPath := filepath.Join(req.OutputDir, fmt.Sprintf("%s_%s_%s%s",
		fileutil.Stem(req.InputPath),
		strings.ToLower(req.ToEncoding),
		fileutil.NewID(),
		filepath.Ext(req.InputPath)))
	if err := fileutil.WriteFileAtomic(outPath, out); err != nil {
		return failErr(err)
	}
	return succeed("converted %s from %s to %s: %s", req.InputPath, req.FromEncoding, req.ToEncoding, outPath)
}

func (h *handlers) textDiff(req diffRequest) Result {
	a, err := os.ReadFile(req.File1Path)
	if err != nil {
		return fail("reading %s: %v", req.File1Path, err)
	}
	b, err := os.ReadFile(req.File2Path)
	if err != nil {
		return fail("reading %s: %v", req.File2Path, err)
	}
	report := textops.Diff(string(a), string(b))

	if err := fileutil.EnsureDir(req.OutputDir); err != nil {
		return failErr(err)
	}
	outPath := filepath.Join(req.OutputDir, fmt.Sprintf("diff_%s.txt", fileutil.NewID()))
	if err := fileutil.WriteFileAtomic(outPath, []byte(report)); err != nil {
		return failErr(err)
	}
	return succeed("wrote diff of %s and %s to %s", req.File1Path, req.File2Path, outPath)
}

func (h *handlers) textSplitter(req partitionRequest) Result {
	data, err := os.ReadFile(req.InputPath)
	if err != nil {
		return fail("reading %s: %v", req.InputPath, err)
	}

	var fragments []string
	switch req.SplitBy {
	case splitByLines:
		fragments, err = textops.SplitByLines(string(data), req.LineCount)
	case splitByDelimiter:
		fragments, err = textops.SplitByDelimiter(string(data), req.Delimiter)
	}
	if err != nil {
		return failErr(err)
	}

	if err := fileutil.EnsureDir(req.OutputDir); err != nil {
		return failErr(err)
	}
	id := fileutil.NewID()
	paths := make([]string, 0, len(fragments))
	for i, frag := range fragments {
		path := filepath.Join(req.OutputDir, fmt.Sprintf("part_%s_%d.txt", id, i+1))
		if err := fileutil.WriteFileAtomic(path, []byte(frag)); err != nil {
			return failErr(err)
		}
		paths = append(paths, path)
	}
	return succeed("split %s into %d fragments: %s", req.InputPath, len(paths), strings.Join(paths, ", "))
}
