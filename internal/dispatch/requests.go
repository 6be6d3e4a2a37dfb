// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dispatch

import (
	"fmt"

	"github.com/pdiddy/doctool/pkg/types"
)

// Each operation family gets a typed request struct and a parse function
// that is its complete argument shape check. Handlers never touch the raw
// bag; operations with identical shapes share a struct.

// readerRequest carries the arguments of document_reader.
type readerRequest struct {
	FilePath string
}

func parseReader(args map[string]any) (readerRequest, error) {
	path, err := requireString(args, "filePath")
	if err != nil {
		return readerRequest{}, err
	}
	return readerRequest{FilePath: path}, nil
}

// mergeRequest carries the arguments of pdf_merger.
type mergeRequest struct {
	InputPaths []string
	OutputDir  string
}

func parseMerge(args map[string]any) (mergeRequest, error) {
	paths, err := requireStringList(args, "inputPaths")
	if err != nil {
		return mergeRequest{}, err
	}
	dir, err := requireString(args, "outputDir")
	if err != nil {
		return mergeRequest{}, err
	}
	return mergeRequest{InputPaths: paths, OutputDir: dir}, nil
}

// splitRequest carries the arguments of pdf_splitter.
type splitRequest struct {
	InputPath string
	OutputDir string
	Ranges    []types.PageRange
}

func parseSplit(args map[string]any) (splitRequest, error) {
	var req splitRequest
	var err error
	if req.InputPath, err = requireString(args, "inputPath"); err != nil {
		return req, err
	}
	if req.OutputDir, err = requireString(args, "outputDir"); err != nil {
		return req, err
	}
	if req.Ranges, err = requireRangeList(args, "pageRanges"); err != nil {
		return req, err
	}
	return req, nil
}

// renderRequest carries the arguments of docx_to_pdf, the one operation
// whose caller names the exact output file.
type renderRequest struct {
	InputPath  string
	OutputPath string
}

func parseRender(args map[string]any) (renderRequest, error) {
	var req renderRequest
	var err error
	if req.InputPath, err = requireString(args, "inputPath"); err != nil {
		return req, err
	}
	if req.OutputPath, err = requireString(args, "outputPath"); err != nil {
		return req, err
	}
	return req, nil
}

// transformRequest carries the arguments shared by docx_to_html, the html_*
// operations, and text_formatter: one input file, one output directory.
type transformRequest struct {
	InputPath string
	OutputDir string
}

func parseTransform(args map[string]any) (transformRequest, error) {
	var req transformRequest
	var err error
	if req.InputPath, err = requireString(args, "inputPath"); err != nil {
		return req, err
	}
	if req.OutputDir, err = requireString(args, "outputDir"); err != nil {
		return req, err
	}
	return req, nil
}

// encodeRequest carries the arguments of text_encoding_converter.
type encodeRequest struct {
	InputPath    string
	OutputDir    string
	FromEncoding string
	ToEncoding   string
}

func parseEncode(args map[string]any) (encodeRequest, error) {
	var req encodeRequest
	var err error
	if req.InputPath, err = requireString(args, "inputPath"); err != nil {
		return req, err
	}
	if req.OutputDir, err = requireString(args, "outputDir"); err != nil {
		return req, err
	}
	if req.FromEncoding, err = requireString(args, "fromEncoding"); err != nil {
		return req, err
	}
	if req.ToEncoding, err = requireString(args, "toEncoding"); err != nil {
		return req, err
	}
	return req, nil
}

// diffRequest carries the arguments of text_diff.
type diffRequest struct {
	File1Path string
	File2Path string
	OutputDir string
}

func parseDiff(args map[string]any) (diffRequest, error) {
	var req diffRequest
	var err error
	if req.File1Path, err = requireString(args, "file1Path"); err != nil {
		return req, err
	}
	if req.File2Path, err = requireString(args, "file2Path"); err != nil {
		return req, err
	}
	if req.OutputDir, err = requireString(args, "outputDir"); err != nil {
		return req, err
	}
	return req, nil
}

// Partition modes accepted by text_splitter.
const (
	splitByLines     = "lines"
	splitByDelimiter = "delimiter"
)

// partitionRequest carries the arguments of text_splitter. Exactly one of
// LineCount or Delimiter is set, selected by SplitBy.
type partitionRequest struct {
	InputPath string
	OutputDir string
	SplitBy   string
	LineCount int
	Delimiter string
}

func parsePartition(args map[string]any) (partitionRequest, error) {
	var req partitionRequest
	var err error
	if req.InputPath, err = requireString(args, "inputPath"); err != nil {
		return req, err
	}
	if req.OutputDir, err = requireString(args, "outputDir"); err != nil {
		return req, err
	}
	if req.SplitBy, err = requireString(args, "splitBy"); err != nil {
		return req, err
	}

	switch req.SplitBy {
	case splitByLines:
		n, err := requireInt(args, "value")
		if err != nil {
			return req, err
		}
		if n <= 0 {
			return req, fmt.Errorf("value must be a positive integer, got %d", n)
		}
		req.LineCount = n
	case splitByDelimiter:
		d, err := requireLiteral(args, "value")
		if err != nil {
			return req, err
		}
		req.Delimiter = d
	default:
		return req, fmt.Errorf("splitBy must be %q or %q, got %q", splitByLines, splitByDelimiter, req.SplitBy)
	}
	return req, nil
}
