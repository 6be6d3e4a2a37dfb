// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfops manipulates paginated documents page-accurately on top of
// pdfcpu: merging whole files, extracting page ranges, and counting pages.
// Page content is copied, never re-rendered, and no partial output file is
// ever observable.
package pdfops

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/doctool/pkg/types"
)

// conf returns the relaxed-validation configuration used for every pdfcpu
// call; strict validation rejects too many real-world files.
func conf() *model.Configuration {
	c := model.NewDefaultConfiguration()
	c.ValidationMode = model.ValidationRelaxed
	return c
}

// readContext loads, validates, and optimizes the document at path.
func readContext(path string) (*model.Context, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, conf())
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return ctx, nil
}

// PageCount reports the number of pages of the document at path, derived
// from the file itself on every call.
func PageCount(path string) (int, error) {
	ctx, err := readContext(path)
	if err != nil {
		return 0, err
	}
	return ctx.PageCount, nil
}

// ValidateRanges checks every range against a document of totalPages pages:
// 1 <= start <= end <= totalPages. The first violation is reported with its
// 1-based position so callers can abort before copying any page. Ranges may
// overlap and appear in any order.
func ValidateRanges(ranges []types.PageRange, totalPages int) error {
	if len(ranges) == 0 {
		return fmt.Errorf("at least one page range is required")
	}
	for i, r := range ranges {
		if r.Start < 1 {
			return fmt.Errorf("range %d: start page %d out of range (1-%d)", i+1, r.Start, totalPages)
		}
		if r.End < r.Start {
			return fmt.Errorf("range %d: start page %d after end page %d", i+1, r.Start, r.End)
		}
		if r.End > totalPages {
			return fmt.Errorf("range %d: end page %d out of range (1-%d)", i+1, r.End, totalPages)
		}
	}
	return nil
}

// ExtractRanges copies the pages of each range, in the order given, into
// independent in-memory documents. Every range is validated against the
// fresh page count before any page is copied; either all ranges come back
// or none do.
func ExtractRanges(path string, ranges []types.PageRange) ([][]byte, error) {
	ctx, err := readContext(path)
	if err != nil {
		return nil, err
	}
	if err := ValidateRanges(ranges, ctx.PageCount); err != nil {
		return nil, err
	}

	docs := make([][]byte, 0, len(ranges))
	for i, r := range ranges {
		pages := make([]int, 0, r.Pages())
		for p := r.Start; p <= r.End; p++ {
			pages = append(pages, p)
		}
		extracted, err := pdfcpu.ExtractPages(ctx, pages, false)
		if err != nil {
			return nil, fmt.Errorf("extracting range %d (pages %d-%d): %w", i+1, r.Start, r.End, err)
		}
		var buf bytes.Buffer
		if err := api.WriteContext(extracted, &buf); err != nil {
			return nil, fmt.Errorf("writing range %d (pages %d-%d): %w", i+1, r.Start, r.End, err)
		}
		docs = append(docs, buf.Bytes())
	}
	return docs, nil
}

// Merge concatenates the full page sequences of the listed sources, in
// order, into one document at outPath and reports the combined page count.
// Every source must load before anything is written, and the output appears
// via rename so a partial merge is never visible at outPath.
func Merge(inputs []string, outPath string) (int, error) {
	if len(inputs) == 0 {
		return 0, fmt.Errorf("at least one input file is required")
	}

	total := 0
	for _, in := range inputs {
		n, err := PageCount(in)
		if err != nil {
			return 0, err
		}
		total += n
	}

	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".merge-*.pdf")
	if err != nil {
		return 0, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := api.MergeCreateFile(inputs, tmpPath, false, conf()); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("merging %d files: %w", len(inputs), err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("renaming merged output to %s: %w", outPath, err)
	}
	return total, nil
}
