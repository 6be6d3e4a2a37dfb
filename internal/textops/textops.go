// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textops implements deterministic plain-text partitioning,
// normalization, and line-level diffing. Every function is a pure function
// of its input; persistence belongs to the caller.
package textops

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// SplitByLines partitions text into consecutive chunks of at most n lines
// each; only the final chunk may be shorter. Chunk boundaries never fall
// inside a line, and concatenating the chunks in order reproduces text
// byte for byte. Empty input yields a single empty chunk.
func SplitByLines(text string, n int) ([]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("line count must be a positive integer, got %d", n)
	}

	lines := splitKeepEnds(text)
	chunks := make([]string, 0, (len(lines)+n-1)/n)
	for start := 0; start < len(lines); start += n {
		end := start + n
		if end > len(lines) {
			end = len(lines)
		}
		chunks = append(chunks, strings.Join(lines[start:end], ""))
	}
	return chunks, nil
}

// SplitByDelimiter partitions text at every exact, non-overlapping
// occurrence of delim: k occurrences yield k+1 fragments, and empty
// fragments between adjacent delimiters are preserved.
func SplitByDelimiter(text, delim string) ([]string, error) {
	if delim == "" {
		return nil, fmt.Errorf("delimiter must be a non-empty string")
	}
	return strings.Split(text, delim), nil
}

// Normalize canonicalizes plain text: CRLF and lone CR line endings become
// LF, trailing spaces and tabs are stripped from each line, consecutive
// blank lines collapse to one, leading and trailing blank lines are
// dropped, and the result ends with exactly one newline. Empty input stays
// empty.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
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
	return strings.Join(out, "\n") + "\n"
}

// Diff compares a and b line by line and renders every line of both inputs
// prefixed "  " (present in both), "- " (first input only), or "+ " (second
// input only). Contiguous runs keep their original order, with removals of
// a replaced run listed before its additions. Line grouping comes from
// Myers' algorithm at line granularity.
func Diff(a, b string) string {
	dmp := diffmatchpatch.New()
	ca, cb, lineIndex := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lineIndex)

	var sb strings.Builder
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range splitKeepEnds(d.Text) {
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

// splitKeepEnds splits text after each newline, keeping the newline with
// its line. A trailing newline does not produce a phantom empty line.
func splitKeepEnds(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		return lines[:n-1]
	}
	return lines
}
