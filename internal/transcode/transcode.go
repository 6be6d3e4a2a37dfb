// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcode converts text between named character encodings using
// the x/text tables.
package transcode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// lookup resolves an encoding name, trying the IANA registry first and the
// WHATWG index for aliases the IANA table does not carry. Names the tables
// know but cannot back with a codec (e.g. UTF-7) are rejected too.
func lookup(name string) (encoding.Encoding, error) {
	trimmed := strings.TrimSpace(name)
	if enc, err := ianaindex.IANA.Encoding(trimmed); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(trimmed); err == nil {
		return enc, nil
	}
	return nil, fmt.Errorf("unknown encoding %q", name)
}

// Convert re-encodes data from one named encoding to another. Bytes that do
// not decode under the source encoding, or runes the target encoding cannot
// represent, fail the conversion.
func Convert(data []byte, from, to string) ([]byte, error) {
	src, err := lookup(from)
	if err != nil {
		return nil, err
	}
	dst, err := lookup(to)
	if err != nil {
		return nil, err
	}

	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), src.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("decoding from %s: %w", from, err)
	}
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(decoded), dst.NewEncoder()))
	if err != nil {
		return nil, fmt.Errorf("encoding to %s: %w", to, err)
	}
	return out, nil
}
