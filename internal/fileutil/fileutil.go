// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fileutil provides the file-lifecycle primitives shared by the
// operation handlers: random output-name qualifiers, directory preparation,
// and atomic writes.
package fileutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// idBytes is the entropy behind each generated identifier; hex encoding
// doubles it to 18 characters.
const idBytes = 9

// NewID returns a random 18-character lowercase-hex token used to qualify
// output filenames so concurrent calls writing into the same directory never
// collide. No registry of issued tokens is kept and the token carries no
// security meaning.
func NewID() string {
	buf := make([]byte, idBytes)
	// rand.Read is documented to never fail.
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// EnsureDir makes dir usable for writes, creating it and any missing
// parents. Calling it again with the same path is a no-op.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// WriteFileAtomic writes data to path through a temporary file in the same
// directory, renaming into place on success so a partially written file is
// never observable at path.
func WriteFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".doctool-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file for %s: %w", path, closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}
	return nil
}

// Stem returns the base name of path with its extension removed. Derived
// output names start from it.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
