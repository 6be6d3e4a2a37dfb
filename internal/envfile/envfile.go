// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package envfile loads environment overrides from a local dotenv file.
// Variables already exported win; the file only fills gaps, so DOCTOOL_*
// settings from the parent environment are never clobbered.
package envfile

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads the dotenv file at path and sets every variable not already
// present in the environment. A missing file is not an error; a file that
// exists but cannot be parsed is.
func Load(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking env file %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}
