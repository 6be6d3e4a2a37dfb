// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the process logger for the CLI and HTTP front
// ends. The operation core never logs; its failures travel inside response
// envelopes instead.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/doctool/pkg/types"
)

// New returns a logger configured per cfg, writing to out (stderr when
// nil). Format "console" produces human-readable lines; anything else emits
// raw JSON.
func New(cfg types.LogConfig, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", "doctool").
		Logger()
}

// parseLevel maps a level name to a zerolog level, defaulting to info for
// anything unrecognized.
func parseLevel(level string) zerolog.Level {
	switch level {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
