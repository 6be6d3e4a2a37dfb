package types

import "time"

// LogConfig controls the process logger used by the CLI and HTTP front ends.
type LogConfig struct {
	// Level is the minimum level emitted: trace, debug, info, warn, or error.
	Level string `json:"level" yaml:"level"`

	// Format selects "console" for human-readable output or "json" for
	// structured lines.
	Format string `json:"format" yaml:"format"`
}

// OfficeConfig holds settings for the external document renderer.
type OfficeConfig struct {
	// Binary names the LibreOffice executable to use. When empty, soffice
	// and then libreoffice are probed on PATH.
	Binary string `json:"binary,omitempty" yaml:"binary,omitempty"`
}

// ServeConfig holds settings for the HTTP front end.
type ServeConfig struct {
	// Addr is the listen address (e.g. ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// RequestTimeout bounds the total handling time of one HTTP request.
	RequestTimeout time.Duration `json:"request_timeout" yaml:"request_timeout"`
}

// Config groups all doctool settings.
type Config struct {
	Log    LogConfig    `json:"log" yaml:"log"`
	Office OfficeConfig `json:"office" yaml:"office"`
	Serve  ServeConfig  `json:"serve" yaml:"serve"`
}

// DefaultConfig returns the settings used when no config file and no
// environment overrides are present.
func DefaultConfig() Config {
	return Config{
		Log:   LogConfig{Level: "info", Format: "console"},
		Serve: ServeConfig{Addr: ":8080", RequestTimeout: 5 * time.Minute},
	}
}
