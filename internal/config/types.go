// Package config loads leapudf configuration.
//
// Values are layered with koanf, lowest to highest precedence: built-in
// defaults, leapudf.yaml, LEAPUDF_* environment variables, and explicitly
// set command-line flags.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Config holds all configuration options.
type Config struct {
	ScriptsDir      string        `koanf:"scripts_dir"`
	Manifest        string        `koanf:"manifest"`
	Database        string        `koanf:"database"`
	LogLevel        string        `koanf:"log_level"`
	Verbose         bool          `koanf:"verbose"`
	OutputFormat    string        `koanf:"output"`
	Concurrency     int           `koanf:"concurrency"`
	RegisterTimeout time.Duration `koanf:"register_timeout"`

	// ConfigFile is the file that was loaded, or "" when none was found.
	ConfigFile string `koanf:"-"`
	// BaseDir is the directory relative paths were resolved against.
	BaseDir string `koanf:"-"`
}

var validOutputs = map[string]bool{
	"auto":     true,
	"text":     true,
	"markdown": true,
	"json":     true,
	"yaml":     true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.RegisterTimeout < 0 {
		return fmt.Errorf("register_timeout cannot be negative, got %s", c.RegisterTimeout)
	}
	if !validOutputs[c.OutputFormat] {
		return fmt.Errorf("invalid output format %q\nHint: use one of auto, text, markdown, json, yaml", c.OutputFormat)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if strings.TrimSpace(c.Database) == "" {
		return fmt.Errorf("database cannot be empty")
	}
	return nil
}

// Level returns the effective log level: debug when verbose, else log_level.
func (c *Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel parses debug, info, warn or error (case-insensitive).
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q\nHint: use one of debug, info, warn, error", s)
	}
}
