package config

import (
	"fmt"
	"log/slog"
	"slices"
)

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"text", "json", "yaml", "debug"}
	validColors  = []string{"auto", "always", "never"}
)

func (c *Config) Validate() error {
	if !slices.Contains(validLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v, got %q", validLevels, c.Log.Level)
	}

	if err := CheckFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format %w", err)
	}

	if !slices.Contains(validColors, c.Output.Color) {
		return fmt.Errorf("output.color must be one of %v, got %q", validColors, c.Output.Color)
	}

	return nil
}

// CheckFormat rejects an AST output format the printers do not know.
func CheckFormat(format string) error {
	if !slices.Contains(validFormats, format) {
		return fmt.Errorf("must be one of %v, got %q", validFormats, format)
	}

	return nil
}

func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
