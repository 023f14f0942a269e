// Package config holds the compiler's user-facing settings. Files may be TOML
// or YAML; the format is picked from the file extension.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Output OutputConfig `toml:"output" yaml:"output"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`
}

type OutputConfig struct {
	// Format selects how parsed programs are printed: text, json, yaml or debug.
	Format string `toml:"format" yaml:"format"`
	// Color is auto, always or never.
	Color       string `toml:"color" yaml:"color"`
	ShowSymbols bool   `toml:"show_symbols" yaml:"show_symbols"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "warn",
		},
		Output: OutputConfig{
			Format: "text",
			Color:  "auto",
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse TOML config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse YAML config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}
