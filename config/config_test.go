package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.False(t, cfg.Output.ShowSymbols)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "decafc.toml", `
[log]
level = "debug"

[output]
format = "json"
show_symbols = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.ShowSymbols)
	assert.Equal(t, "auto", cfg.Output.Color, "unset keys keep their defaults")
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_YAML(t *testing.T) {
	for _, name := range []string{"decafc.yaml", "decafc.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, name, "log:\n  level: error\noutput:\n  color: never\n  format: yaml\n")

			cfg, err := Load(path)
			require.NoError(t, err)

			assert.Equal(t, "error", cfg.Log.Level)
			assert.Equal(t, "never", cfg.Output.Color)
			assert.Equal(t, "yaml", cfg.Output.Format)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errPart string
	}{
		{
			name:    "unsupported extension",
			file:    "decafc.json",
			content: "{}",
			errPart: "unsupported config format \".json\"",
		},
		{
			name:    "bad level",
			file:    "decafc.toml",
			content: "[log]\nlevel = \"loud\"\n",
			errPart: "log.level must be one of",
		},
		{
			name:    "bad format",
			file:    "decafc.yaml",
			content: "output:\n  format: xml\n",
			errPart: "output.format must be one of",
		},
		{
			name:    "bad color",
			file:    "decafc.toml",
			content: "[output]\ncolor = \"rainbow\"\n",
			errPart: "output.color must be one of",
		},
		{
			name:    "malformed toml",
			file:    "decafc.toml",
			content: "[log\n",
			errPart: "parse TOML config",
		},
		{
			name:    "malformed yaml",
			file:    "decafc.yaml",
			content: "log: [unclosed\n",
			errPart: "parse YAML config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheckFormat(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml", "debug"} {
		assert.NoError(t, CheckFormat(format), format)
	}

	err := CheckFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `got "xml"`)
}
