package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	// An empty file leaves every field at its default.
	path := writeConfig(t, "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ModeClamp, cfg.Mode)
	assert.Equal(t, FormatPlain, cfg.Output.Format)
	assert.True(t, cfg.Output.Newline)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
mode: strict
output:
  format: json
  newline: false
log:
  file: /tmp/dayofyear.log
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ModeStrict, cfg.Mode)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.False(t, cfg.Output.Newline)
	assert.Equal(t, "/tmp/dayofyear.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Unknown mode", "mode: lenient\n"},
		{"Unknown format", "output:\n  format: xml\n"},
		{"Unknown log level", "log:\n  level: trace\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := &Config{
		Mode:   ModeClamp,
		Output: OutputConfig{Format: FormatPlain, Newline: true},
		Log:    LogConfig{Level: "info"},
	}
	assert.NoError(t, cfg.Validate())
}
