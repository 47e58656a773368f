package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.Equal(t, "0.0.0.0:3000", cfg.Listen)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.True(t, cfg.UseSimulator)
	require.Equal(t, "dwave", cfg.SimulatorType)
	require.NoError(t, Validate(&cfg))
}

func TestLoadValidConfig(t *testing.T) {
	path := writeTempFile(t, `
listen: "127.0.0.1:8080"
log_level: debug
log_format: json
use_simulator: false
simulator_type: neal
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:8080", cfg.Listen)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.False(t, cfg.UseSimulator)
	require.Equal(t, "neal", cfg.SimulatorType)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeTempFile(t, "log_level: warn\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "0.0.0.0:3000", cfg.Listen)
	require.True(t, cfg.UseSimulator)
	require.Equal(t, "dwave", cfg.SimulatorType)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	require.Error(t, err)
	require.ErrorContains(t, err, "reading config")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeTempFile(t, "{{invalid yaml")

	_, err := Load(path)
	require.Error(t, err)
	require.ErrorContains(t, err, "parsing config")
}

func TestLoadInvalidValues(t *testing.T) {
	path := writeTempFile(t, "simulator_type: quantum\n")

	_, err := Load(path)
	require.Error(t, err)
	require.ErrorContains(t, err, "invalid config")
}

func TestValidate(t *testing.T) {
	valid := Default()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing listen",
			mutate:  func(c *Config) { c.Listen = "" },
			wantErr: "missing required field: listen",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "log_level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: "log_format",
		},
		{
			name:    "unknown simulator type",
			mutate:  func(c *Config) { c.SimulatorType = "quantum" },
			wantErr: "simulator_type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := Validate(&cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
