// Package config loads and validates the adapter's YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level adapter configuration. Fields absent from the
// file keep their defaults.
type Config struct {
	Listen        string `yaml:"listen"`
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
	UseSimulator  bool   `yaml:"use_simulator"`
	SimulatorType string `yaml:"simulator_type"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Listen:        "0.0.0.0:3000",
		LogLevel:      "info",
		LogFormat:     "text",
		UseSimulator:  true,
		SimulatorType: "dwave",
	}
}

// Load reads and parses an adapter YAML configuration file, layering it
// over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that a Config has valid values.
func Validate(cfg *Config) error {
	if cfg.Listen == "" {
		return fmt.Errorf("missing required field: listen")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be \"text\" or \"json\", got %q", cfg.LogFormat)
	}
	switch cfg.SimulatorType {
	case "dwave", "neal":
	default:
		return fmt.Errorf("simulator_type must be \"dwave\" or \"neal\", got %q", cfg.SimulatorType)
	}

	return nil
}
