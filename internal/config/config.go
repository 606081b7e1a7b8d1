// Package config loads calculator configuration.
//
// Precedence, lowest to highest: built-in defaults, optional TOML config
// file, CALC_* environment variables. Command-line flags override all of
// these and are applied by the cli package.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration.
type Config struct {
	Output  OutputConfig  `toml:"output"`
	Logging LogConfig     `toml:"logging"`
	Precise PreciseConfig `toml:"precise"`
}

// OutputConfig controls how results are rendered.
//
// Defaults live in Default(), not in struct tags, so values set by the TOML
// file survive envconfig processing.
type OutputConfig struct {
	JSON      bool `envconfig:"CALC_JSON" toml:"json"`
	Precision int  `envconfig:"CALC_PRECISION" toml:"precision"` // -1 means shortest exact rendering
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"CALC_LOG_LEVEL" toml:"level"`
	Development bool   `envconfig:"CALC_LOG_DEV" toml:"development"`
}

// PreciseConfig holds arbitrary-precision arithmetic configuration.
type PreciseConfig struct {
	Digits uint `envconfig:"CALC_PRECISE_DIGITS" toml:"digits"`
}

// Load builds configuration from defaults, the TOML file at path (optional;
// a missing file is ignored, a malformed one is an error) and environment
// variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// fall through to env
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			JSON:      false,
			Precision: -1,
		},
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
		},
		Precise: PreciseConfig{
			Digits: 10,
		},
	}
}
