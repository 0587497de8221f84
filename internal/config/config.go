// Package config provides configuration for the alignment and folding
// engines. Values come from defaults, an optional YAML file, and
// environment variables (optionally loaded from a .env file), applied
// in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Errors returned by configuration loading.
var (
	ErrSeparatorColumn = errors.New("separator column must be >= 1")
)

// Environment variable keys.
const (
	envSeparatorColumn = "BEANALIGN_SEPARATOR_COLUMN"
	envFixedCJKWidth   = "BEANALIGN_FIXED_CJK_WIDTH"
)

// Config holds the alignment parameters.
type Config struct {
	// SeparatorColumn is the 1-based target column for decimal-point
	// (or start-of-amount) alignment.
	SeparatorColumn int `yaml:"separator_column"`

	// FixedCJKWidth counts wide-script characters as two columns
	// regardless of terminal rendering.
	FixedCJKWidth bool `yaml:"fixed_cjk_width"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		SeparatorColumn: 60,
		FixedCJKWidth:   false,
	}
}

// Load builds a configuration from defaults, the optional YAML file at
// path (empty path skips the file), and environment overrides. A .env
// file in the working directory is honored when present.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFile merges values from a YAML file into the config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// loadEnv merges values from environment variables, loading a .env
// file first when one exists (ignored when absent).
func (c *Config) loadEnv() error {
	_ = godotenv.Load()

	if v := os.Getenv(envSeparatorColumn); v != "" {
		col, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envSeparatorColumn, err)
		}
		c.SeparatorColumn = col
	}

	if v := os.Getenv(envFixedCJKWidth); v != "" {
		c.FixedCJKWidth = v == "true" || v == "1"
	}

	return nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.SeparatorColumn < 1 {
		return fmt.Errorf("%w: got %d", ErrSeparatorColumn, c.SeparatorColumn)
	}
	return nil
}
