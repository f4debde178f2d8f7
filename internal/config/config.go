// Package config loads and saves the bignumgen YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mrsinham/bignumgen/internal/output"
	"github.com/mrsinham/bignumgen/internal/testcase"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the complete configuration for YAML serialization.
type Config struct {
	Output    string      `yaml:"output"`
	Seed      int64       `yaml:"seed"`
	LogLevel  string      `yaml:"log_level"`
	LogFormat string      `yaml:"log_format"`
	Suite     SuiteConfig `yaml:"suite"`
}

// SuiteConfig holds the settings of the suite command.
type SuiteConfig struct {
	Dir     string `yaml:"dir"`
	From    int    `yaml:"from"`
	To      int    `yaml:"to"`
	Mode    string `yaml:"mode"`
	Workers int    `yaml:"workers,omitempty"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Output:    output.DefaultExpectedPath,
		LogLevel:  "warn",
		LogFormat: "console",
		Suite: SuiteConfig{
			Dir:  "cases",
			From: 1,
			To:   testcase.NumFixed + 8,
			Mode: testcase.Multiply.String(),
		},
	}
}

// Load reads path on top of Default. Keys missing from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML
func Save(cfg Config, path string) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks if config is valid
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidConfig)
	}
	if c.Suite.From < 1 {
		return fmt.Errorf("%w: suite.from must be >= 1, got %d", ErrInvalidConfig, c.Suite.From)
	}
	if c.Suite.To < c.Suite.From {
		return fmt.Errorf("%w: suite.to (%d) is before suite.from (%d)", ErrInvalidConfig, c.Suite.To, c.Suite.From)
	}
	if c.Suite.Workers < 0 {
		return fmt.Errorf("%w: suite.workers must be >= 0, got %d", ErrInvalidConfig, c.Suite.Workers)
	}
	if _, err := testcase.ParseMode(c.Suite.Mode); err != nil {
		return fmt.Errorf("%w: suite.mode: %v", ErrInvalidConfig, err)
	}
	return nil
}
