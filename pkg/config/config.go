// Package config loads the settings of a fairness run.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ShorthillsAI/fairness-measures-code/pkg/fairness"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FAIRNESS_"

var validate = validator.New()

// Config describes one analysis run.
type Config struct {
	// Data is the path to the delimited input file.
	Data string `yaml:"data" env:"DATA"`
	// Normalize lists columns rescaled before the measures are computed.
	Normalize []string `yaml:"normalize" env:"NORMALIZE" envSeparator:","`

	Accepted       int `yaml:"accepted" env:"ACCEPTED"`
	FavoredGroup   int `yaml:"favored_group" env:"FAVORED_GROUP"`
	ProtectedGroup int `yaml:"protected_group" env:"PROTECTED_GROUP" validate:"nefield=FavoredGroup"`

	Format  string `yaml:"format" env:"FORMAT" validate:"oneof=text json yaml"`
	Verbose bool   `yaml:"verbose" env:"VERBOSE"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	opts := fairness.DefaultOptions()
	return &Config{
		Accepted:       opts.Accepted,
		FavoredGroup:   opts.FavoredGroup,
		ProtectedGroup: opts.ProtectedGroup,
		Format:         "text",
	}
}

// Load reads path over the defaults, then applies FAIRNESS_* environment
// variables. An empty path or a missing file leaves the defaults in place.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Options returns the measure options of c.
func (c *Config) Options() fairness.Options {
	return fairness.Options{
		Accepted:       c.Accepted,
		FavoredGroup:   c.FavoredGroup,
		ProtectedGroup: c.ProtectedGroup,
	}
}
