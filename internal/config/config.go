// Package config provides configuration defaults for the trl2pgn tool.
//
// Values come from an optional YAML file and environment variables, in
// that precedence order; command-line flags override both in the CLI.
package config

import (
	"runtime"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/lgbarn/trl2pgn/internal/errors"
)

// Config holds the converter defaults. Event, White and Black are opaque
// header values inserted verbatim into the PGN tags; empty Event falls
// back to the input file's base name in the CLI.
//
// Verbosity is a pointer because 0 (quiet) is a meaningful value: only an
// absent field falls back to the default of 1.
type Config struct {
	Event     string `yaml:"event" env:"TRL2PGN_EVENT"`
	Site      string `yaml:"site" env:"TRL2PGN_SITE" env-default:"Ludii"`
	White     string `yaml:"white" env:"TRL2PGN_WHITE" env-default:"Player 1"`
	Black     string `yaml:"black" env:"TRL2PGN_BLACK" env-default:"Player 2"`
	Workers   int    `yaml:"workers" env:"TRL2PGN_WORKERS"`
	Verbosity *int   `yaml:"verbosity" env:"TRL2PGN_VERBOSITY"`
}

// Load reads configuration from the given YAML file plus the environment.
// An empty path reads the environment only.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, errors.Wrap(err, "loading configuration")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Default returns the built-in configuration, ignoring file and environment.
func Default() *Config {
	verbosity := 1
	return &Config{
		Site:      "Ludii",
		White:     "Player 1",
		Black:     "Player 2",
		Workers:   runtime.NumCPU(),
		Verbosity: &verbosity,
	}
}

// VerbosityLevel returns the effective verbosity, 1 when unset.
func (c *Config) VerbosityLevel() int {
	if c.Verbosity == nil {
		return 1
	}
	return *c.Verbosity
}

func (c *Config) validate() error {
	if c.Workers < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must be >= 0, got %d", c.Workers)
	}
	if c.Verbosity != nil && *c.Verbosity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity must be >= 0, got %d", *c.Verbosity)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Verbosity == nil {
		verbosity := 1
		c.Verbosity = &verbosity
	}
}
