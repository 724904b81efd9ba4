// Package config loads tool configuration from environment variables.
// Flags still win: commands use these values only as defaults.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-sourced defaults for the tally CLI.
type Config struct {
	// DBPath is the ledger database file.
	DBPath string `env:"TALLY_DB" envDefault:"tally.db"`

	// Format is the default output format, "text" or "json".
	Format string `env:"TALLY_FORMAT" envDefault:"text"`

	// System is the default denomination system name.
	System string `env:"TALLY_SYSTEM" envDefault:"sterling"`

	// SystemsDir optionally points at a directory of CUE system
	// definitions loaded at startup.
	SystemsDir string `env:"TALLY_SYSTEMS"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
