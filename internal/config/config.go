package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/zeusync/physunits/internal/core/observability/log"
)

// Config holds process settings read from PHYSUNITS_* environment variables.
type Config struct {
	LogLevel    string `env:"PHYSUNITS_LOG_LEVEL"    envDefault:"info"`
	LogEncoding string `env:"PHYSUNITS_LOG_ENCODING" envDefault:"console"`
	Workers     int    `env:"PHYSUNITS_WORKERS"      envDefault:"4"`
	Precision   int    `env:"PHYSUNITS_PRECISION"    envDefault:"3"`
	Color       bool   `env:"PHYSUNITS_COLOR"        envDefault:"false"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("PHYSUNITS_LOG_LEVEL: %w", err)
	}
	if c.LogEncoding != "console" && c.LogEncoding != "json" {
		return fmt.Errorf("PHYSUNITS_LOG_ENCODING: unsupported encoding %q", c.LogEncoding)
	}
	if c.Workers < 1 {
		return fmt.Errorf("PHYSUNITS_WORKERS: must be positive, got %d", c.Workers)
	}
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("PHYSUNITS_PRECISION: must be within [0, 17], got %d", c.Precision)
	}
	return nil
}

// Level returns the parsed log level. It assumes Validate passed.
func (c Config) Level() log.Level {
	level, _ := log.ParseLevel(c.LogLevel)
	return level
}

// NewLogger builds the process logger described by c.
func NewLogger(c Config) (*log.Logger, error) {
	return log.NewWithOptions(log.Options{Level: c.Level(), Encoding: c.LogEncoding})
}
