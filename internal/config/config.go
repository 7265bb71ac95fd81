// Package config loads command configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig is returned when environment parsing fails.
	ErrParsingConfig = errors.New("config: failed to parse environment")
	// ErrInvalidConfig is returned when a parsed value is out of range.
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Config holds command settings. Every field can be set through the
// environment, optionally from a .env file in the working directory.
type Config struct {
	LogLevel  string        `env:"SHAPECHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat string        `env:"SHAPECHECK_LOG_FORMAT" envDefault:"text"`
	Lang      string        `env:"SHAPECHECK_LANG" envDefault:"en"`
	Jobs      int           `env:"SHAPECHECK_JOBS" envDefault:"4"`
	Debounce  time.Duration `env:"SHAPECHECK_DEBOUNCE" envDefault:"200ms"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()
	return Parse(env.Options{})
}

// Parse parses the environment with the given options. Tests use
// Options.Environment to inject values.
func Parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("%w: SHAPECHECK_JOBS must be at least 1, got %d", ErrInvalidConfig, c.Jobs)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("%w: SHAPECHECK_DEBOUNCE must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Default returns the configuration with every field at its default value,
// ignoring the process environment.
func Default() Config {
	cfg, err := Parse(env.Options{Environment: map[string]string{}})
	if err != nil {
		panic(err)
	}
	return cfg
}
