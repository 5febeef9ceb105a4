package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process-wide configuration, loaded once at startup.
type Config struct {
	Addr       string        `env:"CROSSPAY_ADDR" envDefault:":8080"`
	AuthSecret string        `env:"CROSSPAY_AUTH_SECRET"`
	TokenTTL   time.Duration `env:"CROSSPAY_TOKEN_TTL" envDefault:"24h"`
	BcryptCost int           `env:"CROSSPAY_BCRYPT_COST" envDefault:"10"`

	// PGDSN selects the Postgres-backed stores; empty keeps everything
	// in memory.
	PGDSN string `env:"CROSSPAY_PG_DSN"`

	// Currencies is the fixed supported set shared between validation and
	// the currencies endpoint.
	Currencies []string `env:"CROSSPAY_CURRENCIES" envSeparator:"," envDefault:"ZAR,USD,EUR,GBP"`

	// Fixed-window rate limit applied per client IP.
	RateWindow time.Duration `env:"CROSSPAY_RATE_WINDOW" envDefault:"15m"`
	RateMax    int           `env:"CROSSPAY_RATE_MAX" envDefault:"100"`

	// SeedOperator preloads the built-in employee account when the
	// credential store starts empty.
	SeedOperator bool `env:"CROSSPAY_SEED_OPERATOR" envDefault:"true"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	if cfg.AuthSecret == "" {
		return nil, errors.New("CROSSPAY_AUTH_SECRET is not set")
	}
	if cfg.TokenTTL <= 0 {
		return nil, errors.New("token TTL must be positive")
	}
	if cfg.RateMax <= 0 || cfg.RateWindow <= 0 {
		return nil, errors.New("rate limit window and max must be positive")
	}
	return &cfg, nil
}
