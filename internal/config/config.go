// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all server settings. Values come from environment
// variables, with a .env file loaded first if present.
type Config struct {
	// Bind is the listen address for the HTTP server.
	Bind string `env:"BIND" envDefault:"0.0.0.0:8080"`

	// DBPath is the SQLite database file path.
	DBPath string `env:"DB_PATH" envDefault:"./data/expenseshare.db"`

	// JWTSecret signs session tokens. Required outside development.
	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-only-change-me"`

	// TokenTTL is how long session tokens remain valid.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// LogLevel is debug, info, warn, or error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from .env (if present) and the environment.
func Load() (*Config, error) {
	// Non-fatal if missing; production sets real env vars.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
