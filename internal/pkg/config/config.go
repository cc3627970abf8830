// Package config loads per-service configuration from the environment.
// Each service gets an explicit struct passed to its constructors — no
// ambient globals.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// AuthConfig configures the auth service process.
type AuthConfig struct {
	Port        string        `env:"PORT,         default=3000"`
	Env         string        `env:"ENV,          default=development"`
	LogLevel    string        `env:"LOG_LEVEL,    default=info"`
	DatabaseURL string        `env:"DATABASE_URL, required"`
	JWTSecret   string        `env:"JWT_SECRET,   required"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,    default=24h"`
}

// ConcertConfig configures the concert service process.
type ConcertConfig struct {
	Port        string `env:"PORT,         default=3001"`
	Env         string `env:"ENV,          default=development"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	DatabaseURL string `env:"DATABASE_URL, required"`
}

// LoadAuth reads the auth service configuration from environment variables.
func LoadAuth(ctx context.Context) (*AuthConfig, error) {
	var cfg AuthConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// LoadConcert reads the concert service configuration from environment
// variables.
func LoadConcert(ctx context.Context) (*ConcertConfig, error) {
	var cfg ConcertConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
