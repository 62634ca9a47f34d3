// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration values for the namebook server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// DatabasePath is the SQLite database file. It is created on start if
	// it does not exist.
	DatabasePath string `env:"DATABASE_PATH" envDefault:"data.db"`

	// LogLevel controls the minimum log level.
	// Valid values: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Empty by default: the form is served and posted same-origin.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	// MaxBodyBytes caps the size of request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`
}

// Load reads configuration from environment variables and returns a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: parse env: %w", err)
	}

	cfg.DatabasePath = strings.TrimSpace(cfg.DatabasePath)
	if cfg.DatabasePath == "" {
		return Config{}, fmt.Errorf("config.Load: DATABASE_PATH must not be blank")
	}
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("config.Load: MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)

	return cfg, nil
}

// trimAll trims every entry and drops the empty ones.
func trimAll(in []string) []string {
	var out []string
	for _, part := range in {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
