// Package jwtmw issues owner tokens and guards routes with bearer authentication.
package jwtmw

import (
	"log/slog"
	"os"
	"time"
)

const (
	// EnvKeyJWTSecret names the signing secret variable. An empty secret disables auth.
	EnvKeyJWTSecret = "JWT_SECRET"
	// EnvKeyJWTExpiration names the token lifetime variable, e.g. "24h".
	EnvKeyJWTExpiration = "JWT_EXPIRATION"
	// DefaultExpiration is the token lifetime when JWT_EXPIRATION is unset or invalid.
	DefaultExpiration = 24 * time.Hour
)

// Config holds token settings.
type Config struct {
	Secret     string
	Expiration time.Duration
}

// Enabled reports whether routes should require a token.
func (c Config) Enabled() bool { return c.Secret != "" }

// LoadConfigFromEnv reads JWT_SECRET and JWT_EXPIRATION.
func LoadConfigFromEnv() Config {
	cfg := Config{Secret: os.Getenv(EnvKeyJWTSecret), Expiration: DefaultExpiration}
	if raw := os.Getenv(EnvKeyJWTExpiration); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			slog.Warn("invalid JWT_EXPIRATION, using default", "value", raw, "default", DefaultExpiration)
		} else {
			cfg.Expiration = d
		}
	}
	return cfg
}
