// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected in production.
var knownWeakSecrets = []string{
	"change-me-to-a-long-random-secret",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// MinRevalidateSecretLength is the minimum required length for the
// webhook revalidation secret.
const MinRevalidateSecretLength = 16

// Config holds the application configuration loaded from environment variables.
type Config struct {
	// Content Lake connection
	SanityProjectID  string `env:"SANITY_PROJECT_ID,required"`
	SanityDataset    string `env:"SANITY_DATASET" envDefault:"production"`
	SanityAPIVersion string `env:"SANITY_API_VERSION" envDefault:"2024-01-01"`
	SanityToken      string `env:"SANITY_API_TOKEN"` // Only needed for private datasets
	SanityUseCDN     bool   `env:"SANITY_USE_CDN" envDefault:"true"`

	// Webhook revalidation
	RevalidateSecret string `env:"SANITY_REVALIDATE_SECRET,required"`
	// RevalidateDelay is how long the webhook handler waits for Content Lake
	// eventual consistency before invalidating. Heuristic, not a guarantee.
	RevalidateDelay time.Duration `env:"SITE_REVALIDATE_DELAY" envDefault:"0s"`

	ServerHost string `env:"SITE_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"SITE_SERVER_PORT" envDefault:"8080"`
	BaseURL    string `env:"SITE_BASE_URL" envDefault:"http://localhost:8080"`
	Env        string `env:"SITE_ENV" envDefault:"development"`
	LogLevel   string `env:"SITE_LOG_LEVEL" envDefault:"info"`

	// Cache configuration
	RedisURL     string `env:"SITE_REDIS_URL"`                       // Optional Redis URL for distributed caching
	CachePrefix  string `env:"SITE_CACHE_PREFIX" envDefault:"site:"` // Redis key prefix
	CacheTTL     int    `env:"SITE_CACHE_TTL" envDefault:"60"`       // Default content freshness window in seconds
	CacheMaxSize int    `env:"SITE_CACHE_MAX_SIZE" envDefault:"10000"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// DefaultTTL returns the content freshness window as a duration.
func (c Config) DefaultTTL() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// SlogLevel converts the configured log level string to a slog.Level.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.RevalidateSecret) < MinRevalidateSecretLength {
		return nil, fmt.Errorf("SANITY_REVALIDATE_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinRevalidateSecretLength, len(cfg.RevalidateSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.RevalidateSecret == weak {
			return nil, fmt.Errorf("SANITY_REVALIDATE_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	return cfg, nil
}
