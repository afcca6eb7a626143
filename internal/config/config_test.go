// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SANITY_PROJECT_ID", "abc123")
	t.Setenv("SANITY_REVALIDATE_SECRET", "a-sufficiently-long-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.SanityProjectID)
	assert.Equal(t, "production", cfg.SanityDataset)
	assert.Equal(t, "2024-01-01", cfg.SanityAPIVersion)
	assert.True(t, cfg.SanityUseCDN)
	assert.Equal(t, "localhost:8080", cfg.ServerAddr())
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.UseRedisCache())
	assert.Equal(t, 60*time.Second, cfg.DefaultTTL())
	assert.Equal(t, time.Duration(0), cfg.RevalidateDelay)
}

func TestLoadMissingProjectID(t *testing.T) {
	t.Setenv("SANITY_PROJECT_ID", "")
	t.Setenv("SANITY_REVALIDATE_SECRET", "a-sufficiently-long-secret")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadShortSecret(t *testing.T) {
	t.Setenv("SANITY_PROJECT_ID", "abc123")
	t.Setenv("SANITY_REVALIDATE_SECRET", "too-short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SANITY_REVALIDATE_SECRET")
}

func TestLoadWeakSecret(t *testing.T) {
	t.Setenv("SANITY_PROJECT_ID", "abc123")
	t.Setenv("SANITY_REVALIDATE_SECRET", "change-me-to-a-long-random-secret")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "known default")
}

func TestUseRedisCache(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SITE_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.UseRedisCache())
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := Config{LogLevel: tt.in}
		assert.Equal(t, tt.want, cfg.SlogLevel(), "level %q", tt.in)
	}
}
