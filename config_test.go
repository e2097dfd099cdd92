package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 30*24, int(cfg.TokenTTL.Hours()))
	assert.Equal(t, 100, cfg.RateLimitPerMinute)
	assert.Equal(t, 50, cfg.RateLimitBurst)
}

func TestLoadConfigRateLimitKnobs(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "10")
	t.Setenv("RATE_LIMIT_BURST", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.RateLimitPerMinute)
	assert.Equal(t, 3, cfg.RateLimitBurst)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "-1")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadTokenTTL(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}
