package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("BACKLOT_API_KEY", "key")
	t.Setenv("BACKLOT_SECRET_KEY", "secret")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig("key", "secret"), cfg)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("MEDIA_API_KEY", "key")
	t.Setenv("MEDIA_SECRET_KEY", "secret")
	t.Setenv("MEDIA_BASE_URL", "https://origin.test")
	t.Setenv("MEDIA_CACHE_BASE_URL", "https://cdn.test")
	t.Setenv("MEDIA_EXPIRATION_WINDOW", "60s")
	t.Setenv("MEDIA_ROUND_UP_TIME", "10m")
	t.Setenv("MEDIA_ROUTING", "cache_only")
	t.Setenv("MEDIA_RATE_LIMIT_REQUESTS", "5")
	t.Setenv("MEDIA_LOG_LEVEL", "debug")

	cfg, err := LoadConfig("MEDIA")
	require.NoError(t, err)

	assert.Equal(t, "https://origin.test", cfg.BaseURL)
	assert.Equal(t, "https://cdn.test", cfg.CacheBaseURL)
	assert.Equal(t, time.Minute, cfg.ExpirationWindow)
	assert.Equal(t, 10*time.Minute, cfg.RoundUpTime)
	assert.Equal(t, RouteCacheOnly, cfg.Routing)
	assert.Equal(t, 5, cfg.RateLimitRequests)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_MissingCredentials(t *testing.T) {
	t.Setenv("NOKEYS_SECRET_KEY", "secret")

	_, err := LoadConfig("NOKEYS")
	assert.Error(t, err)
}

func TestLoadConfig_InvalidRouting(t *testing.T) {
	t.Setenv("BADROUTE_API_KEY", "key")
	t.Setenv("BADROUTE_SECRET_KEY", "secret")
	t.Setenv("BADROUTE_ROUTING", "random")

	_, err := LoadConfig("BADROUTE")
	assert.Error(t, err)
}
