package core

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DefaultEnvPrefix is the environment variable prefix used by LoadConfig when none is given.
const DefaultEnvPrefix = "BACKLOT"

// envVars mirrors Config with flat, env-friendly fields.
type envVars struct {
	APIKey    string `envconfig:"API_KEY" required:"true"`
	SecretKey string `envconfig:"SECRET_KEY" required:"true"`

	BaseURL      string `envconfig:"BASE_URL" default:"https://api.ooyala.com"`
	CacheBaseURL string `envconfig:"CACHE_BASE_URL" default:"http://cdn.api.ooyala.com"`

	ExpirationWindow time.Duration `envconfig:"EXPIRATION_WINDOW" default:"15s"`
	RoundUpTime      time.Duration `envconfig:"ROUND_UP_TIME" default:"300s"`
	Routing          RoutingPolicy `envconfig:"ROUTING" default:"by_method"`

	Timeout    time.Duration `envconfig:"TIMEOUT" default:"30s"`
	MaxRetries int           `envconfig:"MAX_RETRIES" default:"0"`

	RateLimitRequests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"0"`
	RateLimitPeriod   time.Duration `envconfig:"RATE_LIMIT_PERIOD" default:"1s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig reads a Config from environment variables named <prefix>_API_KEY,
// <prefix>_SECRET_KEY, <prefix>_BASE_URL and so on, applies the defaults of
// DefaultConfig for anything unset, and validates the result.
func LoadConfig(prefix string) (*Config, error) {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}

	var env envVars
	if err := envconfig.Process(prefix, &env); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := DefaultConfig(env.APIKey, env.SecretKey).
		WithEndpoints(env.BaseURL, env.CacheBaseURL).
		WithExpiration(env.ExpirationWindow, env.RoundUpTime).
		WithRouting(env.Routing).
		WithTimeout(env.Timeout).
		WithRateLimit(env.RateLimitRequests, env.RateLimitPeriod)
	cfg.MaxRetries = env.MaxRetries
	cfg.LogLevel = env.LogLevel

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}
