package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultBaseURL is the authoritative Backlot API endpoint.
	DefaultBaseURL = "https://api.ooyala.com"
	// DefaultCacheBaseURL is the CDN-fronted endpoint used for cacheable reads.
	DefaultCacheBaseURL = "http://cdn.api.ooyala.com"

	DefaultExpirationWindow = 15 * time.Second
	DefaultRoundUpTime      = 300 * time.Second
)

// Credentials holds the key pair issued by Backlot's developers tab.
type Credentials struct {
	// APIKey identifies the account and is sent as the api_key query parameter.
	APIKey string `json:"api_key" validate:"required"`
	// SecretKey is only ever used as signing input. It never leaves the process.
	SecretKey string `json:"secret_key" validate:"required"`
}

func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{APIKey:%s, SecretKey:****}", maskKey(c.APIKey))
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

// Config contains every option of a Backlot client.
// It is resolved once at construction and copied by the client, so later
// changes to a Config value never affect a running client.
type Config struct {
	Credentials Credentials `json:"credentials"`

	BaseURL      string `json:"base_url" validate:"required,url"`
	CacheBaseURL string `json:"cache_base_url" validate:"required,url"`

	// ExpirationWindow is added to the current time to compute the expires
	// parameter. Only whole seconds are significant.
	ExpirationWindow time.Duration `json:"expiration_window" validate:"min=0"`
	// RoundUpTime is the bucket size expires values are aligned to.
	RoundUpTime time.Duration `json:"round_up_time" validate:"min=1s"`

	Routing RoutingPolicy `json:"routing"`

	// Timeout is the maximum duration of a single HTTP exchange in the default transport.
	Timeout    time.Duration `json:"timeout" validate:"min=1ms"`
	MaxRetries int           `json:"max_retries" validate:"min=0"`

	// RateLimitRequests of zero disables client-side rate limiting.
	RateLimitRequests int           `json:"rate_limit_requests" validate:"min=0"`
	RateLimitPeriod   time.Duration `json:"rate_limit_period" validate:"min=0"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=trace debug info warn error disabled"`
}

// DefaultConfig returns a Config for the given key pair with the documented defaults:
// production endpoints, 15s expiration window, 300s round-up time, method-based
// routing, 30s timeout, no retries and no rate limiting.
func DefaultConfig(apiKey, secretKey string) *Config {
	return &Config{
		Credentials: Credentials{
			APIKey:    apiKey,
			SecretKey: secretKey,
		},
		BaseURL:          DefaultBaseURL,
		CacheBaseURL:     DefaultCacheBaseURL,
		ExpirationWindow: DefaultExpirationWindow,
		RoundUpTime:      DefaultRoundUpTime,
		Routing:          RouteByMethod,

		Timeout:    30 * time.Second,
		MaxRetries: 0,

		RateLimitRequests: 0,
		RateLimitPeriod:   time.Second,

		LogLevel: "info",
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.RoundUpTime%time.Second != 0 {
		return errors.New("RoundUpTime must be a whole number of seconds")
	}
	if c.RateLimitRequests > 0 && c.RateLimitPeriod <= 0 {
		return errors.New("RateLimitPeriod must be positive when rate limiting is enabled")
	}
	if !c.Routing.Valid() {
		return fmt.Errorf("Routing: unknown policy %d", c.Routing)
	}
	return nil
}

// WithEndpoints overrides the authoritative and cache base URLs and returns the config for chaining.
func (c *Config) WithEndpoints(baseURL, cacheBaseURL string) *Config {
	c.BaseURL = baseURL
	c.CacheBaseURL = cacheBaseURL
	return c
}

// WithExpiration sets the expiration window and round-up bucket and returns the config for chaining.
func (c *Config) WithExpiration(window, roundUp time.Duration) *Config {
	c.ExpirationWindow = window
	c.RoundUpTime = roundUp
	return c
}

// WithRouting sets the base URL selection policy and returns the config for chaining.
func (c *Config) WithRouting(policy RoutingPolicy) *Config {
	c.Routing = policy
	return c
}

// WithTimeout sets the transport timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithRateLimit sets the rate limiting parameters and returns the config for chaining.
func (c *Config) WithRateLimit(requests int, period time.Duration) *Config {
	c.RateLimitRequests = requests
	c.RateLimitPeriod = period
	return c
}
