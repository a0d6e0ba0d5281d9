package client

import (
	"time"

	"github.com/rs/zerolog"

	"backlot/pkg/core"
)

type Option func(*options)

type options struct {
	transport core.Transport
	logger    zerolog.Logger
	now       func() time.Time
}

func applyOptions(opts ...Option) *options {
	o := &options{
		logger: zerolog.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithTransport replaces the default resty transport. The client does not
// close a transport it did not create.
func WithTransport(t core.Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// WithLogger sets the logger. Its level is capped by Config.LogLevel.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock replaces time.Now when computing expires.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}
