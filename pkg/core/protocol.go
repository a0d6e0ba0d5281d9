package core

import (
	"context"
)

// Transport sends signed requests over the wire.
// Implementations own connection pooling, TLS, timeouts and any retry policy.
// A non-2xx status is not an error at this level: Do returns the Response and
// leaves interpretation to the caller. Do returns an error only when no
// response was received.
type Transport interface {
	Do(ctx context.Context, req *SignedRequest) (*Response, error)
}

// TransportFunc adapts a plain function to the Transport interface.
type TransportFunc func(ctx context.Context, req *SignedRequest) (*Response, error)

func (f TransportFunc) Do(ctx context.Context, req *SignedRequest) (*Response, error) {
	return f(ctx, req)
}
