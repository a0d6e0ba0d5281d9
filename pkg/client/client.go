// Package client is the public entry point for calling the Backlot v2 API.
//
// Every call is signed. The path is prefixed with /v2/, parameters are
// canonicalized, api_key, expires and signature are added to the query
// string, and the request goes to the cache or authoritative endpoint
// depending on the routing policy. A 200 response is decoded from JSON. Any
// other outcome is returned as a *core.Error.
//
// Example usage:
//
//	c, err := client.New(core.DefaultConfig(apiKey, secretKey))
//	asset, err := c.Get(ctx, "assets/abc123", nil)
//	_, err = c.Patch(ctx, "assets/abc123", map[string]any{"name": "Intro"}, nil)
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"backlot/internal/ratelimit"
	"backlot/internal/transport"
	"backlot/pkg/core"
	"backlot/pkg/endpoint"
	"backlot/pkg/signer"
)

// Client holds only immutable configuration and is safe for concurrent use.
type Client struct {
	config    core.Config
	signer    *signer.Signer
	endpoints *endpoint.Builder
	transport core.Transport
	closer    io.Closer
	logger    zerolog.Logger
}

// New creates a Client. The configuration is validated and copied; later
// changes to config have no effect on the client.
func New(config *core.Config, opts ...Option) (*Client, error) {
	if config == nil {
		return nil, core.NewError(core.ErrorTypeValidation, "config is required").WithCode(core.ErrCodeInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		e := core.NewError(core.ErrorTypeValidation, "invalid config").WithCode(core.ErrCodeInvalidConfig)
		e.Err = err
		return nil, e
	}
	cfg := *config

	o := applyOptions(opts...)

	logger := o.logger
	if cfg.LogLevel != "" {
		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}
		logger = logger.Level(level)
	}

	c := &Client{
		config:    cfg,
		signer:    signer.New(&cfg, signer.WithClock(o.now)),
		endpoints: endpoint.FromConfig(&cfg),
		logger:    logger,
	}

	tr := o.transport
	if tr == nil {
		httpClient := transport.NewClient(&cfg, logger)
		tr = httpClient
		c.closer = httpClient
	}
	if cfg.RateLimitRequests > 0 {
		tr = ratelimit.NewTransport(tr, ratelimit.New(cfg.RateLimitRequests, cfg.RateLimitPeriod))
	}
	c.transport = tr

	return c, nil
}

// Close releases the default transport. It is a no-op for injected transports.
func (c *Client) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}

// Config returns a copy of the client's configuration.
func (c *Client) Config() core.Config {
	return c.config
}

// Get issues a GET request. GET requests carry no body.
func (c *Client) Get(ctx context.Context, path string, params core.Params) (any, error) {
	return c.Request(ctx, http.MethodGet, path, params, "")
}

// Post serializes body as JSON and issues a POST request.
func (c *Client) Post(ctx context.Context, path string, body any, params core.Params) (any, error) {
	return c.requestWithBody(ctx, http.MethodPost, path, body, params)
}

// Put serializes body as JSON and issues a PUT request.
func (c *Client) Put(ctx context.Context, path string, body any, params core.Params) (any, error) {
	return c.requestWithBody(ctx, http.MethodPut, path, body, params)
}

// Patch serializes body as JSON and issues a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body any, params core.Params) (any, error) {
	return c.requestWithBody(ctx, http.MethodPatch, path, body, params)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, params core.Params) (any, error) {
	return c.Request(ctx, http.MethodDelete, path, params, "")
}

func (c *Client) requestWithBody(ctx context.Context, method, path string, body any, params core.Params) (any, error) {
	payload, err := EncodeBody(body)
	if err != nil {
		return nil, err
	}
	return c.Request(ctx, method, path, params, payload)
}

// Request signs and sends a request and returns the decoded JSON of a 200
// response (nil for an empty body). method is case-insensitive; body is the
// already-serialized payload.
func (c *Client) Request(ctx context.Context, method, path string, params core.Params, body string) (any, error) {
	var result any
	if err := c.RequestInto(ctx, method, path, params, body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// RequestInto is Request with the 200 response decoded into out.
func (c *Client) RequestInto(ctx context.Context, method, path string, params core.Params, body string, out any) error {
	signed, err := c.SignRequest(&core.Request{Method: method, Path: path, Params: params, Body: body})
	if err != nil {
		return err
	}

	respBody, err := c.send(ctx, signed, core.NormalizePath(path))
	if err != nil {
		return err
	}
	return decode(respBody, out)
}

// SignRequest normalizes req and returns it signed, without sending it.
// The result can be used to hand out pre-signed URLs.
func (c *Client) SignRequest(req *core.Request) (*core.SignedRequest, error) {
	path := core.NormalizePath(req.Path)
	method, ok := core.NormalizeMethod(req.Method)
	if !ok {
		return nil, core.NewUnsupportedMethodError(method).WithRequest(method, path)
	}

	params := c.signer.SanitizeParams(req.Params)
	params[core.ParamSignature] = c.signer.Sign(method, path, params, req.Body)

	signed := &core.SignedRequest{
		Method: method,
		URL:    c.endpoints.BuildURL(method, path, params),
		Body:   req.Body,
	}
	if core.HasBody(method) {
		signed.Headers = map[string]string{"Content-Type": "application/json"}
	}
	return signed, nil
}

func (c *Client) send(ctx context.Context, req *core.SignedRequest, path string) ([]byte, error) {
	start := time.Now()
	resp, err := c.transport.Do(ctx, req)
	elapsed := time.Since(start)

	if err != nil {
		observe(req.Method, 0, elapsed)
		c.logger.Debug().Err(err).
			Str("method", req.Method).
			Str("path", path).
			Dur("duration", elapsed).
			Msg("backlot request failed")
		return nil, core.NewTransportError(err).WithRequest(req.Method, path)
	}

	observe(req.Method, resp.StatusCode, elapsed)
	c.logger.Debug().
		Str("method", req.Method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", elapsed).
		Msg("backlot response")

	if resp.StatusCode != http.StatusOK {
		msg := resp.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, core.NewRemoteError(resp.StatusCode, msg).WithRequest(req.Method, path)
	}
	return resp.Body, nil
}

func (c *Client) String() string {
	return fmt.Sprintf("backlot.Client{%s, base:%s, cache:%s, routing:%s}",
		c.config.Credentials, c.config.BaseURL, c.config.CacheBaseURL, c.config.Routing)
}
