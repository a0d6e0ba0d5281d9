// Package transport provides the default HTTP implementation of core.Transport.
package transport

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	"backlot/pkg/core"
)

// HeaderRequestID carries a per-request id for correlating client and server logs.
const HeaderRequestID = "X-Request-Id"

// Client wraps a resty HTTP client with logging and configuration.
// The URL it receives is final: base URL, path and signed query string are
// sent exactly as given.
type Client struct {
	client *resty.Client
	logger zerolog.Logger
}

// NewClient creates a new HTTP client with the timeout and retry count of config.
// Retries default to zero; the signing layer never retries on its own.
func NewClient(config *core.Config, logger zerolog.Logger) *Client {
	client := resty.New()
	client.SetTimeout(config.Timeout)
	client.SetRetryCount(config.MaxRetries)
	client.SetRetryWaitTime(100 * time.Millisecond)
	client.SetRetryMaxWaitTime(time.Second)
	client.SetHeader("Accept", "application/json")

	return &Client{
		client: client,
		logger: logger,
	}
}

// Do executes a signed request and returns the response.
// Non-2xx statuses are returned as responses, not errors.
func (c *Client) Do(ctx context.Context, req *core.SignedRequest) (*core.Response, error) {
	requestID := uuid.NewString()
	r := c.client.R().
		SetContext(ctx).
		SetHeader(HeaderRequestID, requestID)

	for k, v := range req.Headers {
		r.SetHeader(k, v)
	}

	if req.Body != "" {
		r.SetBody(req.Body)
	}

	target := redact(req.URL)
	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("url", target).
		Msg("http request")

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		c.logger.Error().Err(err).
			Str("request_id", requestID).
			Str("method", req.Method).
			Str("url", target).
			Msg("http request failed")
		return nil, fmt.Errorf("http request: %w", err)
	}

	body := resp.Bytes()
	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("url", target).
		Int("status", resp.StatusCode()).
		Int("size", len(body)).
		Dur("duration", resp.Duration()).
		Msg("http response")

	headers := make(map[string]string)
	for k, v := range resp.Header() {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	return &core.Response{
		StatusCode: resp.StatusCode(),
		Message:    reasonPhrase(resp.StatusCode(), resp.Status()),
		Body:       body,
		Headers:    headers,
	}, nil
}

// Close releases idle connections held by the underlying client.
func (c *Client) Close() error {
	return c.client.Close()
}

// reasonPhrase extracts "Not Found" from a status line like "404 Not Found",
// falling back to the standard text when the server sent none.
func reasonPhrase(code int, status string) string {
	msg := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
	if msg == "" {
		return http.StatusText(code)
	}
	return msg
}

// redact drops the query string, which carries api_key and signature.
func redact(rawURL string) string {
	if i := strings.IndexByte(rawURL, '?'); i >= 0 {
		return rawURL[:i]
	}
	return rawURL
}
