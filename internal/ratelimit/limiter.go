package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"backlot/pkg/core"
)

// Bucket names used by Transport. Reads are served mostly by the CDN and are
// limited separately from writes to the authoritative endpoint.
const (
	BucketRead  = "read"
	BucketWrite = "write"
)

// RateLimiter provides rate limiting with per-bucket limits.
type RateLimiter struct {
	buckets  sync.Map
	requests int
	period   time.Duration
	metrics  *Metrics
}

// Metrics tracks statistics about rate limiter usage.
type Metrics struct {
	totalRequests   atomic.Int64
	allowedRequests atomic.Int64
	deniedRequests  atomic.Int64
	bucketCount     atomic.Int32
}

// New creates a RateLimiter allowing requests per period in each bucket.
func New(requests int, period time.Duration) *RateLimiter {
	return &RateLimiter{
		requests: requests,
		period:   period,
		metrics:  &Metrics{},
	}
}

func (r *RateLimiter) limit() rate.Limit {
	return rate.Limit(float64(r.requests) / r.period.Seconds())
}

// Wait blocks until the named bucket allows a request or the context is cancelled.
// Buckets are created on demand.
func (r *RateLimiter) Wait(ctx context.Context, bucket string) error {
	r.metrics.totalRequests.Add(1)
	if err := r.getBucket(bucket).Wait(ctx); err != nil {
		r.metrics.deniedRequests.Add(1)
		return err
	}
	r.metrics.allowedRequests.Add(1)
	return nil
}

// Allow returns true if the named bucket permits a request immediately.
func (r *RateLimiter) Allow(bucket string) bool {
	r.metrics.totalRequests.Add(1)
	allowed := r.getBucket(bucket).Allow()
	if allowed {
		r.metrics.allowedRequests.Add(1)
	} else {
		r.metrics.deniedRequests.Add(1)
	}
	return allowed
}

func (r *RateLimiter) getBucket(bucket string) *rate.Limiter {
	if v, ok := r.buckets.Load(bucket); ok {
		return v.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(r.limit(), r.requests)
	actual, loaded := r.buckets.LoadOrStore(bucket, limiter)
	if !loaded {
		r.metrics.bucketCount.Add(1)
	}
	return actual.(*rate.Limiter)
}

// SetBucketLimit replaces the limiter of a bucket with a full one at the new rate.
func (r *RateLimiter) SetBucketLimit(bucket string, requests int, period time.Duration) {
	limiter := rate.NewLimiter(rate.Limit(float64(requests)/period.Seconds()), requests)
	if _, loaded := r.buckets.Swap(bucket, limiter); !loaded {
		r.metrics.bucketCount.Add(1)
	}
}

// Metrics returns a snapshot of the current rate limiter statistics.
func (r *RateLimiter) Metrics() MetricsSnapshot {
	return MetricsSnapshot{
		TotalRequests:   r.metrics.totalRequests.Load(),
		AllowedRequests: r.metrics.allowedRequests.Load(),
		DeniedRequests:  r.metrics.deniedRequests.Load(),
		BucketCount:     r.metrics.bucketCount.Load(),
	}
}

// MetricsSnapshot is a point-in-time capture of rate limiter statistics.
type MetricsSnapshot struct {
	TotalRequests   int64
	AllowedRequests int64
	DeniedRequests  int64
	BucketCount     int32
}

// BucketFor returns the bucket a request method is charged to.
func BucketFor(method string) string {
	if method == http.MethodGet {
		return BucketRead
	}
	return BucketWrite
}

// Transport delays requests to stay under the limiter's rate before handing
// them to the wrapped transport. It never drops or retries a request.
type Transport struct {
	next    core.Transport
	limiter *RateLimiter
}

func NewTransport(next core.Transport, limiter *RateLimiter) *Transport {
	return &Transport{next: next, limiter: limiter}
}

func (t *Transport) Do(ctx context.Context, req *core.SignedRequest) (*core.Response, error) {
	if err := t.limiter.Wait(ctx, BucketFor(req.Method)); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	return t.next.Do(ctx, req)
}
