// Package endpoint selects the base URL for a request and assembles its final URL.
package endpoint

import (
	"net/http"
	"slices"
	"strings"

	"backlot/pkg/core"
)

// Builder is immutable after construction.
type Builder struct {
	baseURL      string
	cacheBaseURL string
	policy       core.RoutingPolicy
}

func NewBuilder(baseURL, cacheBaseURL string, policy core.RoutingPolicy) *Builder {
	return &Builder{
		baseURL:      strings.TrimRight(baseURL, "/"),
		cacheBaseURL: strings.TrimRight(cacheBaseURL, "/"),
		policy:       policy,
	}
}

// FromConfig creates a Builder from the endpoints and routing policy of cfg.
func FromConfig(cfg *core.Config) *Builder {
	return NewBuilder(cfg.BaseURL, cfg.CacheBaseURL, cfg.Routing)
}

// BaseURL returns the base URL a request with the given method is sent to.
// Under RouteByMethod only GET is served from the cache endpoint; writes
// always reach the authoritative endpoint.
func (b *Builder) BaseURL(method string) string {
	switch b.policy {
	case core.RouteCacheOnly:
		return b.cacheBaseURL
	case core.RouteOriginOnly:
		return b.baseURL
	}
	if strings.EqualFold(method, http.MethodGet) {
		return b.cacheBaseURL
	}
	return b.baseURL
}

// BuildURL joins the selected base URL, path and query string. params must
// already be canonical; values are not encoded again.
func (b *Builder) BuildURL(method, path string, params core.Params) string {
	u := b.BaseURL(method) + path
	if q := EncodeQuery(params); q != "" {
		u += "?" + q
	}
	return u
}

// EncodeQuery renders params as key=value pairs joined by '&' in ascending key order.
func EncodeQuery(params core.Params) string {
	if len(params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	return b.String()
}
