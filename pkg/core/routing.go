package core

import (
	"fmt"
	"strings"
)

// RoutingPolicy decides which base URL a request is sent to.
type RoutingPolicy int

const (
	// RouteByMethod sends GET requests to the cache base URL and every
	// mutating method to the authoritative base URL.
	RouteByMethod RoutingPolicy = iota
	// RouteCacheOnly sends every request to the cache base URL. This is the
	// behavior of the legacy WordPress client, kept as an explicit opt-in.
	RouteCacheOnly
	// RouteOriginOnly sends every request to the authoritative base URL.
	RouteOriginOnly
)

var routingNames = [...]string{
	"BY_METHOD",
	"CACHE_ONLY",
	"ORIGIN_ONLY",
}

// String returns the string representation of the policy.
func (p RoutingPolicy) String() string {
	if !p.Valid() {
		return "UNKNOWN"
	}
	return routingNames[p]
}

func (p RoutingPolicy) Valid() bool {
	return p >= RouteByMethod && int(p) < len(routingNames)
}

// ParseRoutingPolicy accepts the names returned by String, case-insensitively,
// with either dashes or underscores.
func ParseRoutingPolicy(s string) (RoutingPolicy, error) {
	name := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	for i, n := range routingNames {
		if n == name {
			return RoutingPolicy(i), nil
		}
	}
	return RouteByMethod, fmt.Errorf("unknown routing policy %q", s)
}

// Decode lets envconfig populate a RoutingPolicy from its name.
func (p *RoutingPolicy) Decode(value string) error {
	policy, err := ParseRoutingPolicy(value)
	if err != nil {
		return err
	}
	*p = policy
	return nil
}
