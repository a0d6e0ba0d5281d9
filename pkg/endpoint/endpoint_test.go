package endpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"backlot/pkg/core"
)

const (
	origin = "https://api.ooyala.com"
	cdn    = "http://cdn.api.ooyala.com"
)

func TestBuilder_BaseURL(t *testing.T) {
	tests := []struct {
		name   string
		policy core.RoutingPolicy
		method string
		want   string
	}{
		{"by_method_get", core.RouteByMethod, "GET", cdn},
		{"by_method_lowercase_get", core.RouteByMethod, "get", cdn},
		{"by_method_post", core.RouteByMethod, "POST", origin},
		{"by_method_put", core.RouteByMethod, "PUT", origin},
		{"by_method_patch", core.RouteByMethod, "PATCH", origin},
		{"by_method_delete", core.RouteByMethod, "DELETE", origin},
		{"cache_only_get", core.RouteCacheOnly, "GET", cdn},
		{"cache_only_post", core.RouteCacheOnly, "POST", cdn},
		{"origin_only_get", core.RouteOriginOnly, "GET", origin},
		{"origin_only_patch", core.RouteOriginOnly, "PATCH", origin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(origin, cdn, tt.policy)
			assert.Equal(t, tt.want, b.BaseURL(tt.method))
		})
	}
}

func TestBuilder_BuildURL(t *testing.T) {
	b := NewBuilder(origin+"/", cdn, core.RouteByMethod)

	got := b.BuildURL("POST", "/v2/assets", core.Params{
		"signature": "abc%2Fdef",
		"expires":   "1700000100",
		"api_key":   "key",
	})

	assert.Equal(t, origin+"/v2/assets?api_key=key&expires=1700000100&signature=abc%2Fdef", got)
}

func TestBuilder_BuildURL_NoParams(t *testing.T) {
	b := NewBuilder(origin, cdn, core.RouteByMethod)

	assert.Equal(t, cdn+"/v2/assets", b.BuildURL("GET", "/v2/assets", nil))
}

func TestEncodeQuery_DoesNotReencode(t *testing.T) {
	got := EncodeQuery(core.Params{"where": "label%3D%27x%27", "a": "b+c"})

	assert.Equal(t, "a=b+c&where=label%3D%27x%27", got)
}

func TestFromConfig(t *testing.T) {
	cfg := core.DefaultConfig("key", "secret").
		WithEndpoints("https://origin.test", "https://cdn.test").
		WithRouting(core.RouteOriginOnly)

	b := FromConfig(cfg)

	assert.Equal(t, "https://origin.test", b.BaseURL("GET"))
}
