package core

import (
	"net/http"
	"strings"
)

// APIVersionPrefix is prepended to every request path.
const APIVersionPrefix = "/v2/"

var supportedMethods = [...]string{
	http.MethodGet,
	http.MethodPost,
	http.MethodDelete,
	http.MethodPut,
	http.MethodPatch,
}

// SupportedMethods returns the HTTP methods the API accepts.
// The returned slice is a fresh copy.
func SupportedMethods() []string {
	out := make([]string, len(supportedMethods))
	copy(out, supportedMethods[:])
	return out
}

// NormalizeMethod uppercases method and reports whether it is supported.
func NormalizeMethod(method string) (string, bool) {
	m := strings.ToUpper(strings.TrimSpace(method))
	for _, s := range supportedMethods {
		if s == m {
			return m, true
		}
	}
	return m, false
}

// HasBody reports whether requests with this method carry a JSON payload.
func HasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// NormalizePath prefixes path with APIVersionPrefix unless it already starts with it.
// Leading slashes are folded so "assets" and "/assets" both become "/v2/assets".
func NormalizePath(path string) string {
	if strings.HasPrefix(path, APIVersionPrefix) {
		return path
	}
	return APIVersionPrefix + strings.TrimLeft(path, "/")
}
