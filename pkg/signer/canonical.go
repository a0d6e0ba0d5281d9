package signer

import (
	"net/url"
	"strconv"
	"strings"

	"backlot/pkg/core"
)

// SanitizeParams returns the canonical parameter set for a request. The
// caller's map is left untouched.
//
// Every value is URL-encoded with EncodeValue. When expires is absent it is
// set from Expires; when api_key is absent it is set to the configured key.
// Caller-supplied expires and api_key values are encoded like any other
// value; injected ones are used as is.
func (s *Signer) SanitizeParams(params core.Params) core.Params {
	out := make(core.Params, len(params)+2)
	for k, v := range params {
		out[k] = EncodeValue(v)
	}

	if _, ok := out[core.ParamExpires]; !ok {
		out[core.ParamExpires] = strconv.FormatInt(s.Expires(), 10)
	}
	if _, ok := out[core.ParamAPIKey]; !ok {
		out[core.ParamAPIKey] = s.apiKey
	}
	return out
}

// Expires returns now + expiration window rounded up to the next multiple of
// the round-up time. A value that already sits on a boundary still moves a
// full bucket forward, so the result is always strictly greater than
// now + window. Requests issued within the same bucket share an expires value
// and therefore a cacheable URL.
func (s *Signer) Expires() int64 {
	expires := s.now().Unix() + s.expirationWindow
	if s.roundUpTime <= 0 {
		return expires
	}
	return expires + s.roundUpTime - (expires % s.roundUpTime)
}

// EncodeValue URL-encodes v for use as a query value. Only ASCII letters,
// digits and "-_." are left as is; spaces become "+". This is the form the API
// verifies signatures against, which differs from url.QueryEscape only in
// escaping "~".
func EncodeValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "~", "%7E")
}
