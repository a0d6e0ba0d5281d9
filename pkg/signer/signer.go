// Package signer derives Backlot request signatures and canonicalizes the
// parameters they are computed over.
//
// A signature is the first 43 characters of the base64 SHA-256 digest of
//
//	secret + METHOD + path + k1=v1 + k2=v2 + ... + body
//
// with parameters sorted by key. It binds a request to the exact parameter
// values and body bytes it was computed over; any later change invalidates it.
//
// Example usage:
//
//	s := signer.New(cfg)
//	params := s.SanitizeParams(core.Params{"limit": "10"})
//	params[core.ParamSignature] = s.Sign("GET", "/v2/assets", params, "")
package signer

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"slices"
	"strings"
	"time"

	"backlot/pkg/core"
)

// signatureLength drops the single '=' pad of a 32-byte digest's base64 form.
const signatureLength = 43

// Signer is safe for concurrent use. It holds only read-only configuration.
type Signer struct {
	apiKey           string
	secretKey        string
	expirationWindow int64
	roundUpTime      int64
	now              func() time.Time
}

type Option func(*Signer)

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		s.now = now
	}
}

// New creates a Signer from the credentials and expiration settings of cfg.
// An empty secret key still yields signatures; rejecting it is left to
// core.Config.Validate.
func New(cfg *core.Config, opts ...Option) *Signer {
	s := &Signer{
		apiKey:           cfg.Credentials.APIKey,
		secretKey:        cfg.Credentials.SecretKey,
		expirationWindow: int64(cfg.ExpirationWindow / time.Second),
		roundUpTime:      int64(cfg.RoundUpTime / time.Second),
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sign returns the signature for a request. params must already be
// canonicalized and must not contain the signature itself. body is empty for
// methods without a payload.
func (s *Signer) Sign(method, path string, params core.Params, body string) string {
	var b strings.Builder
	b.WriteString(s.secretKey)
	b.WriteString(strings.ToUpper(method))
	b.WriteString(path)

	for _, k := range sortedKeys(params) {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	b.WriteString(body)

	sum := sha256.Sum256([]byte(b.String()))
	encoded := base64.StdEncoding.EncodeToString(sum[:])
	if len(encoded) > signatureLength {
		encoded = encoded[:signatureLength]
	}
	return strings.TrimRight(EncodeValue(encoded), "=")
}

// Verify reports whether params carries a valid signature for the request.
// The comparison runs in constant time.
func (s *Signer) Verify(method, path string, params core.Params, body string) bool {
	got, ok := params[core.ParamSignature]
	if !ok || got == "" {
		return false
	}
	unsigned := params.Clone()
	delete(unsigned, core.ParamSignature)

	want := s.Sign(method, path, unsigned, body)
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

func sortedKeys(params core.Params) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
