package core

import (
	"maps"
)

// Query parameter names that are part of the signing contract.
const (
	ParamAPIKey    = "api_key"
	ParamExpires   = "expires"
	ParamSignature = "signature"
)

// Params holds query parameters. Keys are unique; order only matters after
// canonical sorting.
type Params map[string]string

// Clone returns a shallow copy. A nil Params clones to an empty, non-nil map.
func (p Params) Clone() Params {
	out := make(Params, len(p)+3)
	maps.Copy(out, p)
	return out
}

// Request describes one API call before it is signed.
type Request struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Params Params `json:"params,omitempty"`
	// Body is the serialized payload, empty for methods without one.
	Body string `json:"body,omitempty"`
}

func NewRequest(method, path string) *Request {
	return &Request{
		Method: method,
		Path:   path,
		Params: make(Params),
	}
}

func (r *Request) SetParam(key, value string) *Request {
	if r.Params == nil {
		r.Params = make(Params)
	}
	r.Params[key] = value
	return r
}

func (r *Request) SetParams(params Params) *Request {
	if r.Params == nil {
		r.Params = make(Params)
	}
	maps.Copy(r.Params, params)
	return r
}

func (r *Request) SetBody(body string) *Request {
	r.Body = body
	return r
}

// SignedRequest is what the transport sends: the final URL already carries
// api_key, expires and signature.
type SignedRequest struct {
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    string            `json:"body,omitempty"`
}

// Response is the transport's view of an HTTP response.
type Response struct {
	// StatusCode is the HTTP status code returned by the server.
	StatusCode int
	// Message is the reason phrase, e.g. "Not Found".
	Message string
	Body    []byte
	Headers map[string]string
}
