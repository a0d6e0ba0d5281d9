package core

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorType represents the category of a client error.
type ErrorType int

// Error type constants categorize errors for proper handling and retry logic.
const (
	// ErrorTypeUnknown indicates an unclassified error, including remote
	// statuses with no more specific category.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeValidation indicates the call was rejected locally before any I/O.
	ErrorTypeValidation
	// ErrorTypeTransport indicates the transport failed before a status was received.
	ErrorTypeTransport
	// ErrorTypeDecode indicates a successful response carried a body that is not valid JSON.
	ErrorTypeDecode
	// ErrorTypeBadRequest indicates the API rejected the request parameters.
	ErrorTypeBadRequest
	// ErrorTypeAuthentication indicates a bad signature, an expired request or an unknown API key.
	ErrorTypeAuthentication
	// ErrorTypeNotFound indicates the requested resource does not exist.
	ErrorTypeNotFound
	// ErrorTypeRateLimit indicates the API throttled the account.
	ErrorTypeRateLimit
	// ErrorTypeServerError indicates a server-side error.
	ErrorTypeServerError
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	return [...]string{
		"UNKNOWN",
		"VALIDATION",
		"TRANSPORT",
		"DECODE",
		"BAD_REQUEST",
		"AUTHENTICATION",
		"NOT_FOUND",
		"RATE_LIMIT",
		"SERVER_ERROR",
	}[t]
}

// Error is the single structured error returned by the client.
// A remote error has a non-zero StatusCode; validation, transport and
// decode errors never do.
type Error struct {
	// Type categorizes the error for programmatic handling.
	Type ErrorType `json:"type"`
	// StatusCode is the HTTP status code from the response, zero if none was received.
	StatusCode int `json:"status_code,omitempty"`
	// Code is a stable machine-readable identifier.
	Code ErrorCode `json:"code,omitempty"`
	// Message is the server's reason phrase for remote errors, or a local description.
	Message string `json:"message"`
	Method  string `json:"method,omitempty"`
	Path    string `json:"path,omitempty"`
	// Err is the underlying cause, if any.
	Err       error     `json:"-"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *Error) Error() string {
	var s string
	switch {
	case e.StatusCode != 0:
		s = fmt.Sprintf("backlot: %s (%d): %s", e.Type, e.StatusCode, e.Message)
	case e.Code != "":
		s = fmt.Sprintf("backlot: %s (%s): %s", e.Type, e.Code, e.Message)
	default:
		s = fmt.Sprintf("backlot: %s: %s", e.Type, e.Message)
	}
	if e.Method != "" {
		s += fmt.Sprintf(" [%s %s]", e.Method, e.Path)
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithCode sets the error code and returns the error for chaining.
func (e *Error) WithCode(code ErrorCode) *Error {
	e.Code = code
	return e
}

// WithRequest records the method and path of the failing call.
func (e *Error) WithRequest(method, path string) *Error {
	e.Method = method
	e.Path = path
	return e
}

// NewError creates an Error of the given type. The timestamp is set to the current time.
func NewError(errorType ErrorType, message string) *Error {
	return &Error{
		Type:      errorType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewUnsupportedMethodError reports a method outside the supported set.
func NewUnsupportedMethodError(method string) *Error {
	return NewError(ErrorTypeValidation, fmt.Sprintf("method %q not supported", method)).
		WithCode(ErrCodeUnsupportedMethod)
}

// NewRemoteError builds the error for a non-200 response. The message is
// kept verbatim and the type is derived from the status code.
func NewRemoteError(statusCode int, message string) *Error {
	e := NewError(TypeForStatus(statusCode), message)
	e.StatusCode = statusCode
	e.Code = CodeForStatus(statusCode)
	return e
}

// NewTransportError wraps a failure reported by the transport.
func NewTransportError(err error) *Error {
	e := NewError(ErrorTypeTransport, "request failed").WithCode(ErrCodeTransport)
	e.Err = err
	return e
}

// NewDecodeError wraps a failure to decode a successful response body.
func NewDecodeError(err error) *Error {
	e := NewError(ErrorTypeDecode, "invalid JSON response").WithCode(ErrCodeDecode)
	e.Err = err
	return e
}

// TypeForStatus maps an HTTP status code to an ErrorType.
func TypeForStatus(statusCode int) ErrorType {
	switch {
	case statusCode >= 500:
		return ErrorTypeServerError
	case statusCode == http.StatusTooManyRequests:
		return ErrorTypeRateLimit
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return ErrorTypeAuthentication
	case statusCode == http.StatusBadRequest:
		return ErrorTypeBadRequest
	case statusCode == http.StatusNotFound:
		return ErrorTypeNotFound
	default:
		return ErrorTypeUnknown
	}
}

func asError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsValidationError returns true if the call was rejected before any I/O.
// Validation errors are fixed by correcting the call, never by retrying it.
func IsValidationError(err error) bool {
	e, ok := asError(err)
	return ok && e.Type == ErrorTypeValidation
}

// IsRemoteError returns true if the API answered with a status other than 200.
func IsRemoteError(err error) bool {
	e, ok := asError(err)
	return ok && e.StatusCode != 0
}

// IsTransportError returns true if no response was received.
// Transport errors are typically retryable.
func IsTransportError(err error) bool {
	e, ok := asError(err)
	return ok && e.Type == ErrorTypeTransport
}

// IsNotFoundError returns true if the API reported a missing resource.
func IsNotFoundError(err error) bool {
	e, ok := asError(err)
	return ok && e.Type == ErrorTypeNotFound
}

// IsAuthenticationError returns true if the API rejected the credentials or signature.
// A rejected signature usually means the clock is skewed or the secret is wrong.
func IsAuthenticationError(err error) bool {
	e, ok := asError(err)
	return ok && e.Type == ErrorTypeAuthentication
}

// IsRateLimitError returns true if the API throttled the request.
func IsRateLimitError(err error) bool {
	e, ok := asError(err)
	return ok && e.Type == ErrorTypeRateLimit
}
