package core

import "net/http"

// ErrorCode is a stable, machine-readable identifier for an error condition.
type ErrorCode string

const (
	ErrCodeUnsupportedMethod ErrorCode = "UNSUPPORTED_METHOD"
	ErrCodeInvalidConfig     ErrorCode = "INVALID_CONFIG"
	ErrCodeEncodeBody        ErrorCode = "ENCODE_BODY"

	ErrCodeTransport ErrorCode = "TRANSPORT_ERROR"
	ErrCodeDecode    ErrorCode = "DECODE_ERROR"

	// Remote errors
	ErrCodeBadRequest  ErrorCode = "BAD_REQUEST"
	ErrCodeAuth        ErrorCode = "AUTH_ERROR"
	ErrCodeNotFound    ErrorCode = "NOT_FOUND"
	ErrCodeRateLimit   ErrorCode = "RATE_LIMIT"
	ErrCodeServerError ErrorCode = "SERVER_ERROR"
	ErrCodeRemote      ErrorCode = "REMOTE_ERROR"
)

// CodeForStatus maps an HTTP status code to an ErrorCode.
func CodeForStatus(statusCode int) ErrorCode {
	switch {
	case statusCode >= 500:
		return ErrCodeServerError
	case statusCode == http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return ErrCodeAuth
	case statusCode == http.StatusBadRequest:
		return ErrCodeBadRequest
	case statusCode == http.StatusNotFound:
		return ErrCodeNotFound
	default:
		return ErrCodeRemote
	}
}

// IsErrorCode checks if the error matches the specified error code.
func IsErrorCode(err error, code ErrorCode) bool {
	if e, ok := asError(err); ok {
		return e.Code == code
	}
	return false
}
