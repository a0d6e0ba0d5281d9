package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		want      string
	}{
		{"unknown", ErrorTypeUnknown, "UNKNOWN"},
		{"validation", ErrorTypeValidation, "VALIDATION"},
		{"transport", ErrorTypeTransport, "TRANSPORT"},
		{"decode", ErrorTypeDecode, "DECODE"},
		{"bad_request", ErrorTypeBadRequest, "BAD_REQUEST"},
		{"authentication", ErrorTypeAuthentication, "AUTHENTICATION"},
		{"not_found", ErrorTypeNotFound, "NOT_FOUND"},
		{"rate_limit", ErrorTypeRateLimit, "RATE_LIMIT"},
		{"server_error", ErrorTypeServerError, "SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.errorType.String())
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "remote",
			err:  NewRemoteError(404, "Not Found").WithRequest("GET", "/v2/assets/abc"),
			want: "backlot: NOT_FOUND (404): Not Found [GET /v2/assets/abc]",
		},
		{
			name: "validation",
			err:  NewUnsupportedMethodError("XYZ"),
			want: `backlot: VALIDATION (UNSUPPORTED_METHOD): method "XYZ" not supported`,
		},
		{
			name: "transport",
			err:  NewTransportError(errors.New("connection refused")).WithRequest("POST", "/v2/assets"),
			want: "backlot: TRANSPORT (TRANSPORT_ERROR): request failed [POST /v2/assets]: connection refused",
		},
		{
			name: "bare",
			err:  NewError(ErrorTypeUnknown, "boom"),
			want: "backlot: UNKNOWN: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestNewRemoteError(t *testing.T) {
	err := NewRemoteError(503, "Service Unavailable")

	assert.Equal(t, ErrorTypeServerError, err.Type)
	assert.Equal(t, 503, err.StatusCode)
	assert.Equal(t, ErrCodeServerError, err.Code)
	assert.Equal(t, "Service Unavailable", err.Message)
	assert.False(t, err.Timestamp.IsZero())
}

func TestTypeForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorType
		code   ErrorCode
	}{
		{400, ErrorTypeBadRequest, ErrCodeBadRequest},
		{401, ErrorTypeAuthentication, ErrCodeAuth},
		{403, ErrorTypeAuthentication, ErrCodeAuth},
		{404, ErrorTypeNotFound, ErrCodeNotFound},
		{409, ErrorTypeUnknown, ErrCodeRemote},
		{429, ErrorTypeRateLimit, ErrCodeRateLimit},
		{500, ErrorTypeServerError, ErrCodeServerError},
		{302, ErrorTypeUnknown, ErrCodeRemote},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, TypeForStatus(tt.status))
			assert.Equal(t, tt.code, CodeForStatus(tt.status))
		})
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	err := NewTransportError(fmt.Errorf("dial: %w", context.DeadlineExceeded))

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.True(t, IsTransportError(err))
	assert.False(t, IsRemoteError(err))
	assert.False(t, IsValidationError(err))
}

func TestErrorPredicates(t *testing.T) {
	notFound := NewRemoteError(404, "Not Found")
	auth := NewRemoteError(401, "Unauthorized")
	throttled := NewRemoteError(429, "Too Many Requests")
	unsupported := NewUnsupportedMethodError("TRACE")
	wrapped := fmt.Errorf("fetch asset: %w", notFound)

	assert.True(t, IsNotFoundError(notFound))
	assert.True(t, IsNotFoundError(wrapped))
	assert.True(t, IsRemoteError(wrapped))
	assert.False(t, IsNotFoundError(auth))

	assert.True(t, IsAuthenticationError(auth))
	assert.True(t, IsRateLimitError(throttled))

	assert.True(t, IsValidationError(unsupported))
	assert.False(t, IsRemoteError(unsupported))

	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsRemoteError(errors.New("plain")))
}

func TestIsErrorCode(t *testing.T) {
	err := fmt.Errorf("call: %w", NewUnsupportedMethodError("xyz"))

	assert.True(t, IsErrorCode(err, ErrCodeUnsupportedMethod))
	assert.False(t, IsErrorCode(err, ErrCodeTransport))
	assert.False(t, IsErrorCode(errors.New("plain"), ErrCodeUnsupportedMethod))
}
