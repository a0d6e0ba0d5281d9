package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportFunc(t *testing.T) {
	var got *SignedRequest
	var tr Transport = TransportFunc(func(ctx context.Context, req *SignedRequest) (*Response, error) {
		got = req
		return &Response{StatusCode: 200, Message: "OK", Body: []byte(`{}`)}, nil
	})

	req := &SignedRequest{Method: "GET", URL: "http://cdn.api.ooyala.com/v2/assets?api_key=k"}
	resp, err := tr.Do(context.Background(), req)

	require.NoError(t, err)
	assert.Same(t, req, got)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "OK", resp.Message)
}
