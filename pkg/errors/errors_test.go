package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapWithCode(t *testing.T) {
	err := WrapWithCode(fmt.Errorf("%w: status 400", ErrUpstream), "400", "apod rejected range")

	assert.Equal(t, "400", GetCode(err))
	assert.Equal(t, "apod rejected range", GetMessage(err))
	assert.True(t, Is(err, ErrUpstream))
	assert.Equal(t, "apod rejected range: upstream rejected request: status 400", err.Error())
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WrapWithCode(nil, "1", "ignored"))
}

func TestKind(t *testing.T) {
	cases := map[string]error{
		"ok":            nil,
		"transport":     Wrap(fmt.Errorf("%w: %w", ErrTransport, io.ErrUnexpectedEOF), "request"),
		"decode":        fmt.Errorf("%w: unexpected token", ErrDecode),
		"upstream":      WrapWithCode(ErrUpstream, "500", "rejected"),
		"invalid_range": fmt.Errorf("start after end: %w", ErrInvalidRange),
		"rate_limited":  ErrRateLimited,
		"unknown":       io.EOF,
	}

	for want, err := range cases {
		assert.Equal(t, want, Kind(err), "error: %v", err)
	}
}

func TestGetMessage_PlainError(t *testing.T) {
	assert.Equal(t, "EOF", GetMessage(io.EOF))
	assert.Equal(t, "", GetMessage(nil))
	assert.Equal(t, "", GetCode(io.EOF))
}
