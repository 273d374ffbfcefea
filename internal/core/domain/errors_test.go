package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrEmptyQuestion", ErrEmptyQuestion},
		{"ErrSuggestionPending", ErrSuggestionPending},
		{"ErrNoPendingSuggestion", ErrNoPendingSuggestion},
		{"ErrCooldownActive", ErrCooldownActive},
		{"ErrRemoteNotConfigured", ErrRemoteNotConfigured},
		{"ErrTransport", ErrTransport},
		{"ErrInvalidCorpus", ErrInvalidCorpus},
		{"ErrClipboardUnavailable", ErrClipboardUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrRemoteNotConfigured(t *testing.T) {
	assert.Equal(t, "remote answer service URL is not set", ErrRemoteNotConfigured.Error())
	assert.False(t, errors.Is(ErrRemoteNotConfigured, ErrTransport))
}

func TestTransportError_WithStatus(t *testing.T) {
	err := &TransportError{Status: 502, StatusText: "Bad Gateway", Body: "upstream down\n"}

	assert.Equal(t, "API error: 502 Bad Gateway\nupstream down", err.Error())
	assert.True(t, errors.Is(err, ErrTransport))
}

func TestTransportError_WithoutBody(t *testing.T) {
	err := &TransportError{Status: 500, StatusText: "Internal Server Error"}

	assert.Equal(t, "API error: 500 Internal Server Error", err.Error())
}

func TestTransportError_NetworkFailure(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Err: cause}

	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, ErrTransport))
	assert.True(t, errors.Is(err, cause))
}

func TestTransportError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("ask: %w", &TransportError{Status: 404, StatusText: "Not Found"})

	var te *TransportError
	assert.True(t, errors.As(wrapped, &te))
	assert.Equal(t, 404, te.Status)
	assert.True(t, errors.Is(wrapped, ErrTransport))
}
