package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errors := []error{
		ErrMissingResolver,
		ErrMissingCorpus,
		ErrInvalidPorts,
	}

	seen := make(map[string]bool)
	for _, err := range errors {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMissingResolver_Message(t *testing.T) {
	assert.Contains(t, ErrMissingResolver.Error(), "resolver service")
}

func TestErrMissingCorpus_Message(t *testing.T) {
	assert.Contains(t, ErrMissingCorpus.Error(), "corpus service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
