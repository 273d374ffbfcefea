package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyQuestion indicates the question was empty after trimming.
	ErrEmptyQuestion = errors.New("question is empty")

	// Pipeline Errors.

	// ErrSuggestionPending indicates a suggestion must be resolved before a new question is accepted.
	ErrSuggestionPending = errors.New("a suggestion is waiting for a choice")

	// ErrNoPendingSuggestion indicates a choice was made for a suggestion that is not held.
	ErrNoPendingSuggestion = errors.New("no matching suggestion is pending")

	// ErrCooldownActive indicates a question was submitted inside the cooldown window.
	ErrCooldownActive = errors.New("please wait before asking again")

	// Remote Answer Service Errors.

	// ErrRemoteNotConfigured indicates the remote answer service URL is unset.
	// Surfaced verbatim to the user; never retried.
	ErrRemoteNotConfigured = errors.New("remote answer service URL is not set")

	// ErrTransport indicates a network or HTTP failure talking to the remote answer service.
	ErrTransport = errors.New("remote answer service request failed")

	// Corpus Errors.

	// ErrInvalidCorpus indicates the compiled-in FAQ corpus violates its invariants.
	ErrInvalidCorpus = errors.New("invalid FAQ corpus")

	// Boundary Errors.

	// ErrClipboardUnavailable indicates the system clipboard cannot be used.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)

// TransportError carries the HTTP status and body of a failed remote call.
// Status is zero when the request never produced a response.
type TransportError struct {
	Status     int
	StatusText string
	Body       string
	Err        error
}

// Error renders the failure the way it is shown to the user.
func (e *TransportError) Error() string {
	if e.Status == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", ErrTransport, e.Err)
		}
		return ErrTransport.Error()
	}
	msg := fmt.Sprintf("API error: %d %s", e.Status, e.StatusText)
	if body := strings.TrimSpace(e.Body); body != "" {
		msg += "\n" + body
	}
	return msg
}

// Is reports whether target is ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// Unwrap returns the underlying network error, if any.
func (e *TransportError) Unwrap() error {
	return e.Err
}
