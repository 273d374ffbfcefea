package ask

import "errors"

// Error definitions for the ask view.
var (
	// ErrNoResolver indicates that no resolver service was provided.
	ErrNoResolver = errors.New("resolver service is required")

	// ErrNoActions indicates copy and mail are unavailable.
	ErrNoActions = errors.New("answer actions are not available")
)
