package driving

import "time"

// CooldownGate spaces out question submissions on long-running surfaces.
type CooldownGate interface {
	// Allow consumes the submission token if one is available.
	Allow() bool

	// Remaining returns how long until the next submission is allowed.
	Remaining() time.Duration

	// RemainingSeconds returns Remaining rounded up to whole seconds.
	RemainingSeconds() int
}
