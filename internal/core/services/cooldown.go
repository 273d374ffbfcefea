package services

import (
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/faqdesk/internal/core/ports/driving"
)

// Ensure Cooldown implements the interface.
var _ driving.CooldownGate = (*Cooldown)(nil)

// Cooldown spaces out Ask submissions so a user cannot flood the remote
// service. It allows one submission per interval.
type Cooldown struct {
	mu       sync.Mutex
	limiter  *rate.Limiter
	interval time.Duration
	now      func() time.Time
}

// NewCooldown creates a cooldown gate. A non-positive interval disables it.
func NewCooldown(interval time.Duration) *Cooldown {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Cooldown{
		limiter:  rate.NewLimiter(limit, 1),
		interval: interval,
		now:      time.Now,
	}
}

// Allow consumes the submission token if one is available.
func (c *Cooldown) Allow() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.limiter.AllowN(c.now(), 1)
}

// Remaining returns how long until the next submission is allowed.
func (c *Cooldown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.interval <= 0 {
		return 0
	}
	tokens := c.limiter.TokensAt(c.now())
	if tokens >= 1 {
		return 0
	}
	return time.Duration((1 - tokens) * float64(c.interval))
}

// RemainingSeconds returns Remaining rounded up to whole seconds, for countdown display.
func (c *Cooldown) RemainingSeconds() int {
	return int(math.Ceil(c.Remaining().Seconds()))
}

// SetInterval changes the spacing. A non-positive interval disables the gate.
func (c *Cooldown) SetInterval(interval time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	c.limiter.SetLimitAt(c.now(), limit)
	c.interval = interval
}

// Interval returns the configured spacing.
func (c *Cooldown) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}
