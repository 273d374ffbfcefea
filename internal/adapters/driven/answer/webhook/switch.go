package webhook

import (
	"context"
	"sync"

	"github.com/custodia-labs/faqdesk/internal/core/domain"
	"github.com/custodia-labs/faqdesk/internal/core/ports/driven"
)

// Ensure Switch implements the interface.
var _ driven.Answerer = (*Switch)(nil)

// Switch is an answerer whose endpoint can be replaced while it is in use.
// Calls already in flight finish against the endpoint they started with.
type Switch struct {
	mu      sync.RWMutex
	current driven.Answerer
}

// NewSwitch returns a Switch for the given remote settings.
func NewSwitch(settings domain.RemoteSettings) *Switch {
	return &Switch{current: New(settings)}
}

// Update points later calls at the endpoint in settings.
func (s *Switch) Update(settings domain.RemoteSettings) {
	next := New(settings)
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
}

// Answer forwards to the current endpoint.
func (s *Switch) Answer(ctx context.Context, question string) (string, error) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()
	return current.Answer(ctx, question)
}
