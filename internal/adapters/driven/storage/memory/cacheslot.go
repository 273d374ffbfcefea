package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/faqdesk/internal/core/ports/driven"
)

// Ensure CacheSlot implements the interface.
var _ driven.CacheSlot = (*CacheSlot)(nil)

// CacheSlot keeps the serialised answer cache in memory.
// Nothing survives the process.
type CacheSlot struct {
	mu   sync.RWMutex
	data []byte

	// LoadErr and SaveErr, when set, are returned by Load and Save.
	LoadErr error
	SaveErr error

	saves int
}

// NewCacheSlot creates an empty in-memory slot, optionally holding initial bytes.
func NewCacheSlot(initial ...byte) *CacheSlot {
	s := &CacheSlot{}
	if len(initial) > 0 {
		s.data = append([]byte(nil), initial...)
	}
	return s
}

// Load returns a copy of the stored bytes.
func (s *CacheSlot) Load(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.data == nil {
		return nil, nil
	}
	return append([]byte(nil), s.data...), nil
}

// Save replaces the stored bytes.
func (s *CacheSlot) Save(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.data = append([]byte(nil), data...)
	s.saves++
	return nil
}

// Saves returns how many successful writes the slot has seen.
func (s *CacheSlot) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
