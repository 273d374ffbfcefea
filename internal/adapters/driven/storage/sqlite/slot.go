package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/faqdesk/internal/core/ports/driven"
)

// cacheSlot implements driven.CacheSlot over one row of the slots table.
type cacheSlot struct {
	store *Store
	name  string
}

var _ driven.CacheSlot = (*cacheSlot)(nil)

// Load returns the slot's bytes, or nil if the slot has never been written.
func (s *cacheSlot) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.store.db.QueryRowContext(ctx,
		"SELECT data FROM slots WHERE name = ?", s.name,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading slot %s: %w", s.name, err)
	}
	return data, nil
}

// Save replaces the slot's bytes.
func (s *cacheSlot) Save(ctx context.Context, data []byte) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO slots (name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, s.name, data)
	if err != nil {
		return fmt.Errorf("saving slot %s: %w", s.name, err)
	}
	return nil
}
