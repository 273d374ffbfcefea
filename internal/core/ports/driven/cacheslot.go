package driven

import "context"

// CacheSlot is a single named persistent slot holding the serialised
// answer cache. The whole cache is read and written as one value.
type CacheSlot interface {
	// Load returns the stored bytes. A slot that has never been written
	// returns nil bytes and a nil error.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the stored bytes.
	Save(ctx context.Context, data []byte) error
}
