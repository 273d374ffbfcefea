// Package file persists the answer cache as a JSON file on disk.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/faqdesk/internal/core/ports/driven"
)

// Ensure CacheSlot implements the interface.
var _ driven.CacheSlot = (*CacheSlot)(nil)

// CacheFile is the default cache file name inside the data directory.
const CacheFile = "cache.json"

// CacheSlot stores the serialised cache in a single file.
// Writes go to a temporary file that is renamed over the target, so a crash
// mid-write leaves the previous cache intact.
type CacheSlot struct {
	mu   sync.Mutex
	path string
}

// NewCacheSlot returns a slot backed by path.
// If path is empty, defaults to ~/.faqdesk/data/cache.json.
func NewCacheSlot(path string) (*CacheSlot, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		path = filepath.Join(home, ".faqdesk", "data", CacheFile)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	return &CacheSlot{path: path}, nil
}

// Path returns the cache file path.
func (s *CacheSlot) Path() string {
	return s.path
}

// Load returns the file contents, or nil if the file does not exist.
func (s *CacheSlot) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache file: %w", err)
	}
	return data, nil
}

// Save replaces the file contents.
func (s *CacheSlot) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".cache-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close cache file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}
