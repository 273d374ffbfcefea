package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/faqdesk/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, DatabaseFile), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_MigrationsRecorded(t *testing.T) {
	store := setupTestStore(t)

	version, err := store.SchemaVersion()

	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestNewStore_ReopenIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.CacheSlot(domain.CacheSlotName).Save(ctx, []byte(`[]`)))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	data, err := second.CacheSlot(domain.CacheSlotName).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestCacheSlot_EmptyLoad(t *testing.T) {
	store := setupTestStore(t)

	data, err := store.CacheSlot(domain.CacheSlotName).Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestCacheSlot_SaveOverwrites(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	slot := store.CacheSlot(domain.CacheSlotName)

	require.NoError(t, slot.Save(ctx, []byte(`[{"k":"a"}]`)))
	require.NoError(t, slot.Save(ctx, []byte(`[{"k":"b"}]`)))

	data, err := slot.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[{"k":"b"}]`, string(data))
}

func TestCacheSlot_NamesAreIndependent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CacheSlot("one").Save(ctx, []byte("1")))
	require.NoError(t, store.CacheSlot("two").Save(ctx, []byte("2")))

	one, err := store.CacheSlot("one").Load(ctx)
	require.NoError(t, err)
	two, err := store.CacheSlot("two").Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", string(one))
	assert.Equal(t, "2", string(two))
}

func TestCacheSlot_ClosedStore(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.CacheSlot("x").Load(context.Background())
	assert.Error(t, err)
	assert.Error(t, store.CacheSlot("x").Save(context.Background(), []byte("x")))
}
