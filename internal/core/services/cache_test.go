package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/faqdesk/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/faqdesk/internal/core/domain"
)

// stepClock returns a clock that advances one second per call.
func stepClock() func() time.Time {
	t := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newTestCache(slot *memory.CacheSlot) *AnswerCache {
	return NewAnswerCache(slot, WithClock(stepClock()))
}

func TestAnswerCache_PutAndLookupExact(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(memory.NewCacheSlot())

	cache.Put(ctx, "  Where is the Library? ", "  Building B.  ")

	entry, ok := cache.LookupExact(ctx, "where is the library")
	require.True(t, ok)
	assert.Equal(t, "where is the library", entry.Key)
	assert.Equal(t, "Where is the Library?", entry.Question)
	assert.Equal(t, "Building B.", entry.Answer)
	assert.NotZero(t, entry.SavedAt)
}

func TestAnswerCache_LookupExact_EmptyKey(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(memory.NewCacheSlot())
	cache.Put(ctx, "question", "answer")

	_, ok := cache.LookupExact(ctx, " ?!. ")

	assert.False(t, ok)
}

func TestAnswerCache_Put_IgnoresEmptyKeyOrAnswer(t *testing.T) {
	ctx := context.Background()
	slot := memory.NewCacheSlot()
	cache := newTestCache(slot)

	cache.Put(ctx, "...", "answer")
	cache.Put(ctx, "question", "   ")

	assert.Empty(t, cache.Entries(ctx))
	assert.Zero(t, slot.Saves())
}

func TestAnswerCache_Put_ReplacesSameKey(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(memory.NewCacheSlot())

	cache.Put(ctx, "Where is the library?", "old")
	cache.Put(ctx, "Other question here", "other")
	cache.Put(ctx, "where is the LIBRARY", "new")

	entries := cache.Entries(ctx)
	require.Len(t, entries, 2)
	assert.Equal(t, "new", entries[0].Answer)
	assert.Equal(t, "where is the LIBRARY", entries[0].Question)
	assert.Equal(t, "other", entries[1].Answer)
}

func TestAnswerCache_Put_BoundedNewestFirst(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(memory.NewCacheSlot())

	for i := range 45 {
		cache.Put(ctx, fmt.Sprintf("question number %d", i), fmt.Sprintf("answer %d", i))
	}

	entries := cache.Entries(ctx)
	require.Len(t, entries, domain.DefaultCacheMaxEntries)
	assert.Equal(t, "question number 44", entries[0].Question)
	assert.Equal(t, "question number 5", entries[len(entries)-1].Question)
	for i := 1; i < len(entries); i++ {
		assert.Greater(t, entries[i-1].SavedAt, entries[i].SavedAt)
	}

	_, ok := cache.LookupExact(ctx, "question number 4")
	assert.False(t, ok)
}

func TestAnswerCache_WithMaxEntries(t *testing.T) {
	ctx := context.Background()
	cache := NewAnswerCache(memory.NewCacheSlot(), WithClock(stepClock()), WithMaxEntries(2))

	cache.Put(ctx, "one question", "1")
	cache.Put(ctx, "two question", "2")
	cache.Put(ctx, "three question", "3")

	entries := cache.Entries(ctx)
	require.Len(t, entries, 2)
	assert.Equal(t, "3", entries[0].Answer)
	assert.Equal(t, "2", entries[1].Answer)
}

func TestAnswerCache_LookupFuzzy(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		cached  string
		query   string
		wantHit bool
	}{
		{"cjk near duplicate", "寮の門限は何時ですか？", "寮の門限は何時ですか", true},
		{"cjk below threshold", "寮の門限は何時ですか？", "寮の門限は何時までですか？", false},
		{"english same tokens", "Where is the nearest supermarket to the dorm?", "Where's the nearest supermarket to the dorm?", true},
		{"english below threshold", "Can I bring my bicycle to campus?", "Can I bring my bike to campus?", false},
		{"script mismatch", "wifi", "wifiは", false},
		{"script mismatch above cjk threshold", "wifi password", "wifi passwordは", false},
		{"script mismatch cjk entry latin query", "wifi passwordは", "wifi password", false},
		{"length ratio too large", "寮の門限", "寮の門限は何時ですか", false},
		{"length ratio too small", "寮の門限は何時ですか", "寮の門限", false},
		{"blank query", "寮の門限は何時ですか？", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newTestCache(memory.NewCacheSlot())
			cache.Put(ctx, tt.cached, "cached answer")

			match, ok := cache.LookupFuzzy(ctx, tt.query)

			assert.Equal(t, tt.wantHit, ok)
			if tt.wantHit {
				assert.Equal(t, "cached answer", match.Entry.Answer)
				assert.Equal(t, tt.cached, match.Entry.Question)
			}
		})
	}
}

func TestAnswerCache_LookupFuzzy_PicksBestScore(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(memory.NewCacheSlot())
	cache.Put(ctx, "寮の門限は何時ですか？", "exact-ish")
	cache.Put(ctx, "寮の門限は何時までですか？", "further")

	match, ok := cache.LookupFuzzy(ctx, "寮の門限は何時ですか")

	require.True(t, ok)
	assert.Equal(t, "exact-ish", match.Entry.Answer)
	assert.GreaterOrEqual(t, match.Score, 0.92)
}

func TestAnswerCache_LookupFuzzy_CustomThresholds(t *testing.T) {
	ctx := context.Background()
	m := domain.DefaultMatchSettings()
	m.FuzzyThresholdCJK = 0.8
	cache := NewAnswerCache(memory.NewCacheSlot(), WithClock(stepClock()), WithMatchSettings(m))
	cache.Put(ctx, "寮の門限は何時ですか？", "cached answer")

	_, ok := cache.LookupFuzzy(ctx, "寮の門限は何時までですか？")

	assert.True(t, ok)
}

func TestAnswerCache_Load_MalformedIsEmpty(t *testing.T) {
	ctx := context.Background()

	for _, raw := range []string{`not json`, `{"k":"x"}`, `[1,2]`, `null`} {
		t.Run(raw, func(t *testing.T) {
			cache := newTestCache(memory.NewCacheSlot([]byte(raw)...))
			assert.Empty(t, cache.Entries(ctx))

			_, ok := cache.LookupExact(ctx, "x")
			assert.False(t, ok)
		})
	}
}

func TestAnswerCache_Load_DropsIncompleteAndSorts(t *testing.T) {
	ctx := context.Background()
	raw := `[
		{"k":"older","q":"Older","a":"1","t":100},
		{"k":"missing answer","q":"Missing answer","t":300},
		{"k":"newer","q":"Newer","a":"2","t":200},
		{"k":5,"q":"Wrong type","a":"3","t":400},
		{"k":"","q":"Blank key","a":"4","t":500},
		{"k":"blank answer","q":"Blank answer","a":"  ","t":600},
		{"k":"empty answer","q":"Empty answer","a":"","t":700},
		null
	]`
	cache := newTestCache(memory.NewCacheSlot([]byte(raw)...))

	entries := cache.Entries(ctx)

	require.Len(t, entries, 2)
	assert.Equal(t, "newer", entries[0].Key)
	assert.Equal(t, "older", entries[1].Key)
}

func TestAnswerCache_Load_ErrorIsEmpty(t *testing.T) {
	ctx := context.Background()
	slot := memory.NewCacheSlot()
	slot.LoadErr = errors.New("storage disabled")
	cache := newTestCache(slot)

	assert.Empty(t, cache.Entries(ctx))
	_, ok := cache.LookupFuzzy(ctx, "anything at all")
	assert.False(t, ok)
}

func TestAnswerCache_Save_ErrorIsSwallowed(t *testing.T) {
	ctx := context.Background()
	slot := memory.NewCacheSlot()
	slot.SaveErr = errors.New("quota exceeded")
	cache := newTestCache(slot)

	assert.NotPanics(t, func() {
		cache.Put(ctx, "question", "answer")
	})

	_, ok := cache.LookupExact(ctx, "question")
	assert.False(t, ok)
}

func TestAnswerCache_PersistsWireFormat(t *testing.T) {
	ctx := context.Background()
	slot := memory.NewCacheSlot()
	cache := NewAnswerCache(slot, WithClock(func() time.Time { return time.UnixMilli(1717236000000) }))

	cache.Put(ctx, "Where is the library?", "Building B")

	data, err := slot.Load(ctx)
	require.NoError(t, err)

	var stored []map[string]any
	require.NoError(t, json.Unmarshal(data, &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, "where is the library", stored[0]["k"])
	assert.Equal(t, "Where is the library?", stored[0]["q"])
	assert.Equal(t, "Building B", stored[0]["a"])
	assert.EqualValues(t, 1717236000000, stored[0]["t"])
}

func TestAnswerCache_Clear(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(memory.NewCacheSlot())
	cache.Put(ctx, "question", "answer")

	cache.Clear(ctx)

	assert.Empty(t, cache.Entries(ctx))
}
