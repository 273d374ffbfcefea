package services

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/custodia-labs/faqdesk/internal/core/domain"
	"github.com/custodia-labs/faqdesk/internal/core/ports/driven"
	"github.com/custodia-labs/faqdesk/internal/core/ports/driving"
	"github.com/custodia-labs/faqdesk/internal/core/textmatch"
	"github.com/custodia-labs/faqdesk/internal/logger"
)

// Ensure AnswerCache implements the interface.
var _ driving.AnswerCacheService = (*AnswerCache)(nil)

// AnswerCache is a bounded, newest-first store of remote answers keyed by
// normalised question. Every operation re-reads the slot, and every write
// replaces it wholesale. Slot failures never reach the caller: a failed or
// malformed load is an empty cache, and a failed save is dropped.
type AnswerCache struct {
	mu         sync.Mutex
	slot       driven.CacheSlot
	match      domain.MatchSettings
	maxEntries int
	now        func() time.Time
}

// CacheOption configures an AnswerCache.
type CacheOption func(*AnswerCache)

// WithClock sets the clock used to stamp entries.
func WithClock(now func() time.Time) CacheOption {
	return func(c *AnswerCache) { c.now = now }
}

// WithMaxEntries overrides the store bound.
func WithMaxEntries(n int) CacheOption {
	return func(c *AnswerCache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// WithMatchSettings overrides the fuzzy lookup gates.
func WithMatchSettings(m domain.MatchSettings) CacheOption {
	return func(c *AnswerCache) { c.match = m }
}

// NewAnswerCache creates an answer cache over slot.
func NewAnswerCache(slot driven.CacheSlot, opts ...CacheOption) *AnswerCache {
	c := &AnswerCache{
		slot:       slot,
		match:      domain.DefaultMatchSettings(),
		maxEntries: domain.DefaultCacheMaxEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetMatchSettings replaces the fuzzy lookup gates.
func (c *AnswerCache) SetMatchSettings(m domain.MatchSettings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.match = m
}

// LookupExact returns the entry whose key equals the normalised question.
// An empty key never hits.
func (c *AnswerCache) LookupExact(ctx context.Context, question string) (domain.CacheEntry, bool) {
	key := textmatch.Normalize(question)
	if key == "" {
		return domain.CacheEntry{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.load(ctx) {
		if e.Key == key {
			return e, true
		}
	}
	return domain.CacheEntry{}, false
}

// LookupFuzzy returns the most similar entry of the same script class whose
// length is comparable to the question, if it clears the acceptance bar.
func (c *AnswerCache) LookupFuzzy(ctx context.Context, question string) (domain.CacheMatch, bool) {
	q := strings.TrimSpace(question)
	if q == "" {
		return domain.CacheMatch{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entries := c.load(ctx)
	if len(entries) == 0 {
		return domain.CacheMatch{}, false
	}

	cjk := textmatch.IsCJKLike(q)
	qLen := float64(utf8.RuneCountInString(q))

	var best domain.CacheMatch
	found := false
	for _, e := range entries {
		if textmatch.IsCJKLike(e.Question) != cjk {
			continue
		}
		eLen := utf8.RuneCountInString(strings.TrimSpace(e.Question))
		if eLen == 0 {
			continue
		}
		ratio := qLen / float64(eLen)
		if ratio < c.match.LengthRatioMin || ratio > c.match.LengthRatioMax {
			continue
		}

		score := textmatch.Similarity(q, e.Question)
		if !found || score > best.Score {
			best = domain.CacheMatch{Entry: e, Score: score}
			found = true
		}
	}

	if !found {
		return domain.CacheMatch{}, false
	}

	threshold := c.match.FuzzyThreshold(cjk)
	accepted := best.Score >= threshold
	logger.Score("fuzzy cache", best.Score, threshold, accepted)
	if !accepted {
		return domain.CacheMatch{}, false
	}
	return best, true
}

// Put records answer as the newest entry for question. An entry with the
// same key is replaced, never duplicated. Empty keys and blank answers are
// ignored.
func (c *AnswerCache) Put(ctx context.Context, question, answer string) {
	key := textmatch.Normalize(question)
	a := strings.TrimSpace(answer)
	if key == "" || a == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entries := c.load(ctx)
	next := make([]domain.CacheEntry, 0, len(entries)+1)
	next = append(next, domain.CacheEntry{
		Key:      key,
		Question: strings.TrimSpace(question),
		Answer:   a,
		SavedAt:  c.now().UnixMilli(),
	})
	for _, e := range entries {
		if e.Key != key {
			next = append(next, e)
		}
	}
	if len(next) > c.maxEntries {
		next = next[:c.maxEntries]
	}

	c.save(ctx, next)
}

// Entries returns the cached entries, newest first.
func (c *AnswerCache) Entries(ctx context.Context) []domain.CacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Clear removes every entry.
func (c *AnswerCache) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.save(ctx, []domain.CacheEntry{})
}

// storedEntry mirrors domain.CacheEntry loosely so entries with a missing
// or mistyped key, question or answer can be dropped one by one.
type storedEntry struct {
	Key      any `json:"k"`
	Question any `json:"q"`
	Answer   any `json:"a"`
	SavedAt  any `json:"t"`
}

// load reads the slot. An unreadable or malformed slot yields an empty
// cache. Inside a well-formed slot, entries without a key, question or
// non-blank answer are dropped individually and the rest are kept.
func (c *AnswerCache) load(ctx context.Context) []domain.CacheEntry {
	data, err := c.slot.Load(ctx)
	if err != nil {
		logger.Debug("cache: load failed, treating as empty: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var stored []*storedEntry
	if err := json.Unmarshal(data, &stored); err != nil {
		logger.Debug("cache: slot %s is malformed, treating as empty: %v", domain.CacheSlotName, err)
		return nil
	}

	entries := make([]domain.CacheEntry, 0, len(stored))
	for _, s := range stored {
		if s == nil {
			continue
		}
		key, ok1 := s.Key.(string)
		question, ok2 := s.Question.(string)
		answer, ok3 := s.Answer.(string)
		if !ok1 || !ok2 || !ok3 {
			continue
		}
		if key == "" || strings.TrimSpace(answer) == "" {
			continue
		}
		savedAt, _ := s.SavedAt.(float64)
		entries = append(entries, domain.CacheEntry{
			Key:      key,
			Question: question,
			Answer:   answer,
			SavedAt:  int64(savedAt),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SavedAt > entries[j].SavedAt
	})
	return entries
}

func (c *AnswerCache) save(ctx context.Context, entries []domain.CacheEntry) {
	data, err := json.Marshal(entries)
	if err != nil {
		logger.Debug("cache: encode failed: %v", err)
		return
	}
	if err := c.slot.Save(ctx, data); err != nil {
		logger.Debug("cache: save to slot %s failed: %v", domain.CacheSlotName, err)
	}
}
