package domain

import "time"

// CacheSlotName is the named slot that holds the serialised answer cache.
const CacheSlotName = "rsjpfaq_cache_v2"

// DefaultCacheMaxEntries bounds the answer cache.
const DefaultCacheMaxEntries = 40

// NoAnswerMarker is delivered and cached when the remote service returns an empty answer.
const NoAnswerMarker = "(No answer returned)"

// CacheEntry is a previously answered question.
// Key is the normalised form of Question and is unique within the store.
type CacheEntry struct {
	Key      string `json:"k"`
	Question string `json:"q"`
	Answer   string `json:"a"`

	// SavedAt is the write time in epoch milliseconds.
	SavedAt int64 `json:"t"`
}

// SavedTime returns SavedAt as a time.Time in local time.
func (e CacheEntry) SavedTime() time.Time {
	return time.UnixMilli(e.SavedAt)
}

// CacheMatch is a fuzzy cache hit with its similarity score.
type CacheMatch struct {
	Entry CacheEntry
	Score float64
}
