package domain

import (
	"fmt"
	"time"
)

const unknownDescription = "Unknown"

// CacheBackend selects where the answer cache slot is persisted.
type CacheBackend string

// Available cache backends.
const (
	// CacheBackendSQLite stores the slot in the local SQLite database.
	CacheBackendSQLite CacheBackend = "sqlite"

	// CacheBackendFile stores the slot as a JSON file.
	CacheBackendFile CacheBackend = "file"

	// CacheBackendMemory keeps the slot in memory for the process lifetime.
	CacheBackendMemory CacheBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b CacheBackend) IsValid() bool {
	switch b {
	case CacheBackendSQLite, CacheBackendFile, CacheBackendMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b CacheBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b CacheBackend) Description() string {
	switch b {
	case CacheBackendSQLite:
		return "SQLite (~/.faqdesk/data/faqdesk.db)"
	case CacheBackendFile:
		return "JSON file (~/.faqdesk/data/cache.json)"
	case CacheBackendMemory:
		return "Memory (not persisted)"
	default:
		return unknownDescription
	}
}

// AllCacheBackends returns all available cache backends.
func AllCacheBackends() []CacheBackend {
	return []CacheBackend{CacheBackendSQLite, CacheBackendFile, CacheBackendMemory}
}

// RemoteSettings configures the remote answer service.
type RemoteSettings struct {
	// URL is the webhook endpoint. Empty means unconfigured.
	URL string

	// Token is an optional bearer token.
	Token string

	// Timeout bounds a single request.
	Timeout time.Duration
}

// IsConfigured returns true if a URL is set.
func (r RemoteSettings) IsConfigured() bool {
	return r.URL != ""
}

// CacheSettings configures the answer cache.
type CacheSettings struct {
	// Backend selects the slot persistence.
	Backend CacheBackend

	// MaxEntries bounds the store.
	MaxEntries int
}

// MatchSettings holds the empirically tuned routing thresholds.
type MatchSettings struct {
	// StaticThreshold is the minimum static corpus score for a FAQ suggestion.
	StaticThreshold float64

	// FuzzyThresholdCJK is the fuzzy cache acceptance bar for CJK-like questions.
	FuzzyThresholdCJK float64

	// FuzzyThresholdOther is the fuzzy cache acceptance bar for other questions.
	FuzzyThresholdOther float64

	// LengthRatioMin and LengthRatioMax gate fuzzy candidates by query/entry length.
	LengthRatioMin float64
	LengthRatioMax float64
}

// Validate checks thresholds lie in [0,1] and the ratio window is ordered.
func (m MatchSettings) Validate() error {
	for name, v := range map[string]float64{
		"static threshold":        m.StaticThreshold,
		"fuzzy threshold (cjk)":   m.FuzzyThresholdCJK,
		"fuzzy threshold (other)": m.FuzzyThresholdOther,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s must be between 0 and 1, got %v", ErrInvalidInput, name, v)
		}
	}
	if m.LengthRatioMin <= 0 || m.LengthRatioMax < m.LengthRatioMin {
		return fmt.Errorf("%w: length ratio window [%v, %v] is invalid",
			ErrInvalidInput, m.LengthRatioMin, m.LengthRatioMax)
	}
	return nil
}

// FuzzyThreshold returns the acceptance bar for the question's script class.
func (m MatchSettings) FuzzyThreshold(cjk bool) float64 {
	if cjk {
		return m.FuzzyThresholdCJK
	}
	return m.FuzzyThresholdOther
}

// AskSettings configures the ask action.
type AskSettings struct {
	// Cooldown is the minimum spacing between Ask submissions.
	Cooldown time.Duration
}

// AppSettings holds all application settings.
type AppSettings struct {
	Remote RemoteSettings
	Cache  CacheSettings
	Match  MatchSettings
	Ask    AskSettings
}

// DefaultAppSettings returns settings with the tuned defaults.
// The remote service is left unconfigured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Remote: RemoteSettings{
			Timeout: 60 * time.Second,
		},
		Cache: CacheSettings{
			Backend:    CacheBackendSQLite,
			MaxEntries: DefaultCacheMaxEntries,
		},
		Match: DefaultMatchSettings(),
		Ask: AskSettings{
			Cooldown: 8 * time.Second,
		},
	}
}

// DefaultMatchSettings returns the routing thresholds.
func DefaultMatchSettings() MatchSettings {
	return MatchSettings{
		StaticThreshold:     0.45,
		FuzzyThresholdCJK:   0.92,
		FuzzyThresholdOther: 0.85,
		LengthRatioMin:      0.8,
		LengthRatioMax:      1.25,
	}
}
