package services

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/custodia-labs/faqdesk/internal/core/domain"
	"github.com/custodia-labs/faqdesk/internal/core/ports/driven"
	"github.com/custodia-labs/faqdesk/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyRemoteURL       = "remote.url"
	keyRemoteToken     = "remote.token"
	keyRemoteTimeout   = "remote.timeout_seconds"
	keyCacheBackend    = "cache.backend"
	keyCacheMaxEntries = "cache.max_entries"
	keyStaticThreshold = "match.static_threshold"
	keyFuzzyCJK        = "match.fuzzy_threshold_cjk"
	keyFuzzyOther      = "match.fuzzy_threshold_other"
	keyRatioMin        = "match.length_ratio_min"
	keyRatioMax        = "match.length_ratio_max"
	keyCooldown        = "ask.cooldown_seconds"
)

// Environment variables that override the stored remote settings.
//
//nolint:gosec // G101: These are variable names, not actual credentials.
const (
	EnvRemoteURL   = "FAQDESK_REMOTE_URL"
	EnvRemoteToken = "FAQDESK_REMOTE_TOKEN"
)

type valueKind int

const (
	kindString valueKind = iota
	kindPositiveInt
	kindFloat
	kindBackend
)

// settableKeys lists every key accepted by SetValue and how its value is parsed.
var settableKeys = map[string]valueKind{
	keyRemoteURL:       kindString,
	keyRemoteToken:     kindString,
	keyRemoteTimeout:   kindPositiveInt,
	keyCacheBackend:    kindBackend,
	keyCacheMaxEntries: kindPositiveInt,
	keyStaticThreshold: kindFloat,
	keyFuzzyCJK:        kindFloat,
	keyFuzzyOther:      kindFloat,
	keyRatioMin:        kindFloat,
	keyRatioMax:        kindFloat,
	keyCooldown:        kindPositiveInt,
}

// SettableKeys returns the configuration keys accepted by SetValue, sorted.
func SettableKeys() []string {
	keys := make([]string, 0, len(settableKeys))
	for k := range settableKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service.
// Remote settings from the environment take precedence over the config store.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   os.LookupEnv,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Remote: domain.RemoteSettings{
			URL:     s.getEnvOrString(EnvRemoteURL, keyRemoteURL),
			Token:   s.getEnvOrString(EnvRemoteToken, keyRemoteToken),
			Timeout: s.getSeconds(keyRemoteTimeout, defaults.Remote.Timeout),
		},
		Cache: domain.CacheSettings{
			Backend:    s.getBackend(defaults.Cache.Backend),
			MaxEntries: s.getInt(keyCacheMaxEntries, defaults.Cache.MaxEntries),
		},
		Match: domain.MatchSettings{
			StaticThreshold:     s.getFloat(keyStaticThreshold, defaults.Match.StaticThreshold),
			FuzzyThresholdCJK:   s.getFloat(keyFuzzyCJK, defaults.Match.FuzzyThresholdCJK),
			FuzzyThresholdOther: s.getFloat(keyFuzzyOther, defaults.Match.FuzzyThresholdOther),
			LengthRatioMin:      s.getFloat(keyRatioMin, defaults.Match.LengthRatioMin),
			LengthRatioMax:      s.getFloat(keyRatioMax, defaults.Match.LengthRatioMax),
		},
		Ask: domain.AskSettings{
			Cooldown: s.getSeconds(keyCooldown, defaults.Ask.Cooldown),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Match.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyRemoteURL, settings.Remote.URL},
		{keyRemoteTimeout, int(settings.Remote.Timeout / time.Second)},
		{keyCacheBackend, settings.Cache.Backend.String()},
		{keyCacheMaxEntries, settings.Cache.MaxEntries},
		{keyStaticThreshold, settings.Match.StaticThreshold},
		{keyFuzzyCJK, settings.Match.FuzzyThresholdCJK},
		{keyFuzzyOther, settings.Match.FuzzyThresholdOther},
		{keyRatioMin, settings.Match.LengthRatioMin},
		{keyRatioMax, settings.Match.LengthRatioMax},
		{keyCooldown, int(settings.Ask.Cooldown / time.Second)},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	if settings.Remote.Token != "" {
		if err := s.configStore.Set(keyRemoteToken, settings.Remote.Token); err != nil {
			return fmt.Errorf("save %s: %w", keyRemoteToken, err)
		}
	}

	return nil
}

// SetRemote configures the remote answer service endpoint and token.
// An empty token leaves any stored token in place.
func (s *SettingsService) SetRemote(url, token string) error {
	if url == "" {
		return fmt.Errorf("%w: remote URL is required", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Remote.URL = url
	settings.Remote.Token = token

	return s.Save(settings)
}

// SetCacheBackend selects where the answer cache is persisted.
func (s *SettingsService) SetCacheBackend(backend domain.CacheBackend) error {
	if !backend.IsValid() {
		return fmt.Errorf("%w: invalid cache backend: %s", domain.ErrInvalidInput, backend)
	}
	return s.configStore.Set(keyCacheBackend, backend.String())
}

// SetValue stores a single configuration key after validating it.
func (s *SettingsService) SetValue(key, value string) error {
	kind, ok := settableKeys[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	switch kind {
	case kindPositiveInt:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, n)
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, key)
		}
		// Validate the whole window with the new value in place.
		settings, err := s.Get()
		if err != nil {
			return err
		}
		applyMatchValue(&settings.Match, key, f)
		if err := settings.Match.Validate(); err != nil {
			return err
		}
		return s.configStore.Set(key, f)
	case kindBackend:
		return s.SetCacheBackend(domain.CacheBackend(value))
	default:
		return s.configStore.Set(key, value)
	}
}

func applyMatchValue(m *domain.MatchSettings, key string, v float64) {
	switch key {
	case keyStaticThreshold:
		m.StaticThreshold = v
	case keyFuzzyCJK:
		m.FuzzyThresholdCJK = v
	case keyFuzzyOther:
		m.FuzzyThresholdOther = v
	case keyRatioMin:
		m.LengthRatioMin = v
	case keyRatioMax:
		m.LengthRatioMax = v
	}
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.Cache.Backend.IsValid() {
		return fmt.Errorf("invalid cache backend: %s", settings.Cache.Backend)
	}
	if settings.Cache.MaxEntries <= 0 {
		return fmt.Errorf("%w: cache size must be positive", domain.ErrInvalidInput)
	}

	return settings.Match.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getEnvOrString(env, key string) string {
	if val, ok := s.lookupEnv(env); ok && val != "" {
		return val
	}
	return s.configStore.GetString(key)
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return time.Duration(val) * time.Second
}

func (s *SettingsService) getBackend(defaultVal domain.CacheBackend) domain.CacheBackend {
	val := s.configStore.GetString(keyCacheBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.CacheBackend(val)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}
