package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/faqdesk/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/faqdesk/internal/core/domain"
)

func newSettingsService(store *memory.ConfigStore, env map[string]string) *SettingsService {
	s := NewSettingsService(store)
	s.lookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	return s
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := newSettingsService(memory.NewConfigStore(), nil)

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults, *settings)
	assert.False(t, settings.Remote.IsConfigured())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"remote.url":                "https://hooks.example.test/faq",
		"remote.token":              "secret",
		"remote.timeout_seconds":    int64(30),
		"cache.backend":             "file",
		"cache.max_entries":         int64(10),
		"match.static_threshold":    0.5,
		"match.fuzzy_threshold_cjk": 0.9,
		"ask.cooldown_seconds":      int64(3),
	})
	service := newSettingsService(store, nil)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "https://hooks.example.test/faq", settings.Remote.URL)
	assert.Equal(t, "secret", settings.Remote.Token)
	assert.Equal(t, 30*time.Second, settings.Remote.Timeout)
	assert.Equal(t, domain.CacheBackendFile, settings.Cache.Backend)
	assert.Equal(t, 10, settings.Cache.MaxEntries)
	assert.InDelta(t, 0.5, settings.Match.StaticThreshold, 1e-9)
	assert.InDelta(t, 0.9, settings.Match.FuzzyThresholdCJK, 1e-9)
	assert.InDelta(t, 0.85, settings.Match.FuzzyThresholdOther, 1e-9)
	assert.Equal(t, 3*time.Second, settings.Ask.Cooldown)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"cache.backend":     "redis",
		"cache.max_entries": -4,
	})
	service := newSettingsService(store, nil)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.CacheBackendSQLite, settings.Cache.Backend)
	assert.Equal(t, domain.DefaultCacheMaxEntries, settings.Cache.MaxEntries)
}

func TestSettingsService_Get_EnvironmentOverridesRemote(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"remote.url":   "https://stored.example.test",
		"remote.token": "stored",
	})
	service := newSettingsService(store, map[string]string{
		EnvRemoteURL:   "https://env.example.test",
		EnvRemoteToken: "",
	})

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "https://env.example.test", settings.Remote.URL)
	assert.Equal(t, "stored", settings.Remote.Token, "empty env values do not override")
}

func TestSettingsService_Save_RoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	service := newSettingsService(store, nil)

	settings := domain.DefaultAppSettings()
	settings.Remote.URL = "https://hooks.example.test"
	settings.Remote.Token = "tok"
	settings.Cache.Backend = domain.CacheBackendMemory
	settings.Match.StaticThreshold = 0.6
	settings.Ask.Cooldown = 5 * time.Second

	require.NoError(t, service.Save(&settings))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *got)
	assert.Equal(t, 5, store.GetInt("ask.cooldown_seconds"))
}

func TestSettingsService_Save_EmptyTokenKeepsStored(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{"remote.token": "keep"})
	service := newSettingsService(store, nil)

	settings := domain.DefaultAppSettings()
	require.NoError(t, service.Save(&settings))

	assert.Equal(t, "keep", store.GetString("remote.token"))
}

func TestSettingsService_Save_RejectsInvalidMatch(t *testing.T) {
	service := newSettingsService(memory.NewConfigStore(), nil)

	settings := domain.DefaultAppSettings()
	settings.Match.StaticThreshold = 1.5

	assert.ErrorIs(t, service.Save(&settings), domain.ErrInvalidInput)
}

func TestSettingsService_SetRemote(t *testing.T) {
	store := memory.NewConfigStore()
	service := newSettingsService(store, nil)

	require.NoError(t, service.SetRemote("https://hooks.example.test", "tok"))
	assert.Equal(t, "https://hooks.example.test", store.GetString("remote.url"))
	assert.Equal(t, "tok", store.GetString("remote.token"))

	assert.ErrorIs(t, service.SetRemote("", "tok"), domain.ErrInvalidInput)
}

func TestSettingsService_SetCacheBackend(t *testing.T) {
	store := memory.NewConfigStore()
	service := newSettingsService(store, nil)

	require.NoError(t, service.SetCacheBackend(domain.CacheBackendFile))
	assert.Equal(t, "file", store.GetString("cache.backend"))

	assert.ErrorIs(t, service.SetCacheBackend("redis"), domain.ErrInvalidInput)
}

func TestSettingsService_SetValue(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
		check   func(t *testing.T, s *domain.AppSettings)
	}{
		{"url", "remote.url", "https://x.test", false, func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "https://x.test", s.Remote.URL)
		}},
		{"timeout", "remote.timeout_seconds", "15", false, func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 15*time.Second, s.Remote.Timeout)
		}},
		{"cooldown", "ask.cooldown_seconds", "2", false, func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 2*time.Second, s.Ask.Cooldown)
		}},
		{"threshold", "match.static_threshold", "0.5", false, func(t *testing.T, s *domain.AppSettings) {
			assert.InDelta(t, 0.5, s.Match.StaticThreshold, 1e-9)
		}},
		{"backend", "cache.backend", "memory", false, func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, domain.CacheBackendMemory, s.Cache.Backend)
		}},
		{"unknown key", "search.mode", "hybrid", true, nil},
		{"non numeric int", "cache.max_entries", "many", true, nil},
		{"zero int", "cache.max_entries", "0", true, nil},
		{"non numeric float", "match.static_threshold", "high", true, nil},
		{"threshold out of range", "match.fuzzy_threshold_cjk", "1.2", true, nil},
		{"inverted ratio window", "match.length_ratio_min", "2", true, nil},
		{"bad backend", "cache.backend", "redis", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newSettingsService(memory.NewConfigStore(), nil)

			err := service.SetValue(tt.key, tt.value)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			settings, err := service.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_Validate(t *testing.T) {
	service := newSettingsService(memory.NewConfigStore(), nil)
	assert.NoError(t, service.Validate())

	bad := newSettingsService(memory.NewConfigStore(map[string]any{
		"match.length_ratio_min": 1.5,
		"match.length_ratio_max": 1.0,
	}), nil)
	assert.ErrorIs(t, bad.Validate(), domain.ErrInvalidInput)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := newSettingsService(memory.NewConfigStore(), nil)

	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}

func TestSettableKeys_Sorted(t *testing.T) {
	keys := SettableKeys()

	assert.Len(t, keys, 11)
	assert.IsIncreasing(t, keys)
	assert.Contains(t, keys, "remote.url")
}
