package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheBackend_IsValid(t *testing.T) {
	tests := []struct {
		backend CacheBackend
		want    bool
	}{
		{CacheBackendSQLite, true},
		{CacheBackendFile, true},
		{CacheBackendMemory, true},
		{CacheBackend("redis"), false},
		{CacheBackend(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.backend.IsValid())
		})
	}
}

func TestCacheBackend_Description(t *testing.T) {
	for _, b := range AllCacheBackends() {
		assert.NotEqual(t, unknownDescription, b.Description())
	}
	assert.Equal(t, unknownDescription, CacheBackend("nope").Description())
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.False(t, s.Remote.IsConfigured())
	assert.Equal(t, CacheBackendSQLite, s.Cache.Backend)
	assert.Equal(t, 40, s.Cache.MaxEntries)
	assert.Equal(t, 8*time.Second, s.Ask.Cooldown)
	assert.InDelta(t, 0.45, s.Match.StaticThreshold, 1e-9)
	assert.InDelta(t, 0.92, s.Match.FuzzyThresholdCJK, 1e-9)
	assert.InDelta(t, 0.85, s.Match.FuzzyThresholdOther, 1e-9)
	assert.InDelta(t, 0.8, s.Match.LengthRatioMin, 1e-9)
	assert.InDelta(t, 1.25, s.Match.LengthRatioMax, 1e-9)
	assert.NoError(t, s.Match.Validate())
}

func TestRemoteSettings_IsConfigured(t *testing.T) {
	assert.False(t, RemoteSettings{}.IsConfigured())
	assert.True(t, RemoteSettings{URL: "https://example.com/hook"}.IsConfigured())
}

func TestMatchSettings_FuzzyThreshold(t *testing.T) {
	m := DefaultMatchSettings()

	assert.InDelta(t, 0.92, m.FuzzyThreshold(true), 1e-9)
	assert.InDelta(t, 0.85, m.FuzzyThreshold(false), 1e-9)
}

func TestMatchSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MatchSettings)
	}{
		{"static above one", func(m *MatchSettings) { m.StaticThreshold = 1.5 }},
		{"cjk negative", func(m *MatchSettings) { m.FuzzyThresholdCJK = -0.1 }},
		{"other above one", func(m *MatchSettings) { m.FuzzyThresholdOther = 2 }},
		{"zero ratio min", func(m *MatchSettings) { m.LengthRatioMin = 0 }},
		{"inverted window", func(m *MatchSettings) { m.LengthRatioMax = 0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DefaultMatchSettings()
			tt.mutate(&m)

			err := m.Validate()
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}
