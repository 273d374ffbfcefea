package driving

import "github.com/custodia-labs/faqdesk/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetRemote configures the remote answer service endpoint and token.
	SetRemote(url, token string) error

	// SetCacheBackend selects where the answer cache is persisted.
	SetCacheBackend(backend domain.CacheBackend) error

	// SetValue stores a single configuration key after validating it.
	SetValue(key, value string) error

	// Validate checks the current settings.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
