package driving

import "github.com/veldt-labs/wikiqa-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetScorerProvider configures the scorer provider.
	SetScorerProvider(provider domain.ScorerProvider, model, baseURL, apiKey string) error

	// SetLanguage updates the Wikipedia language code.
	SetLanguage(lang string) error

	// SetMaxLength updates the chunker sentence-budget unit.
	SetMaxLength(maxLength int) error

	// Validate checks if current settings are usable.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
