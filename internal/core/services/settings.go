package services

import (
	"fmt"

	"github.com/veldt-labs/wikiqa-cli/internal/core/domain"
	"github.com/veldt-labs/wikiqa-cli/internal/core/ports/driven"
	"github.com/veldt-labs/wikiqa-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyWikiLanguage   = "wikipedia.language"
	keyScorerProvider = "scorer.provider"
	keyScorerModel    = "scorer.model"
	keyScorerBaseURL  = "scorer.base_url"
	keyScorerAPIKey   = "scorer.api_key"
	keyChunkerMaxLen  = "chunker.max_length"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Wikipedia: domain.WikipediaSettings{
			Language: s.getString(keyWikiLanguage, defaults.Wikipedia.Language),
		},
		Scorer: domain.ScorerSettings{
			Provider: s.getProvider(keyScorerProvider, defaults.Scorer.Provider),
			Model:    s.getString(keyScorerModel, defaults.Scorer.Model),
			BaseURL:  s.configStore.GetString(keyScorerBaseURL), // No default - empty means provider default
			APIKey:   s.configStore.GetString(keyScorerAPIKey),
		},
		Chunker: domain.ChunkerSettings{
			MaxLength: s.getInt(keyChunkerMaxLen, defaults.Chunker.MaxLength),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidInput)
	}

	pairs := map[string]any{
		keyWikiLanguage:   settings.Wikipedia.Language,
		keyScorerProvider: settings.Scorer.Provider.String(),
		keyScorerModel:    settings.Scorer.Model,
		keyScorerBaseURL:  settings.Scorer.BaseURL,
		keyScorerAPIKey:   settings.Scorer.APIKey,
		keyChunkerMaxLen:  settings.Chunker.MaxLength,
	}

	for key, value := range pairs {
		if err := s.configStore.Set(key, value); err != nil {
			return fmt.Errorf("save setting %s: %w", key, err)
		}
	}

	return nil
}

// SetScorerProvider configures the scorer provider.
func (s *SettingsService) SetScorerProvider(provider domain.ScorerProvider, model, baseURL, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedProvider, provider)
	}

	if model == "" {
		model = domain.DefaultScorerModels()[provider]
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Scorer = domain.ScorerSettings{
		Provider: provider,
		Model:    model,
		BaseURL:  baseURL,
		APIKey:   apiKey,
	}

	return s.Save(settings)
}

// SetLanguage updates the Wikipedia language code.
func (s *SettingsService) SetLanguage(lang string) error {
	if lang == "" {
		return fmt.Errorf("%w: empty language code", domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyWikiLanguage, lang)
}

// SetMaxLength updates the chunker sentence-budget unit.
func (s *SettingsService) SetMaxLength(maxLength int) error {
	if maxLength <= 0 {
		return fmt.Errorf("%w: max_length must be positive", domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyChunkerMaxLen, maxLength)
}

// Validate checks if current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if settings.Wikipedia.Language == "" {
		return fmt.Errorf("%w: wikipedia.language is empty", domain.ErrInvalidInput)
	}

	if !settings.Scorer.IsConfigured() {
		if settings.Scorer.Provider.RequiresAPIKey() && settings.Scorer.APIKey == "" {
			return fmt.Errorf("%w: %s requires an API key (run 'wikiqa settings set scorer.api_key <key>')",
				domain.ErrScorerUnavailable, settings.Scorer.Provider)
		}
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedProvider, settings.Scorer.Provider)
	}

	if settings.Chunker.MaxLength <= 0 {
		return fmt.Errorf("%w: chunker.max_length must be positive", domain.ErrInvalidInput)
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// getString reads a string key, falling back to a default when unset.
func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

// getInt reads an integer key, falling back to a default when unset.
func (s *SettingsService) getInt(key string, fallback int) int {
	if v := s.configStore.GetInt(key); v > 0 {
		return v
	}
	return fallback
}

// getProvider reads a provider key, falling back to a default when
// unset or unrecognised.
func (s *SettingsService) getProvider(key string, fallback domain.ScorerProvider) domain.ScorerProvider {
	v := domain.ScorerProvider(s.configStore.GetString(key))
	if v.IsValid() {
		return v
	}
	return fallback
}
