package domain

const unknownDescription = "Unknown"

// ScorerProvider identifies a question-answering inference provider.
type ScorerProvider string

// Available scorer providers.
const (
	// ScorerProviderHuggingFace is the hosted HuggingFace Inference API.
	ScorerProviderHuggingFace ScorerProvider = "huggingface"

	// ScorerProviderLocal is a self-hosted inference server speaking
	// the same question-answering pipeline JSON.
	ScorerProviderLocal ScorerProvider = "local"
)

// IsValid returns true if the scorer provider is recognised.
func (p ScorerProvider) IsValid() bool {
	switch p {
	case ScorerProviderHuggingFace, ScorerProviderLocal:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p ScorerProvider) RequiresAPIKey() bool {
	return p == ScorerProviderHuggingFace
}

// IsLocal returns true if this provider runs locally.
func (p ScorerProvider) IsLocal() bool {
	return p == ScorerProviderLocal
}

// String returns the string representation.
func (p ScorerProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p ScorerProvider) Description() string {
	switch p {
	case ScorerProviderHuggingFace:
		return "HuggingFace Inference API (cloud)"
	case ScorerProviderLocal:
		return "Local inference server"
	default:
		return unknownDescription
	}
}

// WikipediaSettings holds article fetcher configuration.
type WikipediaSettings struct {
	// Language is the Wikipedia language code, e.g. "en".
	Language string
}

// ScorerSettings holds scorer provider configuration.
type ScorerSettings struct {
	// Provider is the inference provider.
	Provider ScorerProvider

	// Model is the extractive QA model name.
	Model string

	// BaseURL is the API endpoint (for local servers).
	BaseURL string

	// APIKey is the API key (for HuggingFace).
	APIKey string
}

// IsConfigured returns true if the scorer provider is set up.
func (s ScorerSettings) IsConfigured() bool {
	if !s.Provider.IsValid() {
		return false
	}
	if s.Provider.RequiresAPIKey() && s.APIKey == "" {
		return false
	}
	return true
}

// ChunkerSettings holds chunking configuration.
type ChunkerSettings struct {
	// MaxLength is the sentence-budget unit. The effective character
	// ceiling per chunk is MaxLength multiplied by the sentence-budget
	// multiplier (4).
	MaxLength int
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Wikipedia holds article fetcher settings.
	Wikipedia WikipediaSettings

	// Scorer holds scorer provider settings.
	Scorer ScorerSettings

	// Chunker holds chunking settings.
	Chunker ChunkerSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The scorer API key is left unconfigured; users must set it via
// 'wikiqa settings set scorer.api_key <key>' or switch to the local
// provider.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Wikipedia: WikipediaSettings{
			Language: "en",
		},
		Scorer: ScorerSettings{
			Provider: ScorerProviderHuggingFace,
			Model:    "deepset/roberta-base-squad2",
		},
		Chunker: ChunkerSettings{
			MaxLength: 400,
		},
	}
}

// AllScorerProviders returns all available scorer providers.
func AllScorerProviders() []ScorerProvider {
	return []ScorerProvider{
		ScorerProviderHuggingFace,
		ScorerProviderLocal,
	}
}

// DefaultScorerModels returns default models for each provider.
func DefaultScorerModels() map[ScorerProvider]string {
	return map[ScorerProvider]string{
		ScorerProviderHuggingFace: "deepset/roberta-base-squad2",
		ScorerProviderLocal:       "distilbert-base-cased-distilled-squad",
	}
}
