// Package scorer provides factory functions for creating answer scorer
// adapters.
package scorer

import (
	"context"
	"fmt"
	"time"

	"github.com/veldt-labs/wikiqa-cli/internal/adapters/driven/scorer/huggingface"
	"github.com/veldt-labs/wikiqa-cli/internal/adapters/driven/scorer/local"
	"github.com/veldt-labs/wikiqa-cli/internal/core/domain"
	"github.com/veldt-labs/wikiqa-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// CreateAndValidate creates an answer scorer and validates connectivity.
// Returns the scorer if successful, or an error with guidance.
func CreateAndValidate(settings *domain.ScorerSettings) (driven.AnswerScorer, error) {
	svc, err := Create(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'wikiqa settings set' to fix",
			domain.ErrScorerUnavailable, err)
	}

	if svc == nil {
		return nil, nil
	}

	// Validate connectivity.
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'wikiqa settings set' to fix",
			domain.ErrScorerUnavailable, err)
	}

	return svc, nil
}

// ValidateConfig validates a scorer configuration by creating a scorer
// and pinging it. Intended for use when settings are changed.
func ValidateConfig(settings *domain.ScorerSettings) error {
	svc, err := Create(settings)
	if err != nil {
		return err
	}
	if svc == nil {
		return nil
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return svc.Ping(ctx)
}

// Create creates the appropriate answer scorer based on settings.
// Returns nil if the provider is not configured.
func Create(settings *domain.ScorerSettings) (driven.AnswerScorer, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	switch settings.Provider {
	case domain.ScorerProviderHuggingFace:
		return createHuggingFace(settings)

	case domain.ScorerProviderLocal:
		return createLocal(settings), nil

	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedProvider, settings.Provider)
	}
}

// createHuggingFace creates a HuggingFace Inference API scorer.
func createHuggingFace(settings *domain.ScorerSettings) (driven.AnswerScorer, error) {
	return huggingface.NewScorer(huggingface.Config{
		APIKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
	})
}

// createLocal creates a local inference server scorer.
func createLocal(settings *domain.ScorerSettings) driven.AnswerScorer {
	return local.NewScorer(local.Config{
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
	})
}
