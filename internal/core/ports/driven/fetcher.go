package driven

import (
	"context"

	"github.com/veldt-labs/wikiqa-cli/internal/core/domain"
)

// ArticleFetcher retrieves article text for a page title.
//
// Implementations own transport, retries and politeness (rate limits);
// the core only sees an article or an error. A missing, ambiguous or
// empty page must surface as domain.ErrArticleNotFound, never a panic.
type ArticleFetcher interface {
	// Fetch retrieves the plain-text extract for a page title.
	Fetch(ctx context.Context, title string) (domain.Article, error)

	// Language returns the Wikipedia language code this fetcher targets.
	Language() string

	// Ping validates the endpoint is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
