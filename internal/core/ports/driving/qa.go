package driving

import (
	"context"

	"github.com/veldt-labs/wikiqa-cli/internal/core/domain"
)

// QAService answers free-text questions about Wikipedia articles.
type QAService interface {
	// Ask fetches the article, splits it into chunks and returns the
	// best-scoring answer across all chunks. A fetch failure aborts
	// before any chunking or scoring; per-chunk scorer failures are
	// recovered by skipping the chunk.
	Ask(ctx context.Context, title, question string) (domain.Answer, error)

	// AskArticle answers against an already-fetched article without
	// re-fetching it.
	AskArticle(ctx context.Context, article domain.Article, question string) (domain.Answer, error)
}
