package driving

import (
	"context"

	"github.com/veldt-labs/wikiqa-cli/internal/core/domain"
)

// SessionService holds the current article for an interactive session.
// It replaces process-wide mutable state with a caller-owned object:
// each UI owns exactly one session.
type SessionService interface {
	// SetArticle fetches the titled article and makes it current.
	SetArticle(ctx context.Context, title string) (domain.Article, error)

	// Article returns the current article, if one is loaded.
	Article() (domain.Article, bool)

	// ClearArticle drops the current article.
	ClearArticle()

	// Ask answers a question against the current article and records
	// it in history. Returns domain.ErrNoArticle when none is loaded.
	Ask(ctx context.Context, question string) (domain.Answer, error)
}
