package driven

import (
	"context"
	"time"

	"github.com/veldt-labs/wikiqa-cli/internal/core/domain"
)

// HistoryEntry is one recorded question/answer pair.
type HistoryEntry struct {
	// ID is the unique identifier for the entry.
	ID string

	// ArticleTitle is the resolved title the question was asked against.
	ArticleTitle string

	// Language is the Wikipedia language code.
	Language string

	// Answer is the aggregated result that was returned.
	Answer domain.Answer

	// AskedAt is when the question was answered.
	AskedAt time.Time
}

// HistoryStore persists answered questions as an audit log.
//
// The store is write-behind only: it is never consulted while
// answering. Every question re-fetches and re-chunks from scratch.
type HistoryStore interface {
	// Append records an answered question.
	Append(ctx context.Context, entry HistoryEntry) error

	// List returns the most recent entries, newest first.
	List(ctx context.Context, limit int) ([]HistoryEntry, error)

	// Close releases resources.
	Close() error
}
