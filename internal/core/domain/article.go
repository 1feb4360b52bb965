package domain

import "time"

// Article represents a fetched Wikipedia article.
// It is immutable once fetched; answering a new question against the
// same title re-fetches from scratch.
type Article struct {
	// Title is the resolved page title (after redirects).
	Title string

	// Language is the Wikipedia language code, e.g. "en".
	Language string

	// Extract is the plain-text article body.
	Extract string

	// PageID is the numeric MediaWiki page ID, when known.
	PageID int64

	// FetchedAt is when the article was retrieved.
	FetchedAt time.Time
}

// IsEmpty returns true if the article carries no body text.
func (a Article) IsEmpty() bool {
	return a.Extract == ""
}

// Chunk represents a bounded, sentence-aligned segment of an article.
// Chunks are produced in document order and never overlap in content.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// Position is the zero-indexed ordinal within the article.
	Position int

	// Content is the text content of this chunk.
	Content string
}
