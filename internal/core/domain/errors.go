package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrArticleNotFound indicates the requested page does not exist,
	// is ambiguous, or returned an empty extract. A fetch failure
	// aborts the whole question; nothing is chunked or scored.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidScore indicates the scorer returned a confidence
	// outside [0,1]. Recovered per chunk, never fatal.
	ErrInvalidScore = errors.New("confidence out of range")

	// ErrScorerUnavailable indicates no answer scorer is configured.
	ErrScorerUnavailable = errors.New("answer scorer unavailable")

	// ErrFetcherUnavailable indicates no article fetcher is configured.
	ErrFetcherUnavailable = errors.New("article fetcher unavailable")

	// ErrNoArticle indicates a session operation that needs a current
	// article was called before one was set.
	ErrNoArticle = errors.New("no article loaded")

	// ErrUnsupportedProvider indicates an unknown scorer provider name.
	ErrUnsupportedProvider = errors.New("unsupported scorer provider")
)
