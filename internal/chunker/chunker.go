// Package chunker provides sentence-aligned text chunking.
//
// Articles are split into bounded-size segments so each segment fits
// within the answer scorer's input-size limits. Splitting is a naive
// ". " heuristic: it does not handle abbreviations, decimal numbers,
// or sentence-ending punctuation other than a period followed by a
// space.
package chunker

import (
	"strings"

	"github.com/google/uuid"

	"github.com/veldt-labs/wikiqa-cli/internal/core/domain"
)

// DefaultMaxLength is the default sentence-budget unit.
const DefaultMaxLength = 400

// LengthMultiplier converts the sentence-budget unit into an effective
// character ceiling per chunk.
const LengthMultiplier = 4

// sentenceSeparator is the exact two-character boundary marker.
const sentenceSeparator = ". "

// Chunker splits article text into sentence-aligned chunks.
type Chunker struct {
	maxLength int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithMaxLength sets the sentence-budget unit. The effective character
// ceiling per chunk is maxLength * LengthMultiplier.
func WithMaxLength(maxLength int) Option {
	return func(c *Chunker) {
		if maxLength > 0 {
			c.maxLength = maxLength
		}
	}
}

// New creates a new chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		maxLength: DefaultMaxLength,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// MaxLength returns the configured sentence-budget unit.
func (c *Chunker) MaxLength() int {
	return c.maxLength
}

// Ceiling returns the effective character ceiling per chunk.
func (c *Chunker) Ceiling() int {
	return c.maxLength * LengthMultiplier
}

// Split divides text into sentence-aligned chunks in document order.
//
// Sentences are accumulated greedily with the ". " separator restored
// as suffix; when appending a sentence would reach the ceiling, the
// current chunk is finalized (whitespace-trimmed) and a new one starts
// with that sentence. A single sentence longer than the ceiling is
// never split further; it becomes an oversized chunk on its own.
// Empty input yields no chunks, and no produced chunk is ever empty.
func (c *Chunker) Split(text string) []domain.Chunk {
	if text == "" {
		return nil
	}

	ceiling := c.Ceiling()
	sentences := strings.Split(text, sentenceSeparator)

	var chunks []domain.Chunk
	var current strings.Builder

	flush := func() {
		content := strings.TrimSpace(current.String())
		current.Reset()
		if content == "" {
			return
		}
		chunks = append(chunks, domain.Chunk{
			ID:       uuid.New().String(),
			Position: len(chunks),
			Content:  content,
		})
	}

	for _, sentence := range sentences {
		if sentence == "" {
			continue
		}
		if current.Len()+len(sentence) >= ceiling {
			flush()
		}
		current.WriteString(sentence)
		current.WriteString(sentenceSeparator)
	}
	flush()

	return chunks
}
