package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/veldt-labs/wikiqa-cli/internal/chunker"
	"github.com/veldt-labs/wikiqa-cli/internal/core/domain"
	"github.com/veldt-labs/wikiqa-cli/internal/core/ports/driven"
	"github.com/veldt-labs/wikiqa-cli/internal/core/ports/driving"
	"github.com/veldt-labs/wikiqa-cli/internal/logger"
)

// Ensure QAService implements the interface.
var _ driving.QAService = (*QAService)(nil)

// QAService answers questions about Wikipedia articles by scoring each
// chunk with the answer scorer and keeping the highest-confidence
// valid result.
type QAService struct {
	fetcher  driven.ArticleFetcher
	scorer   driven.AnswerScorer
	splitter *chunker.Chunker
}

// NewQAService creates a new QA service.
func NewQAService(fetcher driven.ArticleFetcher, scorer driven.AnswerScorer, splitter *chunker.Chunker) *QAService {
	if splitter == nil {
		splitter = chunker.New()
	}
	return &QAService{
		fetcher:  fetcher,
		scorer:   scorer,
		splitter: splitter,
	}
}

// Ask fetches the article and answers the question against it.
// A fetch failure short-circuits: nothing is chunked or scored.
func (s *QAService) Ask(ctx context.Context, title, question string) (domain.Answer, error) {
	if s.fetcher == nil {
		return domain.Answer{}, domain.ErrFetcherUnavailable
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Answer{}, fmt.Errorf("%w: empty title", domain.ErrInvalidInput)
	}

	article, err := s.fetcher.Fetch(ctx, title)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("fetch article %q: %w", title, err)
	}

	return s.AskArticle(ctx, article, question)
}

// AskArticle answers the question against an already-fetched article.
//
// Chunks are scored one at a time, strictly in document order. A
// scorer failure on one chunk is never fatal: the chunk is skipped and
// the scan continues. Confidence values outside [0,1] are discarded
// the same way. The best result is updated only on strict improvement,
// so ties keep the earliest chunk's answer.
func (s *QAService) AskArticle(ctx context.Context, article domain.Article, question string) (domain.Answer, error) {
	if s.scorer == nil {
		return domain.Answer{}, domain.ErrScorerUnavailable
	}

	question = strings.TrimSpace(question)
	if question == "" {
		return domain.Answer{}, fmt.Errorf("%w: empty question", domain.ErrInvalidInput)
	}

	logger.Section("Answer Search")
	logger.Debug("Article: %q (%d chars)", article.Title, len(article.Extract))
	logger.Debug("Question: %q", question)

	chunks := s.splitter.Split(article.Extract)
	logger.Debug("Chunks: %d (ceiling %d chars)", len(chunks), s.splitter.Ceiling())

	best := domain.Answer{
		Question:    question,
		Score:       0.0,
		ChunkIndex:  domain.NoAnswerChunk,
		TotalChunks: len(chunks),
	}

	for _, chunk := range chunks {
		result, err := s.scorer.Score(ctx, chunk.Content, question)
		if err != nil {
			logger.Warn("chunk %d/%d: scorer failed: %v", chunk.Position+1, len(chunks), err)
			continue
		}

		if !domain.ValidScore(result.Score) {
			logger.Warn("chunk %d/%d: %v: %g", chunk.Position+1, len(chunks), domain.ErrInvalidScore, result.Score)
			continue
		}

		logger.Debug("chunk %d/%d: %q (%.4f)", chunk.Position+1, len(chunks), result.Answer, result.Score)

		if result.Score > best.Score {
			best.Text = result.Answer
			best.Score = result.Score
			best.ChunkIndex = chunk.Position
			best.Start = result.Start
			best.End = result.End
		}
	}

	// Final invariant check. Per-chunk validation makes this
	// unreachable for well-behaved scorers; if it ever fires the
	// result is clamped rather than failing the whole question.
	if best.Score > 1.0 {
		logger.Error("aggregated confidence %g exceeds 1.0, clamping", best.Score)
		best.Score = 1.0
	}

	if best.Found() {
		logger.Info("best answer from chunk %d/%d (%.4f)", best.ChunkIndex+1, best.TotalChunks, best.Score)
	} else {
		logger.Info("no chunk produced a valid answer")
	}

	return best, nil
}
