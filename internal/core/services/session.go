package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/veldt-labs/wikiqa-cli/internal/core/domain"
	"github.com/veldt-labs/wikiqa-cli/internal/core/ports/driven"
	"github.com/veldt-labs/wikiqa-cli/internal/core/ports/driving"
	"github.com/veldt-labs/wikiqa-cli/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionService holds the current article for one interactive
// session. Each UI owns its own session; there is no process-wide
// current article.
type SessionService struct {
	fetcher driven.ArticleFetcher
	qa      driving.QAService
	history driven.HistoryStore

	mu      sync.RWMutex
	article *domain.Article
}

// NewSessionService creates a new session service.
// The history store is optional; when nil, answers are not recorded.
func NewSessionService(fetcher driven.ArticleFetcher, qa driving.QAService, history driven.HistoryStore) *SessionService {
	return &SessionService{
		fetcher: fetcher,
		qa:      qa,
		history: history,
	}
}

// SetArticle fetches the titled article and makes it current.
func (s *SessionService) SetArticle(ctx context.Context, title string) (domain.Article, error) {
	if s.fetcher == nil {
		return domain.Article{}, domain.ErrFetcherUnavailable
	}

	article, err := s.fetcher.Fetch(ctx, title)
	if err != nil {
		return domain.Article{}, fmt.Errorf("fetch article %q: %w", title, err)
	}

	s.mu.Lock()
	s.article = &article
	s.mu.Unlock()

	logger.Info("session article set: %q (%d chars)", article.Title, len(article.Extract))
	return article, nil
}

// Article returns the current article, if one is loaded.
func (s *SessionService) Article() (domain.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.article == nil {
		return domain.Article{}, false
	}
	return *s.article, true
}

// ClearArticle drops the current article.
func (s *SessionService) ClearArticle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.article = nil
}

// Ask answers a question against the current article and records the
// result in history. History failures are logged, never fatal.
func (s *SessionService) Ask(ctx context.Context, question string) (domain.Answer, error) {
	article, ok := s.Article()
	if !ok {
		return domain.Answer{}, domain.ErrNoArticle
	}

	answer, err := s.qa.AskArticle(ctx, article, question)
	if err != nil {
		return domain.Answer{}, err
	}

	if s.history != nil {
		entry := driven.HistoryEntry{
			ID:           uuid.New().String(),
			ArticleTitle: article.Title,
			Language:     article.Language,
			Answer:       answer,
			AskedAt:      time.Now().UTC(),
		}
		if err := s.history.Append(ctx, entry); err != nil {
			logger.Warn("record history: %v", err)
		}
	}

	return answer, nil
}
