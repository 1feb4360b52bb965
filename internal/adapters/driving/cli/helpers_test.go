package cli

import (
	"context"
	"errors"
	"time"

	"github.com/veldt-labs/wikiqa-cli/internal/core/domain"
	"github.com/veldt-labs/wikiqa-cli/internal/core/ports/driven"
)

// setupTestServices injects mock implementations behind every service
// seam and returns a cleanup function restoring the previous wiring.
func setupTestServices() func() {
	oldSettings := settingsService
	oldQA := qaService
	oldSession := sessionService
	oldFetcher := articleFetcher
	oldHistory := historyStore

	settingsService = newMockSettingsService()
	qaService = &mockQAService{
		answer: domain.Answer{
			Text:        "Maida Vale, London",
			Score:       0.87,
			ChunkIndex:  2,
			TotalChunks: 5,
			Start:       112,
			End:         130,
		},
	}
	articleFetcher = &mockFetcher{
		article: domain.Article{
			Title:     "Alan Turing",
			Language:  "en",
			PageID:    1208,
			Extract:   "Alan Turing was an English mathematician. He was highly influential.",
			FetchedAt: time.Now().UTC(),
		},
	}
	historyStore = &mockHistoryStore{}
	sessionService = nil

	return func() {
		settingsService = oldSettings
		qaService = oldQA
		sessionService = oldSession
		articleFetcher = oldFetcher
		historyStore = oldHistory
	}
}

type mockQAService struct {
	answer domain.Answer
	err    error
	asked  []string
}

func (m *mockQAService) Ask(_ context.Context, title, question string) (domain.Answer, error) {
	m.asked = append(m.asked, title+"|"+question)
	if m.err != nil {
		return domain.Answer{}, m.err
	}
	answer := m.answer
	answer.Question = question
	return answer, nil
}

func (m *mockQAService) AskArticle(_ context.Context, _ domain.Article, question string) (domain.Answer, error) {
	if m.err != nil {
		return domain.Answer{}, m.err
	}
	answer := m.answer
	answer.Question = question
	return answer, nil
}

type mockFetcher struct {
	article  domain.Article
	fetchErr error
}

func (m *mockFetcher) Fetch(_ context.Context, _ string) (domain.Article, error) {
	if m.fetchErr != nil {
		return domain.Article{}, m.fetchErr
	}
	return m.article, nil
}

func (m *mockFetcher) Language() string { return m.article.Language }

func (m *mockFetcher) Ping(_ context.Context) error { return nil }

func (m *mockFetcher) Close() error { return nil }

type mockHistoryStore struct {
	entries   []driven.HistoryEntry
	appendErr error
	listErr   error
}

func (m *mockHistoryStore) Append(_ context.Context, entry driven.HistoryEntry) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockHistoryStore) List(_ context.Context, limit int) ([]driven.HistoryEntry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if limit > 0 && limit < len(m.entries) {
		return m.entries[:limit], nil
	}
	return m.entries, nil
}

func (m *mockHistoryStore) Close() error { return nil }

type mockSettingsService struct {
	settings   domain.AppSettings
	saveErr    error
	validated  bool
	lastSetKey string
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{
		settings: domain.DefaultAppSettings(),
	}
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	settings := m.settings
	return &settings, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.settings = *settings
	return nil
}

func (m *mockSettingsService) SetScorerProvider(provider domain.ScorerProvider, model, baseURL, apiKey string) error {
	if !provider.IsValid() {
		return domain.ErrUnsupportedProvider
	}
	if model == "" {
		model = domain.DefaultScorerModels()[provider]
	}
	m.settings.Scorer = domain.ScorerSettings{
		Provider: provider,
		Model:    model,
		BaseURL:  baseURL,
		APIKey:   apiKey,
	}
	m.lastSetKey = "scorer.provider"
	return nil
}

func (m *mockSettingsService) SetLanguage(lang string) error {
	if lang == "" {
		return domain.ErrInvalidInput
	}
	m.settings.Wikipedia.Language = lang
	m.lastSetKey = "wikipedia.language"
	return nil
}

func (m *mockSettingsService) SetMaxLength(maxLength int) error {
	if maxLength <= 0 {
		return domain.ErrInvalidInput
	}
	m.settings.Chunker.MaxLength = maxLength
	m.lastSetKey = "chunker.max_length"
	return nil
}

func (m *mockSettingsService) Validate() error {
	m.validated = true
	if m.settings.Scorer.IsConfigured() {
		return nil
	}
	return errors.New("scorer requires an API key")
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}
