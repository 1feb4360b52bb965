// Package wikipedia provides an article fetcher backed by the
// MediaWiki action API.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/veldt-labs/wikiqa-cli/internal/core/domain"
	"github.com/veldt-labs/wikiqa-cli/internal/core/ports/driven"
)

// Ensure Fetcher implements the interface.
var _ driven.ArticleFetcher = (*Fetcher)(nil)

// Default configuration values.
const (
	// DefaultLanguage is the Wikipedia language code used when none
	// is configured.
	DefaultLanguage = "en"

	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the client to the Wikimedia API, as
	// their etiquette guidelines require.
	DefaultUserAgent = "wikiqa-cli/1.0 (https://github.com/veldt-labs/wikiqa-cli)"
)

// Rate limit defaults. Wikimedia asks unauthenticated clients to stay
// well below 200 req/s; one request per second is more than enough for
// an interactive CLI.
const (
	defaultRequestsPerSec = 1
	defaultBurst          = 2
)

// Config holds configuration for the Wikipedia fetcher.
type Config struct {
	// Language is the Wikipedia language code (default: en).
	Language string

	// BaseURL overrides the API endpoint. Normally derived from
	// Language; set explicitly in tests.
	BaseURL string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration

	// UserAgent is sent with every request (default: DefaultUserAgent).
	UserAgent string
}

// Fetcher retrieves plain-text article extracts from Wikipedia.
type Fetcher struct {
	client    *http.Client
	baseURL   string
	language  string
	userAgent string
	limiter   *rate.Limiter
}

// queryResponse is the subset of the action API response we consume
// (formatversion=2).
type queryResponse struct {
	Query struct {
		Pages []struct {
			PageID  int64  `json:"pageid"`
			Title   string `json:"title"`
			Missing bool   `json:"missing"`
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error,omitempty"`
}

// NewFetcher creates a new Wikipedia article fetcher.
func NewFetcher(cfg Config) *Fetcher {
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("https://%s.wikipedia.org/w/api.php", cfg.Language)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   cfg.BaseURL,
		language:  cfg.Language,
		userAgent: cfg.UserAgent,
		limiter:   rate.NewLimiter(defaultRequestsPerSec, defaultBurst),
	}
}

// Fetch retrieves the plain-text extract for a page title.
// Missing pages and empty extracts surface as domain.ErrArticleNotFound.
func (f *Fetcher) Fetch(ctx context.Context, title string) (domain.Article, error) {
	params := url.Values{
		"action":        {"query"},
		"format":        {"json"},
		"formatversion": {"2"},
		"prop":          {"extracts"},
		"explaintext":   {"1"},
		"redirects":     {"1"},
		"titles":        {title},
	}

	var resp queryResponse
	if err := f.get(ctx, params, &resp); err != nil {
		return domain.Article{}, err
	}

	if resp.Error != nil {
		return domain.Article{}, fmt.Errorf("wikipedia: API error %s: %s", resp.Error.Code, resp.Error.Info)
	}

	if len(resp.Query.Pages) == 0 {
		return domain.Article{}, fmt.Errorf("%w: %q", domain.ErrArticleNotFound, title)
	}

	page := resp.Query.Pages[0]
	if page.Missing || page.Extract == "" {
		return domain.Article{}, fmt.Errorf("%w: %q", domain.ErrArticleNotFound, title)
	}

	return domain.Article{
		Title:     page.Title,
		Language:  f.language,
		Extract:   page.Extract,
		PageID:    page.PageID,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// Language returns the Wikipedia language code this fetcher targets.
func (f *Fetcher) Language() string {
	return f.language
}

// Ping validates the endpoint is reachable via a siteinfo query,
// which is cheap and needs no page argument.
func (f *Fetcher) Ping(ctx context.Context) error {
	params := url.Values{
		"action": {"query"},
		"format": {"json"},
		"meta":   {"siteinfo"},
	}

	var resp queryResponse
	if err := f.get(ctx, params, &resp); err != nil {
		return fmt.Errorf("wikipedia: ping failed: %w", err)
	}
	return nil
}

// Close releases resources.
func (f *Fetcher) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}

// get performs a rate-limited GET against the action API and decodes
// the JSON response into out.
func (f *Fetcher) get(ctx context.Context, params url.Values, out any) error {
	if err := f.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wikipedia: API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
