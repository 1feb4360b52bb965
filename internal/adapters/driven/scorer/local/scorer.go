// Package local provides an answer scorer adapter for a self-hosted
// inference server speaking the HuggingFace question-answering
// pipeline JSON, such as a transformers pipeline behind a small HTTP
// wrapper.
package local

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/veldt-labs/wikiqa-cli/internal/core/ports/driven"
)

// Ensure Scorer implements the interface.
var _ driven.AnswerScorer = (*Scorer)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultModel   = "distilbert-base-cased-distilled-squad"
	DefaultTimeout = 120 * time.Second
)

// Config holds configuration for the local scorer.
type Config struct {
	// BaseURL is the server base URL (default: http://localhost:8000).
	BaseURL string

	// Model is the QA model name, used for the request payload and
	// diagnostics (default: distilbert-base-cased-distilled-squad).
	Model string

	// Timeout is the request timeout (default: 120s). Local CPU
	// inference can be slow on long chunks.
	Timeout time.Duration
}

// Scorer runs extractive question answering against a local server.
// No authentication is used.
type Scorer struct {
	client  *http.Client
	baseURL string
	model   string
}

// predictRequest is the request format for the /predict endpoint.
type predictRequest struct {
	Model  string   `json:"model,omitempty"`
	Inputs qaInputs `json:"inputs"`
}

// qaInputs holds the question/context pair.
type qaInputs struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// predictResponse is the question-answering pipeline response format.
type predictResponse struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Error  string  `json:"error,omitempty"`
}

// NewScorer creates a new local answer scorer.
func NewScorer(cfg Config) *Scorer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Scorer{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
	}
}

// Score extracts an answer span for the question from the passage.
func (s *Scorer) Score(ctx context.Context, passage, question string) (driven.ScoreResult, error) {
	reqBody := predictRequest{
		Model: s.model,
		Inputs: qaInputs{
			Question: question,
			Context:  passage,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return driven.ScoreResult{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/predict",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return driven.ScoreResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return driven.ScoreResult{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return driven.ScoreResult{}, fmt.Errorf("read response: %w", err)
	}

	var predResp predictResponse
	if err := json.Unmarshal(body, &predResp); err != nil {
		return driven.ScoreResult{}, fmt.Errorf("decode response: %w", err)
	}

	if predResp.Error != "" {
		return driven.ScoreResult{}, fmt.Errorf("local scorer error: %s", predResp.Error)
	}

	if resp.StatusCode != http.StatusOK {
		return driven.ScoreResult{}, fmt.Errorf("local scorer error (status %d): %s", resp.StatusCode, string(body))
	}

	return driven.ScoreResult{
		Answer: predResp.Answer,
		Score:  predResp.Score,
		Start:  predResp.Start,
		End:    predResp.End,
	}, nil
}

// ModelName returns the name of the QA model being used.
func (s *Scorer) ModelName() string {
	return s.model
}

// Ping validates the server is reachable via its health endpoint.
func (s *Scorer) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("local scorer: failed to create ping request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("local scorer: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("local scorer: server returned status %d", resp.StatusCode)
	}
	return nil
}

// Close releases resources.
func (s *Scorer) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
