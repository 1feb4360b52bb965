// Package huggingface provides an answer scorer adapter using the
// HuggingFace Inference API.
package huggingface

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
	DefaultBaseURL = "https://api-inference.huggingface.co"
	DefaultModel   = "deepset/roberta-base-squad2"
	DefaultTimeout = 60 * time.Second
)

// Config holds configuration for the HuggingFace scorer.
type Config struct {
	// APIKey is the HuggingFace API token (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api-inference.huggingface.co).
	BaseURL string

	// Model is the extractive QA model to use (default: deepset/roberta-base-squad2).
	Model string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration
}

// Scorer runs extractive question answering via the HuggingFace
// Inference API.
type Scorer struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

// qaRequest is the question-answering pipeline request format.
type qaRequest struct {
	Inputs  qaInputs  `json:"inputs"`
	Options qaOptions `json:"options"`
}

// qaInputs holds the question/context pair.
type qaInputs struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// qaOptions configures inference behaviour.
type qaOptions struct {
	// WaitForModel blocks until a cold model is loaded instead of
	// returning a 503.
	WaitForModel bool `json:"wait_for_model"`
}

// qaResponse is the question-answering pipeline response format.
type qaResponse struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Error  string  `json:"error,omitempty"`
}

// NewScorer creates a new HuggingFace answer scorer.
func NewScorer(cfg Config) (*Scorer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("huggingface: API key is required")
	}
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
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}, nil
}

// Score extracts an answer span for the question from the passage.
// The returned confidence is passed through unmodified; range
// validation is the caller's responsibility.
func (s *Scorer) Score(ctx context.Context, passage, question string) (driven.ScoreResult, error) {
	reqBody := qaRequest{
		Inputs: qaInputs{
			Question: question,
			Context:  passage,
		},
		Options: qaOptions{
			WaitForModel: true,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return driven.ScoreResult{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/models/"+s.model,
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return driven.ScoreResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return driven.ScoreResult{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return driven.ScoreResult{}, fmt.Errorf("read response: %w", err)
	}

	var qaResp qaResponse
	if err := json.Unmarshal(body, &qaResp); err != nil {
		return driven.ScoreResult{}, fmt.Errorf("decode response: %w", err)
	}

	if qaResp.Error != "" {
		return driven.ScoreResult{}, fmt.Errorf("huggingface error: %s", qaResp.Error)
	}

	if resp.StatusCode != http.StatusOK {
		return driven.ScoreResult{}, fmt.Errorf("huggingface error (status %d): %s", resp.StatusCode, string(body))
	}

	return driven.ScoreResult{
		Answer: qaResp.Answer,
		Score:  qaResp.Score,
		Start:  qaResp.Start,
		End:    qaResp.End,
	}, nil
}

// ModelName returns the name of the QA model being used.
func (s *Scorer) ModelName() string {
	return s.model
}

// Ping validates the service is reachable by checking the model status
// endpoint. This is a lightweight check that validates the API key
// without running inference.
func (s *Scorer) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/status/"+s.model, http.NoBody)
	if err != nil {
		return fmt.Errorf("huggingface: failed to create ping request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("huggingface: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("huggingface: API returned status %d (failed to read body: %w)", resp.StatusCode, err)
		}
		return fmt.Errorf("huggingface: API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// Close releases resources.
func (s *Scorer) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
