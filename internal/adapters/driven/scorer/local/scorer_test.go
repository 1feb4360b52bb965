package local

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScorer(t *testing.T, handler http.HandlerFunc) *Scorer {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewScorer(Config{BaseURL: srv.URL})
}

func TestNewScorer_Defaults(t *testing.T) {
	s := NewScorer(Config{})

	assert.Equal(t, DefaultBaseURL, s.baseURL)
	assert.Equal(t, DefaultModel, s.ModelName())
}

func TestScorer_Score(t *testing.T) {
	var gotReq predictRequest

	s := newTestScorer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"answer": "at Google", "score": 0.71, "start": 30, "end": 39}`))
	})

	result, err := s.Score(context.Background(),
		"The language was designed at Google.",
		"Where was it designed?")

	require.NoError(t, err)
	assert.Equal(t, "at Google", result.Answer)
	assert.InDelta(t, 0.71, result.Score, 1e-9)
	assert.Equal(t, 30, result.Start)
	assert.Equal(t, 39, result.End)

	assert.Equal(t, DefaultModel, gotReq.Model)
	assert.Equal(t, "Where was it designed?", gotReq.Inputs.Question)
}

func TestScorer_Score_ServerError(t *testing.T) {
	s := newTestScorer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "model not loaded"}`))
	})

	_, err := s.Score(context.Background(), "ctx", "q?")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestScorer_Ping(t *testing.T) {
	s := newTestScorer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, s.Ping(context.Background()))
}

func TestScorer_Ping_Unhealthy(t *testing.T) {
	s := newTestScorer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := s.Ping(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
