package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswer_Found(t *testing.T) {
	t.Run("answer present", func(t *testing.T) {
		a := Answer{Text: "2017", Score: 0.9, ChunkIndex: 2, TotalChunks: 5}
		assert.True(t, a.Found())
	})

	t.Run("no answer", func(t *testing.T) {
		a := Answer{ChunkIndex: NoAnswerChunk}
		assert.False(t, a.Found())
	})
}

func TestValidScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  bool
	}{
		{"zero", 0.0, true},
		{"one", 1.0, true},
		{"mid", 0.5, true},
		{"negative", -0.01, false},
		{"above one", 1.01, false},
		{"far out", 42.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidScore(tt.score))
		})
	}
}

func TestArticle_IsEmpty(t *testing.T) {
	assert.True(t, Article{Title: "Void"}.IsEmpty())
	assert.False(t, Article{Title: "Go", Extract: "Go is a language."}.IsEmpty())
}
