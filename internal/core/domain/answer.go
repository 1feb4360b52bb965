package domain

// NoAnswerChunk is the chunk index sentinel meaning no chunk produced
// a valid answer.
const NoAnswerChunk = -1

// Answer is the aggregated result of scoring a question against every
// chunk of an article. It is immutable once produced.
type Answer struct {
	// Question is the question that was asked.
	Question string `json:"question"`

	// Text is the extracted answer, a verbatim substring of the
	// winning chunk. Empty means no chunk produced a valid answer.
	Text string `json:"answer"`

	// Score is the scorer's confidence in [0,1]. 0.0 when no valid
	// answer was found.
	Score float64 `json:"confidence"`

	// ChunkIndex is the position of the winning chunk, or
	// NoAnswerChunk if no chunk produced a valid answer.
	ChunkIndex int `json:"chunk_index"`

	// TotalChunks is the number of chunks the article was split into.
	TotalChunks int `json:"total_chunks"`

	// Start and End are character offsets of Text within the winning
	// chunk's content. Both are 0 when no answer was found.
	Start int `json:"start"`
	End   int `json:"end"`
}

// Found returns true if any chunk produced a valid answer.
func (a Answer) Found() bool {
	return a.ChunkIndex != NoAnswerChunk
}

// ValidScore reports whether a raw confidence value is usable.
// Values outside [0,1] signal an invalid scorer result and must be
// discarded, not clamped.
func ValidScore(score float64) bool {
	return score >= 0 && score <= 1
}
