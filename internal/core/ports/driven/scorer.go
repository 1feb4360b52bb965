package driven

import "context"

// ScoreResult is one scorer invocation's output, validated at the
// boundary before it enters the selector.
type ScoreResult struct {
	// Answer is a verbatim substring of the scored context.
	Answer string

	// Score is the model's confidence. Expected to lie in [0,1];
	// out-of-range values are the caller's signal to discard the
	// result, not to clamp it.
	Score float64

	// Start and End are character offsets of Answer within the
	// scored context.
	Start int
	End   int
}

// AnswerScorer runs extractive question answering over a single
// context segment.
//
// Latency and resource cost are owned by the implementation. The core
// invokes it once per chunk, synchronously, in document order.
//
// Implementations may include:
//   - HuggingFace Inference API (hosted)
//   - A local inference server speaking the same pipeline JSON
type AnswerScorer interface {
	// Score extracts an answer span for the question from the passage.
	Score(ctx context.Context, passage, question string) (ScoreResult, error)

	// ModelName returns the name of the QA model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request. Used at startup before committing to a provider.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
