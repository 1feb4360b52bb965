package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/veldt-labs/wikiqa-cli/internal/core/domain"
	"github.com/veldt-labs/wikiqa-cli/internal/core/ports/driven"
	"github.com/veldt-labs/wikiqa-cli/internal/logger"
)

var (
	askJSON      bool
	askLang      string
	askMaxLength int
)

var askCmd = &cobra.Command{
	Use:   "ask [title] [question]",
	Short: "Answer a question about a Wikipedia article",
	Long: `Fetches the named article, splits it into sentence-aligned chunks and
scores each chunk against the question, printing the best answer.`,
	Args: cobra.ExactArgs(2),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	askCmd.Flags().StringVar(&askLang, "lang", "", "Wikipedia language code (overrides settings)")
	askCmd.Flags().IntVar(&askMaxLength, "max-length", 0, "chunk sentence budget (overrides settings)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	title, question := args[0], args[1]

	qa := qaService
	cleanup := func() {}
	if qa == nil {
		var err error
		qa, _, cleanup, err = buildPipeline(askLang, askMaxLength)
		if err != nil {
			return err
		}
	}
	defer cleanup()

	ctx := context.Background()
	answer, err := qa.Ask(ctx, title, question)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	recordAsk(ctx, title, answer)

	if askJSON {
		return outputAnswerJSON(cmd, answer)
	}

	outputAnswerText(cmd, answer)
	return nil
}

// recordAsk appends a one-shot question to the history log. Failures
// are logged, never fatal.
func recordAsk(ctx context.Context, title string, answer domain.Answer) {
	store, err := ensureHistoryStore()
	if err != nil {
		logger.Warn("record history: %v", err)
		return
	}

	lang := askLang
	if lang == "" {
		if settings, err := settingsService.Get(); err == nil {
			lang = settings.Wikipedia.Language
		}
	}

	entry := driven.HistoryEntry{
		ID:           uuid.New().String(),
		ArticleTitle: title,
		Language:     lang,
		Answer:       answer,
		AskedAt:      time.Now().UTC(),
	}
	if err := store.Append(ctx, entry); err != nil {
		logger.Warn("record history: %v", err)
	}
}

func outputAnswerJSON(cmd *cobra.Command, answer domain.Answer) error {
	data, err := json.MarshalIndent(answer, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAnswerText(cmd *cobra.Command, answer domain.Answer) {
	if !answer.Found() {
		cmd.Printf("No answer found (searched %d chunks).\n", answer.TotalChunks)
		return
	}

	cmd.Printf("Answer: %s\n", answer.Text)
	cmd.Printf("Confidence: %.4f\n", answer.Score)
	cmd.Printf("Chunk: %d/%d\n", answer.ChunkIndex+1, answer.TotalChunks)
}
