package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently answered questions",
	Long:  `Lists the most recent question/answer pairs, newest first.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := ensureHistoryStore()
	if err != nil {
		return err
	}

	entries, err := store.List(context.Background(), historyLimit)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No questions answered yet.")
		return nil
	}

	for i, entry := range entries {
		cmd.Printf("[%d] %s  %s (%s)\n", i+1,
			entry.AskedAt.Local().Format("2006-01-02 15:04"),
			entry.ArticleTitle, entry.Language)
		cmd.Printf("    Q: %s\n", entry.Answer.Question)
		if entry.Answer.Found() {
			cmd.Printf("    A: %s (%.4f)\n", entry.Answer.Text, entry.Answer.Score)
		} else {
			cmd.Printf("    A: (no answer found)\n")
		}
		cmd.Println()
	}

	return nil
}
