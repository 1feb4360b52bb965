package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/wikiqa-cli/internal/adapters/driven/wikipedia"
	"github.com/veldt-labs/wikiqa-cli/internal/chunker"
	"github.com/veldt-labs/wikiqa-cli/internal/core/ports/driven"
)

// previewLength is how much of the extract the article command shows.
const previewLength = 300

var articleLang string

var articleCmd = &cobra.Command{
	Use:   "article [title]",
	Short: "Fetch an article and show its stats",
	Long: `Fetches the named article and prints its metadata, chunking stats and
the beginning of the plain-text extract.`,
	Args: cobra.ExactArgs(1),
	RunE: runArticle,
}

func init() {
	articleCmd.Flags().StringVar(&articleLang, "lang", "", "Wikipedia language code (overrides settings)")
	rootCmd.AddCommand(articleCmd)
}

func runArticle(cmd *cobra.Command, args []string) error {
	title := args[0]

	fetcher, maxLength, cleanup, err := articleDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	article, err := fetcher.Fetch(context.Background(), title)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	splitter := chunker.New(chunker.WithMaxLength(maxLength))
	chunks := splitter.Split(article.Extract)

	cmd.Printf("Title: %s\n", article.Title)
	cmd.Printf("Language: %s\n", article.Language)
	cmd.Printf("Page ID: %d\n", article.PageID)
	cmd.Printf("Extract: %d chars\n", len(article.Extract))
	cmd.Printf("Chunks: %d (ceiling %d chars)\n", len(chunks), splitter.Ceiling())
	cmd.Println()

	preview := article.Extract
	if len(preview) > previewLength {
		preview = preview[:previewLength] + "..."
	}
	cmd.Println(preview)

	return nil
}

// articleDeps resolves the fetcher and chunk budget, preferring the
// test seam over freshly built adapters.
func articleDeps() (driven.ArticleFetcher, int, func(), error) {
	if articleFetcher != nil {
		return articleFetcher, chunker.DefaultMaxLength, func() {}, nil
	}

	if settingsService == nil {
		return nil, 0, nil, errNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return nil, 0, nil, fmt.Errorf("load settings: %w", err)
	}

	lang := articleLang
	if lang == "" {
		lang = settings.Wikipedia.Language
	}

	fetcher := wikipedia.NewFetcher(wikipedia.Config{Language: lang})
	return fetcher, settings.Chunker.MaxLength, func() { fetcher.Close() }, nil
}
