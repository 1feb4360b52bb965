// Package cli provides the cobra command surface of wikiqa.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/wikiqa-cli/internal/adapters/driven/config/file"
	"github.com/veldt-labs/wikiqa-cli/internal/adapters/driven/scorer"
	"github.com/veldt-labs/wikiqa-cli/internal/adapters/driven/storage/sqlite"
	"github.com/veldt-labs/wikiqa-cli/internal/adapters/driven/wikipedia"
	"github.com/veldt-labs/wikiqa-cli/internal/chunker"
	"github.com/veldt-labs/wikiqa-cli/internal/core/domain"
	"github.com/veldt-labs/wikiqa-cli/internal/core/ports/driven"
	"github.com/veldt-labs/wikiqa-cli/internal/core/ports/driving"
	"github.com/veldt-labs/wikiqa-cli/internal/core/services"
	"github.com/veldt-labs/wikiqa-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var verbose bool

// Service seams. Production wiring happens lazily in initServices and
// buildPipeline; tests inject their own implementations.
var (
	settingsService driving.SettingsService
	qaService       driving.QAService
	sessionService  driving.SessionService
	articleFetcher  driven.ArticleFetcher
	historyStore    driven.HistoryStore
)

var rootCmd = &cobra.Command{
	Use:   "wikiqa",
	Short: "Ask questions about Wikipedia articles",
	Long: `wikiqa fetches a Wikipedia article, splits it into sentence-aligned
chunks and runs each chunk through an extractive question-answering
model, returning the highest-confidence answer span.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		logger.SetOutput(cmd.ErrOrStderr())
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if historyStore != nil {
			_ = historyStore.Close()
		}
	}()
	return rootCmd.Execute()
}

// initServices wires the settings service against the on-disk config
// store. Skipped when a test has already injected one.
func initServices() error {
	if settingsService != nil {
		return nil
	}

	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}

	settingsService = services.NewSettingsService(store)
	return nil
}

// buildPipeline constructs the fetcher, scorer and chunker from current
// settings, applying optional language and max-length overrides. The
// caller must invoke the returned cleanup function.
func buildPipeline(lang string, maxLength int) (driving.QAService, driven.ArticleFetcher, func(), error) {
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load settings: %w", err)
	}

	if lang == "" {
		lang = settings.Wikipedia.Language
	}
	if maxLength <= 0 {
		maxLength = settings.Chunker.MaxLength
	}

	fetcher := wikipedia.NewFetcher(wikipedia.Config{Language: lang})

	sc, err := scorer.Create(&settings.Scorer)
	if err != nil {
		fetcher.Close()
		return nil, nil, nil, err
	}
	if sc == nil {
		fetcher.Close()
		if err := settingsService.Validate(); err != nil {
			return nil, nil, nil, err
		}
		return nil, nil, nil, domain.ErrScorerUnavailable
	}

	splitter := chunker.New(chunker.WithMaxLength(maxLength))
	qa := services.NewQAService(fetcher, sc, splitter)

	cleanup := func() {
		sc.Close()
		fetcher.Close()
	}
	return qa, fetcher, cleanup, nil
}

// ensureHistoryStore opens the on-disk history database on first use.
func ensureHistoryStore() (driven.HistoryStore, error) {
	if historyStore != nil {
		return historyStore, nil
	}

	store, err := sqlite.NewHistoryStore("")
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}

	historyStore = store
	return store, nil
}

// errNotConfigured reports a missing service seam. Only reachable when
// a command runs without initServices, e.g. from a miswired test.
var errNotConfigured = errors.New("service not configured")
