package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/wikiqa-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the Wikipedia language, scorer provider and
chunking options.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value and persist it immediately.

Available keys:
  wikipedia.language   Wikipedia language code (e.g. en, de, fr)
  scorer.provider      Inference provider: huggingface or local
  scorer.model         Extractive QA model name
  scorer.base_url      API endpoint (local provider)
  scorer.api_key       API key (huggingface provider)
  chunker.max_length   Chunk sentence budget (positive integer)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Wikipedia]")
	cmd.Printf("  Language: %s\n", settings.Wikipedia.Language)
	cmd.Println()

	cmd.Println("[Scorer]")
	cmd.Printf("  Provider: %s\n", settings.Scorer.Provider.Description())
	cmd.Printf("  Model: %s\n", settings.Scorer.Model)
	if settings.Scorer.Provider.IsLocal() {
		baseURL := settings.Scorer.BaseURL
		if baseURL == "" {
			baseURL = "(provider default)"
		}
		cmd.Printf("  Base URL: %s\n", baseURL)
	}
	if settings.Scorer.Provider.RequiresAPIKey() {
		if settings.Scorer.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(settings.Scorer.APIKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
	}
	status := "configured"
	if !settings.Scorer.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Chunker]")
	cmd.Printf("  Max length: %d\n", settings.Chunker.MaxLength)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured
	}

	key, value := args[0], args[1]

	switch key {
	case "wikipedia.language":
		if err := settingsService.SetLanguage(value); err != nil {
			return err
		}

	case "scorer.provider":
		settings, err := settingsService.Get()
		if err != nil {
			return err
		}
		provider := domain.ScorerProvider(value)
		// Model resets to the provider default; key and URL carry over.
		if err := settingsService.SetScorerProvider(provider, "", settings.Scorer.BaseURL, settings.Scorer.APIKey); err != nil {
			return err
		}

	case "scorer.model", "scorer.base_url", "scorer.api_key":
		settings, err := settingsService.Get()
		if err != nil {
			return err
		}
		switch key {
		case "scorer.model":
			settings.Scorer.Model = value
		case "scorer.base_url":
			settings.Scorer.BaseURL = value
		case "scorer.api_key":
			settings.Scorer.APIKey = value
		}
		if err := settingsService.Save(settings); err != nil {
			return err
		}

	case "chunker.max_length":
		maxLength, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: chunker.max_length must be an integer", domain.ErrInvalidInput)
		}
		if err := settingsService.SetMaxLength(maxLength); err != nil {
			return err
		}

	default:
		return fmt.Errorf("%w: unknown setting %q (see 'wikiqa settings set --help')", domain.ErrInvalidInput, key)
	}

	if key == "scorer.api_key" {
		value = maskAPIKey(value)
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
