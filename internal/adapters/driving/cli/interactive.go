package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/veldt-labs/wikiqa-cli/internal/adapters/driving/tui"
	"github.com/veldt-labs/wikiqa-cli/internal/core/services"
	"github.com/veldt-labs/wikiqa-cli/internal/logger"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Launch an interactive question answering session",
	Long: `Launch an interactive terminal session. Load an article once, then ask
as many questions about it as you like.

Controls:
  Enter  - Submit article title / question
  Tab    - Switch between article and question input
  Esc    - Clear the current article
  Ctrl+C - Quit`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	// Panic recovery keeps the stack trace visible after the
	// alternate screen is torn down.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in interactive session: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}

	session := sessionService
	cleanup := func() {}
	if session == nil {
		qa, fetcher, cleanupFn, err := buildPipeline("", 0)
		if err != nil {
			return err
		}
		cleanup = cleanupFn

		history, err := ensureHistoryStore()
		if err != nil {
			logger.Warn("history disabled: %v", err)
		}

		session = services.NewSessionService(fetcher, qa, history)
	}
	defer cleanup()

	app := tui.NewApp(session)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive session error: %w", err)
	}

	return nil
}
