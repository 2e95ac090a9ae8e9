package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/kennyvt/kennyvt.github.io/internal/adapters/driving/tui"
	"github.com/kennyvt/kennyvt.github.io/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive search interface",
	Long: `Launch the interactive terminal interface for docsearch.

Results update as you type once the query has at least two characters.

Controls:
  ↑/Ctrl+K, ↓/Ctrl+J - Navigate results
  Tab                - Show all snippets of the selected result
  Ctrl+U             - Clear the query
  Esc, Ctrl+C        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if searchService == nil {
		return errors.New("search service not configured")
	}

	settings, err := currentSettings()
	if err != nil {
		return err
	}

	// The interface shows load failures in its status bar.
	if err := loadCorpus(cmd.Context(), settings.Corpus); err != nil {
		logger.Warn("corpus not loaded: %v", err)
	}

	app, err := tui.NewApp(&tui.Ports{
		Search:   searchService,
		Settings: settingsService,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
