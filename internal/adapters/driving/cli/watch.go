package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
	"github.com/kennyvt/kennyvt.github.io/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the corpus whenever the document trees change",
	Long: `Builds the corpus once, then watches the source and render trees and
rebuilds after each burst of changes to PDF or HTML files.

Accepts the same flags as build. Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	addBuildFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if newWatcher == nil {
		return errors.New("watcher not configured")
	}

	settings, err := currentSettings()
	if err != nil {
		return err
	}
	applyBuildFlags(cmd, settings)

	ctx := cmd.Context()
	if _, err := buildCorpus(ctx, cmd, settings); err != nil {
		return err
	}

	debounce := time.Duration(settings.Watch.DebounceMS) * time.Millisecond
	req := settings.Build.Request()
	w := newWatcher(debounce, req.Rules)

	roots := watchRoots(req)
	cmd.Printf("Watching %v for changes...\n", roots)

	rebuild := func() {
		cmd.Println()
		if _, err := buildCorpus(ctx, cmd, settings); err != nil {
			logger.Error("rebuild failed: %v", err)
		}
	}

	if err := w.Watch(ctx, roots, rebuild); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}

// watchRoots returns the distinct trees a build reads from.
func watchRoots(req domain.BuildRequest) []string {
	roots := []string{req.SourceRoot}
	if req.RenderRoot != req.SourceRoot {
		roots = append(roots, req.RenderRoot)
	}
	return roots
}
