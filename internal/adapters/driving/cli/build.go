package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
	"github.com/kennyvt/kennyvt.github.io/internal/extractors/pdf"
	"github.com/kennyvt/kennyvt.github.io/internal/logger"
)

// checkPDFTool reports whether the configured pdftotext can run.
var checkPDFTool = pdf.CheckAvailable

var (
	buildSource     string
	buildRender     string
	buildOut        string
	buildHTMLBodies bool
	buildLinkPrefix string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the search corpus",
	Long: `Walks the source tree for PDF files and the render tree for listing
pages, extracts one document per entry, and writes the corpus artifact.

Files that cannot be extracted are reported and skipped; the artifact is
still written with every document that succeeded.

Flags override the [build] and [corpus] sections of the configuration.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	addBuildFlags(buildCmd)
	rootCmd.AddCommand(buildCmd)
}

// addBuildFlags registers the flags shared by build and watch.
func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&buildSource, "source", "", "source tree holding PDF files")
	cmd.Flags().StringVar(&buildRender, "render", "", "render tree holding HTML pages")
	cmd.Flags().StringVarP(&buildOut, "out", "o", "", "corpus artifact path")
	cmd.Flags().BoolVar(&buildHTMLBodies, "html-bodies", false, "index rendered HTML page bodies")
	cmd.Flags().StringVar(&buildLinkPrefix, "link-prefix", "", "prefix prepended to every document path")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	settings, err := currentSettings()
	if err != nil {
		return err
	}
	applyBuildFlags(cmd, settings)

	_, err = buildCorpus(cmd.Context(), cmd, settings)
	return err
}

// applyBuildFlags overrides settings with explicitly set build flags.
func applyBuildFlags(cmd *cobra.Command, settings *domain.AppSettings) {
	flags := cmd.Flags()
	if flags.Changed("source") {
		settings.Build.SourceRoot = buildSource
	}
	if flags.Changed("render") {
		settings.Build.RenderRoot = buildRender
	}
	if flags.Changed("out") {
		settings.Corpus.Path = buildOut
	}
	if flags.Changed("html-bodies") {
		settings.Build.IndexHTMLBodies = buildHTMLBodies
	}
	if flags.Changed("link-prefix") {
		settings.Build.LinkPrefix = buildLinkPrefix
	}
}

// buildCorpus runs one build and writes the artifact. Per-file failures are
// printed but do not fail the build.
func buildCorpus(ctx context.Context, cmd *cobra.Command, settings *domain.AppSettings) (*domain.BuildReport, error) {
	if builder == nil {
		return nil, errors.New("corpus builder not configured")
	}
	if openCorpus == nil {
		return nil, errors.New("corpus store not configured")
	}

	req := settings.Build.Request()
	if err := checkPDFTool(settings.PDF.Command); err != nil {
		cmd.Printf("Warning: %v. PDF files will be skipped.\n%s\n\n", err, pdf.InstallInstructions())
	}
	cmd.Printf("Building corpus from %s (render tree %s)...\n", req.SourceRoot, req.RenderRoot)

	corpus, report, err := builder.Build(ctx, req)
	if err != nil {
		return report, fmt.Errorf("build failed: %w", err)
	}

	store, closeStore, err := openCorpus(settings.Corpus)
	if err != nil {
		return report, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer func() {
		if cerr := closeStore(); cerr != nil {
			logger.Warn("closing corpus store: %v", cerr)
		}
	}()

	if err := store.Save(ctx, corpus); err != nil {
		return report, fmt.Errorf("failed to save corpus: %w", err)
	}

	printBuildReport(cmd, corpus, report)
	cmd.Printf("Wrote %s (%s)\n", store.Path(), settings.Corpus.ResolvedFormat())
	return report, nil
}

func printBuildReport(cmd *cobra.Command, corpus domain.Corpus, report *domain.BuildReport) {
	if report == nil {
		cmd.Printf("Indexed %d documents\n", corpus.Len())
		return
	}

	elapsed := report.Duration().Round(time.Millisecond)
	if report.Succeeded() {
		cmd.Printf("Indexed %d documents in %s\n", report.DocumentCount(), elapsed)
	} else {
		failures := report.Failures()
		cmd.Printf("Indexed %d documents (%d failures) in %s\n", report.DocumentCount(), len(failures), elapsed)

		skipped := 0
		for _, f := range failures {
			if errors.Is(f.Err, pdf.ErrPDFToolNotFound) {
				skipped++
				continue
			}
			cmd.Printf("  ! %s [%s]: %v\n", f.Path, f.Kind, f.Err)
		}
		if skipped > 0 {
			cmd.Printf("  ! %d PDF files skipped: %v\n", skipped, pdf.ErrPDFToolNotFound)
		}
	}
	logger.Debug("build run %s: %d documents with content", report.RunID, corpus.WithContent())
}
