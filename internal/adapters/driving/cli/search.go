package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kennyvt/kennyvt.github.io/internal/adapters/driving/tui/styles"
	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
)

var (
	searchLimit    int
	searchSnippets int
	searchJSON     bool
	searchCorpus   string
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search the document corpus",
	Long: `Scores every document in the corpus against the query and prints
the matches, best first.

An exact title match scores 1000, each query word found in the title 100,
each query word that starts the title a further 50, and each occurrence
in the document body 1. Words shorter than two characters are ignored.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 = configured limit)")
	searchCmd.Flags().IntVar(&searchSnippets, "snippets", 0, "maximum snippets per result (0 = configured maximum)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringVar(&searchCorpus, "corpus", "", "corpus artifact path")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	if searchService == nil {
		return errors.New("search service not configured")
	}

	settings, err := currentSettings()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("corpus") {
		settings.Corpus.Path = searchCorpus
	}

	if err := loadCorpus(cmd.Context(), settings.Corpus); err != nil {
		return err
	}

	opts := domain.SearchOptions{
		Limit:       settings.Search.Limit,
		MaxSnippets: settings.Search.MaxSnippets,
	}
	if searchLimit > 0 {
		opts.Limit = searchLimit
	}
	if searchSnippets > 0 {
		opts.MaxSnippets = searchSnippets
	}

	results := searchService.Search(query, opts)

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	var mark func(string) string
	if isTerminal(cmd.OutOrStdout()) {
		mark = styles.DefaultStyles().MarkMatch
	}
	return outputSearchTable(cmd, query, results, mark)
}

// jsonResult adds the display relevance to a query result.
type jsonResult struct {
	domain.QueryResult
	Relevance int `json:"relevance"`
}

func outputSearchJSON(cmd *cobra.Command, results []domain.QueryResult) error {
	out := make([]jsonResult, len(results))
	for i := range results {
		out[i] = jsonResult{QueryResult: results[i], Relevance: results[i].Relevance()}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// outputSearchTable prints results as a numbered list. mark, when non-nil,
// highlights query terms inside snippets.
func outputSearchTable(cmd *cobra.Command, query string, results []domain.QueryResult, mark func(string) string) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	terms := domain.Tokenize(query)

	cmd.Printf("Results for %q (%d of %d documents):\n", query, len(results), searchService.Size())
	cmd.Println()
	for i := range results {
		r := &results[i]

		cmd.Printf("  [%d] %s  Relevance: %d%%", i+1, r.Title, r.Relevance())
		if r.TitleMatch() {
			cmd.Print(" (title match)")
		}
		cmd.Println()
		cmd.Printf("      %s\n", r.Path)
		for _, s := range r.Snippets {
			cmd.Printf("      %s\n", domain.HighlightTerms(s.Text, terms, mark))
		}
		cmd.Println()
	}

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
