package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"settings"},
	Short:   "Manage application settings",
	Long: `View and change docsearch settings.

Settings are stored in the TOML file named by --config. Keys are dotted,
for example build.source_root or search.limit.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and write it to the configuration file.

List settings (build.skip_dirs, build.exclude_files) take comma-separated
values. Run "docsearch config keys" to list every key.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	settings, err := currentSettings()
	if err != nil {
		return err
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Build]")
	cmd.Printf("  Source root: %s\n", settings.Build.SourceRoot)
	cmd.Printf("  Render root: %s\n", settings.Build.RenderRoot)
	cmd.Printf("  Listing page: %s\n", settings.Build.ListingName)
	cmd.Printf("  Skipped directories: %s\n", listOrNone(settings.Build.SkipDirs))
	cmd.Printf("  Excluded files: %s\n", listOrNone(settings.Build.ExcludeFiles))
	cmd.Printf("  Index HTML bodies: %t\n", settings.Build.IndexHTMLBodies)
	cmd.Printf("  Link prefix: %s\n", valueOrNone(settings.Build.LinkPrefix))
	cmd.Printf("  Rate limit: %s\n", limitOrUnlimited(settings.Build.RateLimit, "/s"))
	cmd.Println()

	cmd.Println("[Corpus]")
	cmd.Printf("  Path: %s\n", settings.Corpus.Path)
	cmd.Printf("  Format: %s", settings.Corpus.Format)
	if settings.Corpus.Format == domain.CorpusFormatAuto {
		cmd.Printf(" (%s)", settings.Corpus.ResolvedFormat())
	}
	cmd.Println()
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Result limit: %s\n", limitOrUnlimited(settings.Search.Limit, ""))
	cmd.Printf("  Snippets per result: %d\n", settings.Search.MaxSnippets)
	cmd.Printf("  Snippet context: %d characters\n", settings.Search.ContextChars)
	cmd.Println()

	cmd.Println("[PDF]")
	cmd.Printf("  Command: %s\n", settings.PDF.Command)
	cmd.Println()

	cmd.Println("[Watch]")
	cmd.Printf("  Debounce: %dms\n", settings.Watch.DebounceMS)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to update setting: %w", err)
	}

	cmd.Printf("%s set to %s\n", key, value)
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func listOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}

func valueOrNone(value string) string {
	if value == "" {
		return "(none)"
	}
	return value
}

func limitOrUnlimited(n int, unit string) string {
	if n <= 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%d%s", n, unit)
}
