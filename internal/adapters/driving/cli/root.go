// Package cli provides the docsearch command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driven"
	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driving"
	"github.com/kennyvt/kennyvt.github.io/internal/logger"
)

// DefaultConfigPath is the configuration file used when --config is not given.
const DefaultConfigPath = "docsearch.toml"

// skipBootstrap marks commands that run without configured services.
const skipBootstrap = "skip-bootstrap"

var version = "dev"

var (
	verbose    bool
	configPath string
)

// CorpusOpener opens the artifact store described by corpus settings.
// The returned close function releases the store.
type CorpusOpener func(settings domain.CorpusSettings) (driven.CorpusStore, func() error, error)

// WatcherFactory creates a tree watcher for the watch command.
type WatcherFactory func(debounce time.Duration, rules domain.ClassifyRules) driven.TreeWatcher

// Services holds everything the commands need.
type Services struct {
	Settings   driving.SettingsService
	Builder    driving.CorpusBuilder
	Search     driving.SearchService
	OpenCorpus CorpusOpener
	NewWatcher WatcherFactory
}

// Bootstrap constructs the services once the configuration path is known.
type Bootstrap func(configPath string) (*Services, error)

var (
	bootstrap       Bootstrap
	settingsService driving.SettingsService
	builder         driving.CorpusBuilder
	searchService   driving.SearchService
	openCorpus      CorpusOpener
	newWatcher      WatcherFactory
)

var rootCmd = &cobra.Command{
	Use:   "docsearch",
	Short: "Build and search a corpus of PDF and HTML documents",
	Long: `docsearch walks a tree of PDF files and rendered HTML pages, extracts
searchable documents into a corpus artifact, and answers keyword queries
against it.

Titles weigh far more than content: an exact title match outranks any
number of content occurrences.`,
	SilenceUsage:      true,
	PersistentPreRunE: runBootstrap,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", DefaultConfigPath, "configuration file")
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap sets the function that builds services before each command.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs already constructed services.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	settingsService = s.Settings
	builder = s.Builder
	searchService = s.Search
	openCorpus = s.OpenCorpus
	newWatcher = s.NewWatcher
}

func runBootstrap(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil || cmd.Annotations[skipBootstrap] != "" {
		return nil
	}

	logger.Debug("loading configuration from %s", configPath)
	s, err := bootstrap(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	SetServices(s)
	return nil
}

// currentSettings returns the configured settings.
func currentSettings() (*domain.AppSettings, error) {
	if settingsService == nil {
		return nil, errors.New("settings service not configured")
	}
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// loadCorpus loads the artifact into the search service. An engine that
// already holds a corpus is left untouched.
func loadCorpus(ctx context.Context, corpus domain.CorpusSettings) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}
	if searchService.State() == domain.EngineLoaded {
		return nil
	}
	if err := searchService.LoadErr(); err != nil {
		return err
	}
	if openCorpus == nil {
		return errors.New("corpus store not configured")
	}

	store, closeStore, err := openCorpus(corpus)
	if err != nil {
		return fmt.Errorf("failed to open corpus: %w", err)
	}
	defer func() {
		if cerr := closeStore(); cerr != nil {
			logger.Warn("closing corpus store: %v", cerr)
		}
	}()

	logger.Debug("loading corpus from %s", store.Path())
	if err := searchService.Load(ctx, store); err != nil {
		if errors.Is(err, domain.ErrAlreadyLoaded) {
			return nil
		}
		return err
	}
	logger.Info("loaded %d documents", searchService.Size())
	return nil
}
