// Command docsearch builds and searches a corpus of PDF and HTML documents.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/kennyvt/kennyvt.github.io/internal/adapters/driven/config/file"
	"github.com/kennyvt/kennyvt.github.io/internal/adapters/driven/storage"
	"github.com/kennyvt/kennyvt.github.io/internal/adapters/driven/watch"
	"github.com/kennyvt/kennyvt.github.io/internal/adapters/driving/cli"
	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driven"
	"github.com/kennyvt/kennyvt.github.io/internal/core/services"
	"github.com/kennyvt/kennyvt.github.io/internal/extractors/html"
	"github.com/kennyvt/kennyvt.github.io/internal/extractors/pdf"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires the services for the configuration file at configPath.
func bootstrap(configPath string) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	var builderOpts []services.BuilderOption
	if settings.Build.RateLimit > 0 {
		limiter := rate.NewLimiter(rate.Limit(settings.Build.RateLimit), 1)
		builderOpts = append(builderOpts, services.WithExtractionLimit(limiter))
	}

	htmlExtractor := html.New()
	builder := services.NewBuilder(
		pdf.New(pdf.WithCommand(settings.PDF.Command)),
		htmlExtractor,
		htmlExtractor,
		builderOpts...,
	)

	return &cli.Services{
		Settings:   settingsService,
		Builder:    builder,
		Search:     services.NewSearchService(services.WithSnippetContext(settings.Search.ContextChars)),
		OpenCorpus: storage.Open,
		NewWatcher: func(debounce time.Duration, rules domain.ClassifyRules) driven.TreeWatcher {
			return watch.New(debounce, rules)
		},
	}, nil
}
