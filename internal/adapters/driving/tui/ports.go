// Package tui provides an interactive terminal user interface for docsearch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
type Ports struct {
	// Search runs queries against the loaded corpus.
	Search driving.SearchService

	// Settings supplies the result limit and snippet cap. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}

// searchOptions reads query options from settings, falling back to the
// engine defaults.
func (p *Ports) searchOptions() domain.SearchOptions {
	if p.Settings == nil {
		return domain.SearchOptions{}
	}
	settings, err := p.Settings.Get()
	if err != nil {
		return domain.SearchOptions{}
	}
	return domain.SearchOptions{
		Limit:       settings.Search.Limit,
		MaxSnippets: settings.Search.MaxSnippets,
	}
}
