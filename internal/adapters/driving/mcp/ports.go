package mcp

import (
	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Search runs queries against the loaded corpus.
	Search driving.SearchService

	// Settings supplies query defaults. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
