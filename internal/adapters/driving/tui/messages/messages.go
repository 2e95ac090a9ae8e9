// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
)

// QueryChanged is sent when the search query input changes.
type QueryChanged struct {
	Query string
}

// SearchCompleted carries ranked results back to the model.
type SearchCompleted struct {
	// Query is the input value the search ran for.
	Query string

	// Terms are the tokens used for highlighting.
	Terms []string

	Results []domain.QueryResult
}

// For reports whether the results belong to query. Results for an older
// input value are stale and must be dropped.
func (m SearchCompleted) For(query string) bool {
	return m.Query == query
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
