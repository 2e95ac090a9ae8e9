package driving

import (
	"context"

	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driven"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Load reads the corpus once. A failed load leaves the service in the
	// load-failed state; it is never retried.
	Load(ctx context.Context, store driven.CorpusStore) error

	// Search scores the loaded corpus against a free-text query and returns
	// ranked results. It never returns nil and never fails; an engine that
	// holds no corpus returns an empty slice.
	Search(query string, opts domain.SearchOptions) []domain.QueryResult

	// State returns the corpus lifecycle state.
	State() domain.EngineState

	// LoadErr returns the load failure reason, if any.
	LoadErr() error

	// Size returns the number of documents held in memory.
	Size() int
}
