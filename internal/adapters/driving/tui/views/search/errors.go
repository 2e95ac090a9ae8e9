package search

import "errors"

var (
	// ErrNoSearchService is reported when the view has no engine to query.
	ErrNoSearchService = errors.New("no search engine attached")

	// ErrCorpusUnavailable wraps the load failure of an engine that holds
	// no corpus. Every query on it returns no results.
	ErrCorpusUnavailable = errors.New("corpus unavailable")
)
