// Package storage selects the corpus artifact implementation.
package storage

import (
	"fmt"

	"github.com/kennyvt/kennyvt.github.io/internal/adapters/driven/storage/jsonfile"
	"github.com/kennyvt/kennyvt.github.io/internal/adapters/driven/storage/sqlite"
	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driven"
)

// Open returns the corpus store for settings together with a function
// that releases it.
func Open(settings domain.CorpusSettings) (driven.CorpusStore, func() error, error) {
	noop := func() error { return nil }

	if settings.Path == "" {
		return nil, noop, fmt.Errorf("corpus path: %w", domain.ErrInvalidInput)
	}
	if !settings.Format.IsValid() {
		return nil, noop, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, settings.Format)
	}

	switch settings.ResolvedFormat() {
	case domain.CorpusFormatSQLite:
		store, err := sqlite.NewStore(settings.Path)
		if err != nil {
			return nil, noop, fmt.Errorf("open sqlite corpus: %w", err)
		}
		return store, store.Close, nil
	default:
		return jsonfile.New(settings.Path), noop, nil
	}
}
