package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driven"
)

// Ensure CorpusStore implements the interface.
var _ driven.CorpusStore = (*CorpusStore)(nil)

// CorpusStore keeps the last saved corpus in memory.
type CorpusStore struct {
	mu     sync.RWMutex
	corpus domain.Corpus
	saved  bool
}

// NewCorpusStore creates an empty store. Loading before any Save
// returns domain.ErrNotFound, like a missing artifact file.
func NewCorpusStore() *CorpusStore {
	return &CorpusStore{}
}

// NewCorpusStoreWith creates a store that already holds corpus.
func NewCorpusStoreWith(corpus domain.Corpus) *CorpusStore {
	return &CorpusStore{corpus: slices.Clone(corpus), saved: true}
}

// Save replaces the stored corpus.
func (s *CorpusStore) Save(ctx context.Context, corpus domain.Corpus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.corpus = slices.Clone(corpus)
	s.saved = true
	return nil
}

// Load returns a copy of the stored corpus.
func (s *CorpusStore) Load(ctx context.Context) (domain.Corpus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.saved {
		return nil, domain.ErrNotFound
	}
	out := slices.Clone(s.corpus)
	if out == nil {
		out = domain.Corpus{}
	}
	return out, nil
}

// Path returns a placeholder path.
func (s *CorpusStore) Path() string {
	return ":memory:"
}
