package driven

import (
	"context"

	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
)

// CorpusStore persists the corpus artifact.
// Save overwrites any previous artifact as a whole; there is no
// incremental update. Load parses the artifact once.
type CorpusStore interface {
	// Save writes the complete corpus, replacing the previous artifact.
	Save(ctx context.Context, corpus domain.Corpus) error

	// Load reads the complete corpus in insertion order.
	Load(ctx context.Context) (domain.Corpus, error)

	// Path returns the artifact location.
	Path() string
}
