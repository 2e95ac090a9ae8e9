package driving

import (
	"context"

	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
)

// CorpusBuilder turns document trees into a corpus.
type CorpusBuilder interface {
	// Build walks the trees named by the request and returns the corpus in
	// walk order together with a report of every unit of work. Extraction
	// and directory failures are recorded in the report and never abort
	// the build; only context cancellation or an invalid request does.
	Build(ctx context.Context, req domain.BuildRequest) (domain.Corpus, *domain.BuildReport, error)
}
