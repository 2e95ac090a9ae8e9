package domain

// Default query-time parameters. The values are load-bearing for ranking
// compatibility with existing corpora and must not be tuned.
const (
	// DefaultMaxSnippets caps the snippets attached to one result.
	DefaultMaxSnippets = 3

	// DefaultSnippetContext is the number of characters kept on each side
	// of a matched term.
	DefaultSnippetContext = 50

	// MinTokenLength is the shortest query token that takes part in scoring.
	MinTokenLength = 2
)

// Scoring weights.
const (
	ExactTitleScore  = 1000
	TitleMatchScore  = 100
	TitlePrefixScore = 50
	OccurrenceScore  = 1
)

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit is the maximum number of results. Zero means no limit.
	Limit int

	// MaxSnippets caps snippets per result. Zero means DefaultMaxSnippets.
	MaxSnippets int
}

// EffectiveMaxSnippets returns MaxSnippets or the default when unset.
func (o SearchOptions) EffectiveMaxSnippets() int {
	if o.MaxSnippets <= 0 {
		return DefaultMaxSnippets
	}
	return o.MaxSnippets
}

// Snippet is a bounded excerpt of a document's content around one
// occurrence of a query term.
type Snippet struct {
	// Text is the excerpt wrapped in ellipsis markers.
	Text string `json:"text"`

	// Term is the query token that produced this snippet.
	Term string `json:"term"`
}

// QueryResult is a Document decorated with query-scoped scores and
// snippets. It exists only for the lifetime of one query response.
type QueryResult struct {
	Document

	TitleScore   int       `json:"titleScore"`
	ContentScore int       `json:"contentScore"`
	TotalScore   int       `json:"totalScore"`
	Snippets     []Snippet `json:"snippets"`
}

// TitleMatch reports whether the title contributed to the score.
func (r QueryResult) TitleMatch() bool {
	return r.TitleScore > 0
}

// Relevance returns the display percentage for the result.
func (r QueryResult) Relevance() int {
	return Relevance(r.TotalScore)
}

// Relevance converts a total score into a display percentage by
// floor-dividing by 10 and clamping to 100. It plays no part in ranking.
func Relevance(totalScore int) int {
	if totalScore <= 0 {
		return 0
	}
	pct := totalScore / 10
	if pct > 100 {
		return 100
	}
	return pct
}

// EngineState describes the corpus lifecycle of a query engine.
type EngineState int

const (
	// EngineUnloaded means no load has been attempted yet.
	EngineUnloaded EngineState = iota

	// EngineLoaded means a corpus is held in memory and searches run.
	EngineLoaded

	// EngineLoadFailed means the single load attempt failed.
	EngineLoadFailed
)

// String returns the string representation.
func (s EngineState) String() string {
	switch s {
	case EngineUnloaded:
		return "unloaded"
	case EngineLoaded:
		return "loaded"
	case EngineLoadFailed:
		return "load_failed"
	default:
		return unknownDescription
	}
}
