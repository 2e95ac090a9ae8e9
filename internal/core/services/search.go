package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driven"
	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driving"
	"github.com/kennyvt/kennyvt.github.io/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// indexedDocument holds a corpus document with its lowercased fields,
// computed once at load time.
type indexedDocument struct {
	doc          domain.Document
	titleLower   string
	contentLower string
}

// score returns the title and content scores of the document for a query.
func (d *indexedDocument) score(queryLower string, tokens []string) (titleScore, contentScore int) {
	if d.titleLower == queryLower {
		titleScore += domain.ExactTitleScore
	}

	for _, term := range tokens {
		if strings.Contains(d.titleLower, term) {
			titleScore += domain.TitleMatchScore
			if strings.HasPrefix(d.titleLower, term) {
				titleScore += domain.TitlePrefixScore
			}
		}

		if d.contentLower != "" {
			// strings.Count advances past each match, so overlapping
			// occurrences are not double-counted.
			contentScore += strings.Count(d.contentLower, term) * domain.OccurrenceScore
		}
	}

	return titleScore, contentScore
}

// SearchOption configures a SearchService.
type SearchOption func(*SearchService)

// WithSnippetContext sets the number of characters kept on each side of a
// matched term. Non-positive values keep the default.
func WithSnippetContext(chars int) SearchOption {
	return func(s *SearchService) {
		if chars > 0 {
			s.contextChars = chars
		}
	}
}

// SearchService is the query engine. It holds the corpus as read-only
// state after a single load and scores every document per query.
type SearchService struct {
	mu           sync.RWMutex
	state        domain.EngineState
	loadErr      error
	docs         []indexedDocument
	contextChars int
}

// NewSearchService creates an engine in the unloaded state.
func NewSearchService(opts ...SearchOption) *SearchService {
	s := &SearchService{
		state:        domain.EngineUnloaded,
		contextChars: domain.DefaultSnippetContext,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewLoadedSearchService creates an engine already holding corpus.
func NewLoadedSearchService(corpus domain.Corpus, opts ...SearchOption) *SearchService {
	s := NewSearchService(opts...)
	s.docs = indexCorpus(corpus)
	s.state = domain.EngineLoaded
	return s
}

// Load reads the corpus from store. Only the first call does any work;
// later calls return domain.ErrAlreadyLoaded whatever the outcome of the
// first one was.
func (s *SearchService) Load(ctx context.Context, store driven.CorpusStore) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.EngineUnloaded {
		return domain.ErrAlreadyLoaded
	}

	logger.Section("Corpus Load")
	logger.Debug("Artifact: %s", store.Path())

	corpus, err := store.Load(ctx)
	if err != nil {
		s.state = domain.EngineLoadFailed
		s.loadErr = fmt.Errorf("load corpus %s: %w", store.Path(), err)
		logger.Warn("Corpus load failed: %v", err)
		return s.loadErr
	}

	s.docs = indexCorpus(corpus)
	s.state = domain.EngineLoaded
	logger.Info("Search index loaded: %d documents", len(s.docs))
	return nil
}

// State returns the corpus lifecycle state.
func (s *SearchService) State() domain.EngineState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// LoadErr returns the load failure reason, if any.
func (s *SearchService) LoadErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Size returns the number of documents held in memory.
func (s *SearchService) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Search scores every document against query and returns the matches
// ranked by total score. Equal scores keep corpus order.
func (s *SearchService) Search(query string, opts domain.SearchOptions) []domain.QueryResult {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []domain.QueryResult{}

	if s.state != domain.EngineLoaded {
		logger.Debug("Engine %s, returning no results", s.state)
		return results
	}

	tokens := domain.Tokenize(query)
	if len(tokens) == 0 {
		logger.Debug("No usable terms, returning no results")
		return results
	}
	logger.Debug("Terms: %v", tokens)

	queryLower := domain.Fold(query)
	maxSnippets := opts.EffectiveMaxSnippets()

	for i := range s.docs {
		d := &s.docs[i]
		titleScore, contentScore := d.score(queryLower, tokens)
		total := titleScore + contentScore
		if total == 0 {
			continue
		}

		results = append(results, domain.QueryResult{
			Document:     d.doc,
			TitleScore:   titleScore,
			ContentScore: contentScore,
			TotalScore:   total,
			Snippets:     Snippets(d.doc.Content, tokens, maxSnippets, s.contextChars),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalScore > results[j].TotalScore
	})
	logger.Debug("Matched %d of %d documents", len(results), len(s.docs))

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}

	logger.Info("Final results: %d", len(results))
	return results
}

// Snippets extracts up to maxSnippets excerpts of content around term
// occurrences. Terms are visited in order, so earlier terms win when there
// are more candidates than slots. Each excerpt keeps contextChars
// characters of original-case text on either side of the match.
func Snippets(content string, terms []string, maxSnippets, contextChars int) []domain.Snippet {
	snippets := []domain.Snippet{}
	if content == "" || maxSnippets <= 0 {
		return snippets
	}

	orig := []rune(content)
	lower := domain.FoldRunes(orig)

	for _, term := range terms {
		needle := domain.FoldRunes([]rune(term))
		cursor := 0

		for len(snippets) < maxSnippets {
			pos := domain.IndexRunes(lower, needle, cursor)
			if pos < 0 {
				break
			}

			start := max(0, pos-contextChars)
			end := min(len(orig), pos+len(needle)+contextChars)

			snippets = append(snippets, domain.Snippet{
				Text: "..." + string(orig[start:end]) + "...",
				Term: term,
			})

			cursor = pos + len(needle)
		}
	}

	return snippets
}

func indexCorpus(corpus domain.Corpus) []indexedDocument {
	docs := make([]indexedDocument, len(corpus))
	for i, doc := range corpus {
		docs[i] = indexedDocument{
			doc:          doc,
			titleLower:   domain.Fold(doc.Title),
			contentLower: domain.Fold(doc.Content),
		}
	}
	return docs
}
