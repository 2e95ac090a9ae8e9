package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
)

// --- Mock implementations ---

// mockCorpusStore implements driven.CorpusStore for testing.
type mockCorpusStore struct {
	corpus  domain.Corpus
	loadErr error
	loads   int
}

func (m *mockCorpusStore) Save(_ context.Context, corpus domain.Corpus) error {
	m.corpus = corpus
	return nil
}

func (m *mockCorpusStore) Load(_ context.Context) (domain.Corpus, error) {
	m.loads++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.corpus, nil
}

func (m *mockCorpusStore) Path() string {
	return "mock://corpus"
}

func memoryCorpus() domain.Corpus {
	return domain.Corpus{
		{Title: "Memory Management", Path: "a/memory.html", Content: "memory allocation and memory safety in systems"},
		{Title: "Allocator", Path: "b/alloc.html", Content: "general allocator design"},
	}
}

// --- Search tests ---

func TestSearchService_ImplementsInterface(t *testing.T) {
	svc := NewSearchService()
	assert.Equal(t, domain.EngineUnloaded, svc.State())
	assert.Zero(t, svc.Size())
}

func TestSearch_ExactTitleExample(t *testing.T) {
	svc := NewLoadedSearchService(memoryCorpus())

	results := svc.Search("memory", domain.SearchOptions{})

	require.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, "Memory Management", r.Title)
	// "memory" is not the whole title, so no exact bonus.
	assert.Equal(t, 150, r.TitleScore)
	assert.Equal(t, 2, r.ContentScore)
	assert.Equal(t, 152, r.TotalScore)
	assert.Equal(t, 15, r.Relevance())
	assert.True(t, r.TitleMatch())
}

func TestSearch_ExactTitleBonus(t *testing.T) {
	svc := NewLoadedSearchService(memoryCorpus())

	results := svc.Search("Memory Management", domain.SearchOptions{})

	require.NotEmpty(t, results)
	r := results[0]
	assert.Equal(t, "Memory Management", r.Title)
	// exact 1000, "memory" 100+50, "management" 100
	assert.Equal(t, 1250, r.TitleScore)
	assert.Equal(t, 2, r.ContentScore)
	assert.Equal(t, 1252, r.TotalScore)
	assert.Equal(t, 100, r.Relevance())
}

func TestSearch_ExactTitleIsCaseInsensitive(t *testing.T) {
	svc := NewLoadedSearchService(domain.Corpus{
		{Title: "Memory", Path: "m.html", Content: "memory"},
	})

	results := svc.Search("MEMORY", domain.SearchOptions{})

	require.Len(t, results, 1)
	assert.Equal(t, 1150, results[0].TitleScore)
	assert.Equal(t, 1, results[0].ContentScore)
	assert.Equal(t, 1151, results[0].TotalScore)
}

func TestSearch_NonOverlappingCount(t *testing.T) {
	svc := NewLoadedSearchService(domain.Corpus{
		{Title: "Letters", Path: "l.html", Content: "aaa"},
	})

	results := svc.Search("aa", domain.SearchOptions{})

	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].TitleScore)
	assert.Equal(t, 1, results[0].ContentScore)
}

func TestSearch_EmptyAndShortQueries(t *testing.T) {
	svc := NewLoadedSearchService(memoryCorpus())

	tests := []string{"", "   ", "a", "a b c", "\t\n"}
	for _, q := range tests {
		t.Run(q, func(t *testing.T) {
			results := svc.Search(q, domain.SearchOptions{})
			assert.NotNil(t, results)
			assert.Empty(t, results)
		})
	}
}

func TestSearch_NoMatch(t *testing.T) {
	svc := NewLoadedSearchService(memoryCorpus())

	results := svc.Search("kernel", domain.SearchOptions{})

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearch_TitleOnlyDocuments(t *testing.T) {
	svc := NewLoadedSearchService(domain.Corpus{
		{Title: "Design Notes", Path: "notes/"},
		{Title: "Intro", Path: "intro.html"},
	})

	results := svc.Search("notes", domain.SearchOptions{})

	require.Len(t, results, 1)
	assert.Equal(t, "notes/", results[0].Path)
	assert.Equal(t, 100, results[0].TitleScore)
	assert.Zero(t, results[0].ContentScore)
	assert.Empty(t, results[0].Snippets)
	assert.NotNil(t, results[0].Snippets)
}

func TestSearch_RankingAndStableTies(t *testing.T) {
	svc := NewLoadedSearchService(domain.Corpus{
		{Title: "One", Path: "1.html", Content: "go"},
		{Title: "Two", Path: "2.html", Content: "go go go"},
		{Title: "Three", Path: "3.html", Content: "go"},
		{Title: "Four", Path: "4.html", Content: "nothing here"},
		{Title: "Five", Path: "5.html", Content: "go"},
	})

	results := svc.Search("go", domain.SearchOptions{})

	require.Len(t, results, 4)
	paths := make([]string, len(results))
	for i, r := range results {
		paths[i] = r.Path
	}
	assert.Equal(t, []string{"2.html", "1.html", "3.html", "5.html"}, paths)
}

func TestSearch_ScoresAreNonIncreasing(t *testing.T) {
	svc := NewLoadedSearchService(domain.Corpus{
		{Title: "Alpha", Path: "a", Content: "beta beta"},
		{Title: "Beta", Path: "b", Content: "alpha"},
		{Title: "Gamma beta", Path: "c", Content: "beta alpha beta"},
		{Title: "Delta", Path: "d", Content: "nothing"},
	})

	results := svc.Search("beta alpha", domain.SearchOptions{})

	require.Len(t, results, 3)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].TotalScore, results[i].TotalScore)
	}
	for _, r := range results {
		assert.Positive(t, r.TotalScore)
		assert.Equal(t, r.TitleScore+r.ContentScore, r.TotalScore)
	}
}

func TestSearch_Limit(t *testing.T) {
	corpus := domain.Corpus{}
	for _, p := range []string{"a", "b", "c", "d"} {
		corpus = append(corpus, domain.Document{Title: "Doc " + p, Path: p})
	}
	svc := NewLoadedSearchService(corpus)

	assert.Len(t, svc.Search("doc", domain.SearchOptions{}), 4)
	assert.Len(t, svc.Search("doc", domain.SearchOptions{Limit: 2}), 2)
	assert.Len(t, svc.Search("doc", domain.SearchOptions{Limit: 10}), 4)
}

func TestSearch_SnippetsAttached(t *testing.T) {
	svc := NewLoadedSearchService(memoryCorpus())

	results := svc.Search("memory", domain.SearchOptions{})

	require.Len(t, results, 1)
	require.Len(t, results[0].Snippets, 2)
	for _, s := range results[0].Snippets {
		assert.Equal(t, "memory", s.Term)
		assert.True(t, strings.HasPrefix(s.Text, "..."))
		assert.True(t, strings.HasSuffix(s.Text, "..."))
	}
}

func TestSearch_MaxSnippetsOption(t *testing.T) {
	svc := NewLoadedSearchService(domain.Corpus{
		{Title: "Loop", Path: "l", Content: strings.Repeat("loop ", 10)},
	})

	results := svc.Search("loop", domain.SearchOptions{})
	require.Len(t, results, 1)
	assert.Len(t, results[0].Snippets, domain.DefaultMaxSnippets)

	results = svc.Search("loop", domain.SearchOptions{MaxSnippets: 5})
	require.Len(t, results, 1)
	assert.Len(t, results[0].Snippets, 5)
}

func TestSearch_WithSnippetContext(t *testing.T) {
	svc := NewLoadedSearchService(domain.Corpus{
		{Title: "Ctx", Path: "c", Content: "0123456789needle0123456789"},
	}, WithSnippetContext(3))

	results := svc.Search("needle", domain.SearchOptions{})

	require.Len(t, results, 1)
	require.Len(t, results[0].Snippets, 1)
	assert.Equal(t, "...789needle012...", results[0].Snippets[0].Text)
}

func TestSearch_UnloadedReturnsEmpty(t *testing.T) {
	svc := NewSearchService()

	results := svc.Search("memory", domain.SearchOptions{})

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

// --- Load tests ---

func TestLoad_Success(t *testing.T) {
	store := &mockCorpusStore{corpus: memoryCorpus()}
	svc := NewSearchService()

	err := svc.Load(context.Background(), store)

	require.NoError(t, err)
	assert.Equal(t, domain.EngineLoaded, svc.State())
	assert.Equal(t, 2, svc.Size())
	assert.NoError(t, svc.LoadErr())
	assert.Len(t, svc.Search("memory", domain.SearchOptions{}), 1)
}

func TestLoad_Failure(t *testing.T) {
	store := &mockCorpusStore{loadErr: errors.New("no such file")}
	svc := NewSearchService()

	err := svc.Load(context.Background(), store)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such file")
	assert.Equal(t, domain.EngineLoadFailed, svc.State())
	assert.Equal(t, err, svc.LoadErr())
	assert.Empty(t, svc.Search("memory", domain.SearchOptions{}))
}

func TestLoad_OnlyOnce(t *testing.T) {
	store := &mockCorpusStore{corpus: memoryCorpus()}
	svc := NewSearchService()

	require.NoError(t, svc.Load(context.Background(), store))
	err := svc.Load(context.Background(), store)

	assert.ErrorIs(t, err, domain.ErrAlreadyLoaded)
	assert.Equal(t, 1, store.loads)
	assert.Equal(t, domain.EngineLoaded, svc.State())
}

func TestLoad_NoRetryAfterFailure(t *testing.T) {
	store := &mockCorpusStore{loadErr: errors.New("corrupt")}
	svc := NewSearchService()

	require.Error(t, svc.Load(context.Background(), store))
	store.loadErr = nil
	store.corpus = memoryCorpus()

	err := svc.Load(context.Background(), store)

	assert.ErrorIs(t, err, domain.ErrAlreadyLoaded)
	assert.Equal(t, domain.EngineLoadFailed, svc.State())
}

func TestSearch_ConcurrentQueries(t *testing.T) {
	svc := NewLoadedSearchService(memoryCorpus())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results := svc.Search("memory safety", domain.SearchOptions{})
			assert.Len(t, results, 1)
		}()
	}
	wg.Wait()
}

// --- Snippet tests ---

func TestSnippets_EmptyContent(t *testing.T) {
	snippets := Snippets("", []string{"go"}, 3, 50)
	assert.NotNil(t, snippets)
	assert.Empty(t, snippets)
}

func TestSnippets_ContextClampedAtEdges(t *testing.T) {
	snippets := Snippets("Hello World", []string{"world"}, 3, 50)

	require.Len(t, snippets, 1)
	assert.Equal(t, "...Hello World...", snippets[0].Text)
	assert.Equal(t, "world", snippets[0].Term)
}

func TestSnippets_WindowLength(t *testing.T) {
	content := strings.Repeat("x", 100) + "term" + strings.Repeat("y", 100)

	snippets := Snippets(content, []string{"term"}, 3, 50)

	require.Len(t, snippets, 1)
	text := snippets[0].Text
	assert.Equal(t, 3+50+4+50+3, len(text))
	assert.Equal(t, "..."+strings.Repeat("x", 50)+"term"+strings.Repeat("y", 50)+"...", text)
}

func TestSnippets_PreservesCase(t *testing.T) {
	snippets := Snippets("The GoLang runtime", []string{"golang"}, 3, 4)

	require.Len(t, snippets, 1)
	assert.Equal(t, "...The GoLang run...", snippets[0].Text)
}

func TestSnippets_TermOrderWinsSlots(t *testing.T) {
	content := "beta alpha alpha alpha beta"

	snippets := Snippets(content, []string{"alpha", "beta"}, 3, 1)

	require.Len(t, snippets, 3)
	for _, s := range snippets {
		assert.Equal(t, "alpha", s.Term)
	}
}

func TestSnippets_SpillsToLaterTerms(t *testing.T) {
	content := "alpha and beta and beta"

	snippets := Snippets(content, []string{"alpha", "beta"}, 3, 2)

	require.Len(t, snippets, 3)
	assert.Equal(t, "alpha", snippets[0].Term)
	assert.Equal(t, "beta", snippets[1].Term)
	assert.Equal(t, "beta", snippets[2].Term)
}

func TestSnippets_NonASCII(t *testing.T) {
	snippets := Snippets("Überblick über Speicher", []string{"über"}, 3, 2)

	require.Len(t, snippets, 2)
	assert.Equal(t, "...Überbl...", snippets[0].Text)
	assert.Equal(t, "...k über S...", snippets[1].Text)
}
