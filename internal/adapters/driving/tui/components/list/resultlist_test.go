package list

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennyvt/kennyvt.github.io/internal/adapters/driving/tui/styles"
	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
)

func sampleResults() []domain.QueryResult {
	return []domain.QueryResult{
		{
			Document:     domain.Document{Title: "Memory Management", Path: "os/memory.html"},
			TitleScore:   150,
			ContentScore: 2,
			TotalScore:   152,
			Snippets: []domain.Snippet{
				{Text: "...virtual memory...", Term: "memory"},
				{Text: "...memory pages...", Term: "memory"},
			},
		},
		{
			Document:     domain.Document{Title: "Allocator", Path: "os/alloc.html"},
			ContentScore: 3,
			TotalScore:   3,
			Snippets:     []domain.Snippet{{Text: "...heap memory...", Term: "memory"}},
		},
		{
			Document:   domain.Document{Title: "Chapter 1", Path: "ch1/"},
			TitleScore: 50,
			TotalScore: 50,
			Snippets:   []domain.Snippet{},
		},
	}
}

func TestNewResultList(t *testing.T) {
	list := NewResultList(styles.DefaultStyles())

	require.NotNil(t, list)
	assert.Equal(t, 0, list.Selected())
	assert.True(t, list.IsEmpty())
	assert.Nil(t, list.SelectedResult())
}

func TestNewResultList_NilStyles(t *testing.T) {
	list := NewResultList(nil)

	require.NotNil(t, list)
	assert.NotNil(t, list.styles)
	assert.Nil(t, list.Init())
}

func TestResultList_SetResults(t *testing.T) {
	list := NewResultList(nil)
	results := sampleResults()
	list.SetSelected(2)

	list.SetResults(results, []string{"memory"})

	assert.Equal(t, 3, list.Count())
	assert.False(t, list.IsEmpty())
	assert.Equal(t, 0, list.Selected())
	assert.Equal(t, results, list.Results())
}

func TestResultList_Navigation(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(sampleResults(), nil)

	list.MoveUp()
	assert.Equal(t, 0, list.Selected(), "stays at top")

	list.MoveDown()
	list.MoveDown()
	list.MoveDown()
	assert.Equal(t, 2, list.Selected(), "stays at bottom")
	assert.Equal(t, "Chapter 1", list.SelectedResult().Title)

	list.SetSelected(99)
	assert.Equal(t, 2, list.Selected(), "out of range ignored")
}

func TestResultList_UpdateKeys(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(sampleResults(), nil)

	list, cmd := list.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, list.Selected())

	list, _ = list.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, list.Expanded())

	list, _ = list.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, list.Selected())
	assert.False(t, list.Expanded(), "moving collapses snippets")
}

func TestResultList_ViewEmpty(t *testing.T) {
	list := NewResultList(nil)

	assert.Contains(t, list.View(), "No results")
}

func TestResultList_ViewShowsScoresAndPaths(t *testing.T) {
	list := NewResultList(nil)
	list.SetDimensions(120, 40)
	list.SetResults(sampleResults(), []string{"memory"})

	view := list.View()

	assert.Contains(t, view, "Results (3)")
	assert.Contains(t, view, "[1] Memory Management")
	assert.Contains(t, view, "Relevance: 15% (title match)")
	assert.Contains(t, view, "os/memory.html")
	assert.Contains(t, view, "Relevance: 0%")
	assert.Contains(t, view, "...virtual memory...")
	assert.NotContains(t, view, "...memory pages...", "collapsed shows first snippet only")
}

func TestResultList_ViewExpanded(t *testing.T) {
	list := NewResultList(nil)
	list.SetDimensions(120, 40)
	list.SetResults(sampleResults(), []string{"memory"})
	list.ToggleExpanded()

	view := list.View()

	assert.Contains(t, view, "...virtual memory...")
	assert.Contains(t, view, "...memory pages...")
}

func TestResultList_ViewScrollsToSelection(t *testing.T) {
	list := NewResultList(nil)
	list.SetDimensions(120, 7) // room for one result
	list.SetResults(sampleResults(), nil)
	list.SetSelected(2)

	view := list.View()

	assert.Contains(t, view, "Chapter 1")
	assert.NotContains(t, view, "Allocator")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate(strings.Repeat("abcdefg", 3), 10))
	assert.Equal(t, "ééé...", truncate("éééééééé", 6))
}
