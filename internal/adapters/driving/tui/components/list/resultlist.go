// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kennyvt/kennyvt.github.io/internal/adapters/driving/tui/styles"
	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
)

// ResultList displays ranked results in a navigable list.
type ResultList struct {
	results  []domain.QueryResult
	terms    []string
	selected int
	expanded bool
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		case tea.KeyTab:
			r.ToggleExpanded()
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(r.results)+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.results))), "")

	// title, path and one snippet per result
	visibleCount := max((r.height-4)/3, 1)

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := min(start+visibleCount, len(r.results))

	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(i, &r.results[i]))
	}

	return strings.Join(lines, "\n")
}

// renderResult formats one result as a title line, a path line and its
// snippets. Only the selected result shows every snippet when expanded.
func (r *ResultList) renderResult(index int, result *domain.QueryResult) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := result.Title
	if title == "" {
		title = "(Untitled)"
	}
	maxTitleLen := max(r.width-40, 10)
	title = truncate(title, maxTitleLen)

	badge := fmt.Sprintf("Relevance: %d%%", result.Relevance())
	if result.TitleMatch() {
		badge += " (title match)"
	}

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s[%d] %s", indicator, index+1, title)) +
			"  " + r.styles.Relevance.Render(badge)
	} else {
		titleLine = r.styles.Normal.Render(fmt.Sprintf("%s[%d] ", indicator, index+1)) +
			domain.HighlightTerms(title, r.terms, r.styles.MarkMatch) +
			"  " + r.styles.Muted.Render(badge)
	}

	lines := []string{titleLine, r.styles.Muted.Render("    " + result.Path)}

	snippets := result.Snippets
	if !(r.expanded && index == r.selected) && len(snippets) > 1 {
		snippets = snippets[:1]
	}
	maxSnippetLen := max(r.width-6, 20)
	for _, sn := range snippets {
		text := truncate(sn.Text, maxSnippetLen)
		lines = append(lines, "    "+domain.HighlightTerms(text, r.terms, r.styles.MarkMatch))
	}

	return strings.Join(lines, "\n")
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// SetResults replaces the listed results and the terms to highlight.
func (r *ResultList) SetResults(results []domain.QueryResult, terms []string) {
	r.results = results
	r.terms = terms
	r.selected = 0
	r.expanded = false
}

// Results returns the current results.
func (r *ResultList) Results() []domain.QueryResult {
	return r.results
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *ResultList) SelectedResult() *domain.QueryResult {
	if len(r.results) == 0 || r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
		r.expanded = false
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
		r.expanded = false
	}
}

// ToggleExpanded shows or hides the remaining snippets of the selection.
func (r *ResultList) ToggleExpanded() {
	r.expanded = !r.expanded
}

// Expanded reports whether the selection shows every snippet.
func (r *ResultList) Expanded() bool {
	return r.expanded
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}
