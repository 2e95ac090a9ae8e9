// Package search provides the search-as-you-type view for the TUI.
package search

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kennyvt/kennyvt.github.io/internal/adapters/driving/tui/components/input"
	"github.com/kennyvt/kennyvt.github.io/internal/adapters/driving/tui/components/list"
	"github.com/kennyvt/kennyvt.github.io/internal/adapters/driving/tui/components/status"
	"github.com/kennyvt/kennyvt.github.io/internal/adapters/driving/tui/keymap"
	"github.com/kennyvt/kennyvt.github.io/internal/adapters/driving/tui/messages"
	"github.com/kennyvt/kennyvt.github.io/internal/adapters/driving/tui/styles"
	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driving"
)

// View is the query input with the ranked results beneath it. Every edit
// that leaves at least two characters runs a new search.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	list      *list.ResultList
	statusbar *status.Bar

	searchService driving.SearchService
	opts          domain.SearchOptions

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.SearchService,
	opts domain.SearchOptions,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:        s,
		keymap:        km,
		input:         input.NewQueryInput(s),
		list:          list.NewResultList(s),
		statusbar:     status.NewBar(s, km),
		searchService: searchService,
		opts:          opts,
		width:         80,
		height:        24,
	}
	v.checkEngine()
	return v
}

// checkEngine surfaces an engine that cannot answer queries.
func (v *View) checkEngine() {
	if v.searchService == nil {
		v.setError(ErrNoSearchService)
		return
	}
	v.statusbar.SetCorpusSize(v.searchService.Size())
	if err := v.searchService.LoadErr(); err != nil {
		v.setError(fmt.Errorf("%w: %w", ErrCorpusUnavailable, err))
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input. Navigation keys go to the list;
// everything else edits the query.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	switch {
	case keymap.Matches(key, v.keymap.Quit):
		return v, tea.Quit
	case keymap.Matches(key, v.keymap.Up):
		v.list.MoveUp()
		return v, nil
	case keymap.Matches(key, v.keymap.Down):
		v.list.MoveDown()
		return v, nil
	case keymap.Matches(key, v.keymap.Expand):
		v.list.ToggleExpanded()
		return v, nil
	case keymap.Matches(key, v.keymap.Clear):
		v.input.Reset()
		return v, v.queryChanged("")
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)

	if v.input.Value() == before {
		return v, cmd
	}
	return v, tea.Batch(cmd, v.queryChanged(v.input.Value()))
}

// queryChanged clears results for short queries and otherwise starts a
// search for query.
func (v *View) queryChanged(query string) tea.Cmd {
	if !v.input.Searchable() {
		v.list.SetResults(nil, nil)
		if v.err == nil {
			v.statusbar.Clear()
		}
		return nil
	}
	return v.performSearch(query)
}

// performSearch runs the query off the update loop.
func (v *View) performSearch(query string) tea.Cmd {
	svc := v.searchService
	opts := v.opts
	return func() tea.Msg {
		if svc == nil {
			return messages.ErrorOccurred{Err: ErrNoSearchService}
		}
		return messages.SearchCompleted{
			Query:   query,
			Terms:   domain.Tokenize(query),
			Results: svc.Search(query, opts),
		}
	}
}

// handleSearchCompleted shows results unless the query has moved on.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if !msg.For(v.input.Value()) {
		return
	}

	v.list.SetResults(msg.Results, msg.Terms)
	if v.err != nil {
		return
	}
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(msg.Results))
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	// The input renders its own trailing hint line.
	sections = append(sections, v.styles.Title.Render("docsearch"), "", v.input.View())

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)), "")
	}

	sections = append(sections, v.list.View(), "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-8) // header, input and status
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the search query and returns the command that runs it.
func (v *View) SetQuery(query string) tea.Cmd {
	v.input.SetValue(query)
	return v.queryChanged(query)
}

// Results returns the current search results.
func (v *View) Results() []domain.QueryResult {
	return v.list.Results()
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedResult returns the currently selected result.
func (v *View) SelectedResult() *domain.QueryResult {
	return v.list.SelectedResult()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
