// Package input provides the query field of the search view.
package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kennyvt/kennyvt.github.io/internal/adapters/driving/tui/styles"
	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
)

const (
	defaultWidth = 50
	// labelWidth covers the "Query: " label and the field border.
	labelWidth = 12
	minWidth   = 20
	maxQuery   = 256
)

// QueryInput is a single-line query field. Below it, it names the query
// words that are too short to take part in ranking.
type QueryInput struct {
	field  textinput.Model
	styles *styles.Styles
	width  int
}

// NewQueryInput creates a focused query field.
func NewQueryInput(s *styles.Styles) *QueryInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	field := textinput.New()
	field.Prompt = "> "
	field.Placeholder = placeholder()
	field.CharLimit = maxQuery
	field.Width = defaultWidth
	field.Focus()

	return &QueryInput{field: field, styles: s, width: defaultWidth}
}

func placeholder() string {
	return fmt.Sprintf("words of %d+ letters, matched in titles and text", domain.MinTokenLength)
}

// Init starts the cursor blinking.
func (q *QueryInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the field.
func (q *QueryInput) Update(msg tea.Msg) (*QueryInput, tea.Cmd) {
	var cmd tea.Cmd
	q.field, cmd = q.field.Update(msg)
	return q, cmd
}

// View renders the labelled field over a second line that lists the
// ignored words, blank when there are none.
func (q *QueryInput) View() string {
	//nolint:misspell // lipgloss.Center is the library constant
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		q.styles.Title.Render("Query: "),
		q.styles.InputField.Render(q.field.View()))

	hint := ""
	if ignored := q.Ignored(); len(ignored) > 0 {
		hint = q.styles.Muted.Render("ignored: " + strings.Join(ignored, ", "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, row, hint)
}

// Value returns the raw query text.
func (q *QueryInput) Value() string {
	return q.field.Value()
}

// SetValue replaces the query text.
func (q *QueryInput) SetValue(value string) {
	q.field.SetValue(value)
}

// Searchable reports whether the trimmed query is long enough to run.
func (q *QueryInput) Searchable() bool {
	return utf8.RuneCountInString(strings.TrimSpace(q.Value())) >= domain.MinTokenLength
}

// Ignored returns the words dropped for being shorter than
// domain.MinTokenLength, in query order.
func (q *QueryInput) Ignored() []string {
	var short []string
	for _, w := range strings.Fields(q.Value()) {
		if utf8.RuneCountInString(w) < domain.MinTokenLength {
			short = append(short, w)
		}
	}
	return short
}

// SetWidth sizes the field to fit width, leaving room for the label.
func (q *QueryInput) SetWidth(width int) {
	q.width = width
	q.field.Width = max(width-labelWidth, minWidth)
}

// Width returns the width last set.
func (q *QueryInput) Width() int {
	return q.width
}

// Reset clears the query.
func (q *QueryInput) Reset() {
	q.field.Reset()
}
