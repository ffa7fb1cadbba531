// Package querybar provides the time-window filter inputs for the results
// table. Bounds are optional; an empty input means unbounded on that side.
// The bar decodes and validates bounds before anything reaches the registry,
// including rejecting a window whose upper bound is before its lower bound.
package querybar

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"finishline/internal/keys"
	"finishline/internal/race"
	"finishline/internal/ui/styles"
)

var timePattern = regexp.MustCompile(`^[0-9]{2}:[0-9]{2}:[0-9]{2}$`)

// QueryMsg carries decoded bounds to the host model. A nil bound is
// unbounded on that side.
type QueryMsg struct {
	Lower *int
	Upper *int
}

// Model holds the query bar state.
type Model struct {
	from    textinput.Model
	to      textinput.Model
	focusTo bool
	err     string
	keymap  keys.KeyMap
}

// New creates the query bar with both bounds empty.
func New() Model {
	from := textinput.New()
	from.Placeholder = "00:00:00"
	from.Prompt = ""
	from.CharLimit = 8
	from.Width = 10

	to := textinput.New()
	to.Placeholder = "99:59:59"
	to.Prompt = ""
	to.CharLimit = 8
	to.Width = 10

	return Model{from: from, to: to, keymap: keys.DefaultKeyMap()}
}

// Focus focuses the bar on its current input.
func (m Model) Focus() (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focusTo {
		cmd = m.to.Focus()
	} else {
		cmd = m.from.Focus()
	}
	return m, cmd
}

// Blur removes focus from both inputs.
func (m Model) Blur() Model {
	m.from.Blur()
	m.to.Blur()
	return m
}

// Focused reports whether either input has focus.
func (m Model) Focused() bool {
	return m.from.Focused() || m.to.Focused()
}

// Update handles key input for the query bar.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keymap.NextField), key.Matches(keyMsg, m.keymap.PrevField):
			m.from.Blur()
			m.to.Blur()
			m.focusTo = !m.focusTo
			return m.Focus()
		case key.Matches(keyMsg, m.keymap.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focusTo {
		m.to, cmd = m.to.Update(msg)
	} else {
		m.from, cmd = m.from.Update(msg)
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		m.err = ""
	}
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	lower, errMsg := parseBound(m.from.Value(), "lower")
	if errMsg != "" {
		m.err = errMsg
		return m, nil
	}
	upper, errMsg := parseBound(m.to.Value(), "upper")
	if errMsg != "" {
		m.err = errMsg
		return m, nil
	}
	if lower != nil && upper != nil && *upper < *lower {
		m.err = "upper bound is before lower bound"
		return m, nil
	}

	m.err = ""
	return m, func() tea.Msg {
		return QueryMsg{Lower: lower, Upper: upper}
	}
}

// parseBound decodes an optional bound. Empty text means no bound.
func parseBound(text, side string) (*int, string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ""
	}
	if !timePattern.MatchString(text) {
		return nil, side + " bound must be HH:MM:SS"
	}
	seconds, ok := race.DecodeClock(text)
	if !ok {
		return nil, side + " bound must be HH:MM:SS"
	}
	return &seconds, ""
}

// Err returns the current validation message, if any.
func (m Model) Err() string {
	return m.err
}

// View renders the two bound inputs side by side.
func (m Model) View() string {
	label := styles.SectionLabel.Render("Time window") + " " + styles.Hint.Render("(blank = unbounded)")
	inputs := lipgloss.JoinHorizontal(lipgloss.Top,
		m.from.View(),
		styles.Hint.Render(" to "),
		m.to.View(),
	)
	lines := []string{label, inputs}
	if m.err != "" {
		lines = append(lines, styles.FieldError.Render(m.err))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
