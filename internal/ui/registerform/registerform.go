// Package registerform provides the participant registration form.
//
// The form owns presentation-side validation: the registry is only called
// with syntactically valid field values (non-empty bib matching a positive
// integer, name restricted to letters with single interior spaces or
// hyphens, finish time matching HH:MM:SS). Bib uniqueness stays with the
// registry itself.
package registerform

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"finishline/internal/keys"
	"finishline/internal/ui/styles"
)

type field int

const (
	fieldBib field = iota
	fieldName
	fieldTime
	fieldCount
)

var fieldLabels = [fieldCount]string{"Bib number", "Name", "Finish time"}
var fieldHints = [fieldCount]string{"positive integer", "letters, spaces, hyphens", "HH:MM:SS"}

var (
	bibPattern  = regexp.MustCompile(`^[1-9][0-9]*$`)
	namePattern = regexp.MustCompile(`^\p{L}+(?:[ -]\p{L}+)*$`)
	timePattern = regexp.MustCompile(`^[0-9]{2}:[0-9]{2}:[0-9]{2}$`)
)

// SubmitMsg carries a validated registration request to the host model.
type SubmitMsg struct {
	Bib  string
	Name string
	Time string
}

// Model holds the registration form state.
type Model struct {
	inputs [fieldCount]textinput.Model
	errs   [fieldCount]string
	focus  field
	keymap keys.KeyMap
}

// New creates the form with the bib field focused.
func New() Model {
	m := Model{keymap: keys.DefaultKeyMap()}

	bib := textinput.New()
	bib.Placeholder = "42"
	bib.Prompt = ""
	bib.CharLimit = 6
	bib.Width = 30

	name := textinput.New()
	name.Placeholder = "Ola Nordmann"
	name.Prompt = ""
	name.CharLimit = 60
	name.Width = 30

	finish := textinput.New()
	finish.Placeholder = "01:02:03"
	finish.Prompt = ""
	finish.CharLimit = 8
	finish.Width = 30

	m.inputs[fieldBib] = bib
	m.inputs[fieldName] = name
	m.inputs[fieldTime] = finish
	return m
}

// Focus focuses the form on its current field.
func (m Model) Focus() (Model, tea.Cmd) {
	cmd := m.inputs[m.focus].Focus()
	return m, cmd
}

// Blur removes focus from every field.
func (m Model) Blur() Model {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m
}

// Focused reports whether any field has focus.
func (m Model) Focused() bool {
	return m.inputs[m.focus].Focused()
}

// Update handles key input for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keymap.NextField):
			return m.moveFocus(1)
		case key.Matches(keyMsg, m.keymap.PrevField):
			return m.moveFocus(-1)
		case key.Matches(keyMsg, m.keymap.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	// Editing a field clears its stale validation message.
	if _, ok := msg.(tea.KeyMsg); ok {
		m.errs[m.focus] = ""
	}
	return m, cmd
}

func (m Model) moveFocus(delta int) (Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = field((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))
	cmd := m.inputs[m.focus].Focus()
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	bib := strings.TrimSpace(m.inputs[fieldBib].Value())
	name := strings.TrimSpace(m.inputs[fieldName].Value())
	finish := strings.TrimSpace(m.inputs[fieldTime].Value())

	m.errs[fieldBib] = validateBib(bib)
	m.errs[fieldName] = validateName(name)
	m.errs[fieldTime] = validateTime(finish)

	for f := fieldBib; f < fieldCount; f++ {
		if m.errs[f] != "" {
			// Move focus to the first invalid field.
			m.inputs[m.focus].Blur()
			m.focus = f
			cmd := m.inputs[m.focus].Focus()
			return m, cmd
		}
	}

	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.inputs[m.focus].Blur()
	m.focus = fieldBib
	focusCmd := m.inputs[fieldBib].Focus()

	return m, tea.Batch(focusCmd, func() tea.Msg {
		return SubmitMsg{Bib: bib, Name: name, Time: finish}
	})
}

func validateBib(bib string) string {
	switch {
	case bib == "":
		return "bib number is required"
	case !bibPattern.MatchString(bib):
		return "bib number must be a positive integer"
	}
	return ""
}

func validateName(name string) string {
	switch {
	case name == "":
		return "name is required"
	case !namePattern.MatchString(name):
		return "name may only contain letters, single spaces and hyphens"
	}
	return ""
}

func validateTime(finish string) string {
	switch {
	case finish == "":
		return "finish time is required"
	case !timePattern.MatchString(finish):
		return "finish time must be HH:MM:SS"
	}
	return ""
}

// View renders labels, inputs and inline validation messages.
func (m Model) View() string {
	sections := make([]string, 0, int(fieldCount))
	for f := fieldBib; f < fieldCount; f++ {
		label := styles.SectionLabel.Render(fieldLabels[f]) + " " + styles.Hint.Render("("+fieldHints[f]+")")
		lines := []string{label, m.inputs[f].View()}
		if m.errs[f] != "" {
			lines = append(lines, styles.FieldError.Render(m.errs[f]))
		}
		sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(sections, "\n\n"))
}
