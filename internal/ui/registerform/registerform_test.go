package registerform

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func pressTab(m Model) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	return m
}

// pressEnter submits the form and returns the produced message, if any.
func pressEnter(m Model) (Model, tea.Msg) {
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		return m, nil
	}
	return m, collectMsg(cmd())
}

// collectMsg unwraps batched commands down to the first SubmitMsg.
func collectMsg(msg tea.Msg) tea.Msg {
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, cmd := range batch {
			if cmd == nil {
				continue
			}
			if found := collectMsg(cmd()); found != nil {
				return found
			}
		}
		return nil
	}
	if submit, ok := msg.(SubmitMsg); ok {
		return submit
	}
	return nil
}

func fillValidForm(t *testing.T) Model {
	t.Helper()
	m, _ := New().Focus()
	m = typeString(m, "5")
	m = pressTab(m)
	m = typeString(m, "ola nordmann")
	m = pressTab(m)
	m = typeString(m, "01:02:03")
	return m
}

func TestForm_SubmitValid(t *testing.T) {
	m := fillValidForm(t)

	m, msg := pressEnter(m)

	submit, ok := msg.(SubmitMsg)
	require.True(t, ok, "expected a SubmitMsg, got %T", msg)
	require.Equal(t, SubmitMsg{Bib: "5", Name: "ola nordmann", Time: "01:02:03"}, submit)

	// Fields reset for the next registration.
	view := ansi.Strip(m.View())
	require.NotContains(t, view, "ola nordmann")
}

func TestForm_SubmitEmptyShowsErrors(t *testing.T) {
	m, _ := New().Focus()

	m, msg := pressEnter(m)

	require.Nil(t, msg)
	view := ansi.Strip(m.View())
	require.Contains(t, view, "bib number is required")
}

func TestForm_InvalidBib(t *testing.T) {
	m, _ := New().Focus()
	m = typeString(m, "07")
	m = pressTab(m)
	m = typeString(m, "ola nordmann")
	m = pressTab(m)
	m = typeString(m, "01:02:03")

	m, msg := pressEnter(m)

	require.Nil(t, msg, "leading zero bib must not submit")
	require.Contains(t, ansi.Strip(m.View()), "bib number must be a positive integer")
}

func TestForm_InvalidName(t *testing.T) {
	m, _ := New().Focus()
	m = typeString(m, "5")
	m = pressTab(m)
	m = typeString(m, "ola 2nordmann")
	m = pressTab(m)
	m = typeString(m, "01:02:03")

	m, msg := pressEnter(m)

	require.Nil(t, msg)
	require.Contains(t, ansi.Strip(m.View()), "letters, single spaces and hyphens")
}

func TestForm_InvalidTime(t *testing.T) {
	m, _ := New().Focus()
	m = typeString(m, "5")
	m = pressTab(m)
	m = typeString(m, "ola nordmann")
	m = pressTab(m)
	m = typeString(m, "1:2:3")

	m, msg := pressEnter(m)

	require.Nil(t, msg)
	require.Contains(t, ansi.Strip(m.View()), "finish time must be HH:MM:SS")
}

func TestForm_TypingClearsError(t *testing.T) {
	m, _ := New().Focus()
	m, _ = pressEnter(m)
	require.Contains(t, ansi.Strip(m.View()), "bib number is required")

	m = typeString(m, "5")
	require.NotContains(t, ansi.Strip(m.View()), "bib number is required")
}

func TestForm_FocusCycling(t *testing.T) {
	m, _ := New().Focus()
	require.True(t, m.Focused())

	// Tab wraps around all three fields.
	m = pressTab(m)
	m = pressTab(m)
	m = pressTab(m)
	m = typeString(m, "9")

	m = pressTab(m)
	m = typeString(m, "kari")
	m = pressTab(m)
	m = typeString(m, "00:50:00")

	m, msg := pressEnter(m)
	submit, ok := msg.(SubmitMsg)
	require.True(t, ok)
	require.Equal(t, "9", submit.Bib)
	require.Equal(t, "kari", submit.Name)
}

func TestForm_HyphenatedNameAccepted(t *testing.T) {
	m, _ := New().Focus()
	m = typeString(m, "8")
	m = pressTab(m)
	m = typeString(m, "anne-lise holm")
	m = pressTab(m)
	m = typeString(m, "01:10:00")

	_, msg := pressEnter(m)
	submit, ok := msg.(SubmitMsg)
	require.True(t, ok)
	require.Equal(t, "anne-lise holm", submit.Name)
}

func TestValidators(t *testing.T) {
	require.Empty(t, validateBib("5"))
	require.Empty(t, validateBib("123"))
	require.NotEmpty(t, validateBib(""))
	require.NotEmpty(t, validateBib("0"))
	require.NotEmpty(t, validateBib("-1"))
	require.NotEmpty(t, validateBib("5a"))

	require.Empty(t, validateName("Ola Nordmann"))
	require.Empty(t, validateName("anne-lise holm"))
	require.Empty(t, validateName("Åse Løkken"))
	require.NotEmpty(t, validateName(""))
	require.NotEmpty(t, validateName("ola  nordmann"), "double space rejected")
	require.NotEmpty(t, validateName("ola-"), "trailing hyphen rejected")
	require.NotEmpty(t, validateName("ola2"))

	require.Empty(t, validateTime("01:02:03"))
	require.NotEmpty(t, validateTime(""))
	require.NotEmpty(t, validateTime("1:2:3"))
	require.NotEmpty(t, validateTime("01:02"))
	require.NotEmpty(t, validateTime("aa:bb:cc"))
}
