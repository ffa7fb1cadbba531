package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"finishline/internal/config"
	"finishline/internal/querycache"
	"finishline/internal/race"
	"finishline/internal/testutil"
	"finishline/internal/ui/querybar"
	"finishline/internal/ui/registerform"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	reg := race.NewRegistry(race.NewNameFormatter(language.Und))
	store := querycache.New(reg, querycache.DefaultExpiration, querycache.DefaultCleanupInterval)
	return New(store, config.Defaults())
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func intPtr(n int) *int { return &n }

func TestApp_RegistrationAppearsInTable(t *testing.T) {
	m := newTestModel(t)

	m = update(m, registerform.SubmitMsg{Bib: "5", Name: "ola nordmann", Time: "01:02:03"})

	view := ansi.Strip(m.View())
	require.Contains(t, view, "Ola Nordmann")
	require.Contains(t, view, "01:02:03")
	require.Contains(t, view, "Registered Ola Nordmann (bib 5) at 01:02:03")
}

func TestApp_DuplicateBibShowsError(t *testing.T) {
	m := newTestModel(t)

	m = update(m, registerform.SubmitMsg{Bib: "5", Name: "ola nordmann", Time: "01:02:03"})
	m = update(m, registerform.SubmitMsg{Bib: "5", Name: "kari nordmann", Time: "00:50:00"})

	require.True(t, m.statusIsErr)
	require.Contains(t, ansi.Strip(m.View()), `bib "5" is already registered`)
	require.Equal(t, 1, m.store.Len())
}

func TestApp_LateFasterFinisherReranksTable(t *testing.T) {
	m := newTestModel(t)

	m = update(m, registerform.SubmitMsg{Bib: "5", Name: "ola nordmann", Time: "01:02:03"})
	m = update(m, registerform.SubmitMsg{Bib: "6", Name: "kari nordmann", Time: "00:50:00"})

	rows := m.table.RowCount()
	require.Equal(t, 2, rows)

	// Kari is faster and must now hold rank 1.
	got := m.store.Query(nil, nil)
	require.Equal(t, "6", got[0].Bib())
	require.Equal(t, 1, got[0].Rank())
	require.Equal(t, 2, got[1].Rank())
}

func TestApp_QueryFiltersTable(t *testing.T) {
	m := newTestModel(t)
	testutil.NewBuilder(t, m.store).
		WithParticipant("5", "ola nordmann", "01:02:03").
		WithParticipant("6", "kari nordmann", "00:50:00").
		Build()

	m = update(m, querybar.QueryMsg{Upper: intPtr(3000)})

	view := ansi.Strip(m.View())
	require.Contains(t, view, "Kari Nordmann")
	require.NotContains(t, view, "Ola Nordmann")
	require.Contains(t, view, "1 of 2 in window")
}

func TestApp_EmptyWindowShowsEmptyState(t *testing.T) {
	m := newTestModel(t)
	testutil.NewBuilder(t, m.store).
		WithParticipant("5", "ola nordmann", "01:02:03").
		Build()

	m = update(m, querybar.QueryMsg{Lower: intPtr(1), Upper: intPtr(2)})

	require.Contains(t, ansi.Strip(m.View()), "No finishers in this time window")
}

func TestApp_RegistrationRespectsActiveWindow(t *testing.T) {
	m := newTestModel(t)

	m = update(m, querybar.QueryMsg{Upper: intPtr(3000)})
	m = update(m, registerform.SubmitMsg{Bib: "5", Name: "ola nordmann", Time: "01:02:03"})

	// Outside the window: registered but not shown.
	require.Equal(t, 1, m.store.Len())
	require.NotContains(t, ansi.Strip(m.View()), "Ola Nordmann")
}

func TestApp_TogglePaneAndClearStatus(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, FocusForm, m.focus)

	m = update(m, tea.KeyMsg{Type: tea.KeyCtrlF})
	require.Equal(t, FocusQuery, m.focus)
	require.True(t, m.query.Focused())
	require.False(t, m.form.Focused())

	m = update(m, tea.KeyMsg{Type: tea.KeyCtrlF})
	require.Equal(t, FocusForm, m.focus)

	m = update(m, registerform.SubmitMsg{Bib: "5", Name: "ola nordmann", Time: "01:02:03"})
	require.NotEmpty(t, m.status)
	m = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Empty(t, m.status)
}

func TestApp_QuitKey(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}
