// Package app implements the root Bubble Tea model wiring the registration
// form, the time-window query bar and the results table around a single
// participant registry.
package app

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"finishline/internal/config"
	"finishline/internal/keys"
	"finishline/internal/log"
	"finishline/internal/querycache"
	"finishline/internal/race"
	"finishline/internal/ui/querybar"
	"finishline/internal/ui/registerform"
	"finishline/internal/ui/resultstable"
	"finishline/internal/ui/styles"
)

// FocusPane represents which pane has keyboard focus.
type FocusPane int

const (
	FocusForm FocusPane = iota
	FocusQuery
)

// Model is the root application model.
type Model struct {
	store  *querycache.Store
	form   registerform.Model
	query  querybar.Model
	table  resultstable.Model
	keymap keys.KeyMap

	focus FocusPane

	// Active query bounds, reapplied after every registration.
	lower *int
	upper *int

	status      string
	statusIsErr bool

	showStatusBar bool
	width         int
	height        int
}

// New creates the application model around the given store.
func New(store *querycache.Store, cfg config.Config) Model {
	m := Model{
		store:         store,
		form:          registerform.New(),
		query:         querybar.New(),
		table:         resultstable.New(),
		keymap:        keys.DefaultKeyMap(),
		showStatusBar: cfg.UI.ShowStatusBar,
	}
	m.form, _ = m.form.Focus()
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.table.SetWidth(msg.Width - 6)
		return m, nil

	case registerform.SubmitMsg:
		return m.handleSubmit(msg)

	case querybar.QueryMsg:
		m.lower = msg.Lower
		m.upper = msg.Upper
		m.refresh()
		m.status = fmt.Sprintf("%d of %d in window", m.table.RowCount(), m.store.Len())
		m.statusIsErr = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.ToggleQuery):
			return m.togglePane()
		case key.Matches(msg, m.keymap.ClearStatus):
			m.status = ""
			m.statusIsErr = false
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case FocusForm:
		m.form, cmd = m.form.Update(msg)
	case FocusQuery:
		m.query, cmd = m.query.Update(msg)
	}
	return m, cmd
}

func (m Model) togglePane() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == FocusForm {
		m.form = m.form.Blur()
		m.focus = FocusQuery
		m.query, cmd = m.query.Focus()
	} else {
		m.query = m.query.Blur()
		m.focus = FocusForm
		m.form, cmd = m.form.Focus()
	}
	return m, cmd
}

func (m Model) handleSubmit(msg registerform.SubmitMsg) (tea.Model, tea.Cmd) {
	p, err := m.store.Register(msg.Bib, msg.Name, msg.Time)
	if err != nil {
		var dup *race.DuplicateBibError
		if errors.As(err, &dup) {
			m.status = err.Error()
			m.statusIsErr = true
			log.Info(log.CatRegistry, "duplicate bib rejected", "bib", dup.Bib)
			return m, nil
		}
		m.status = err.Error()
		m.statusIsErr = true
		log.ErrorErr(log.CatRegistry, "registration failed", err, "bib", msg.Bib)
		return m, nil
	}

	m.status = fmt.Sprintf("Registered %s (bib %s) at %s", p.Name(), p.Bib(), p.FinishTime())
	m.statusIsErr = false
	log.Info(log.CatRegistry, "participant registered",
		"bib", p.Bib(), "rank", p.Rank(), "time", p.FinishTime())

	// One insert can change every rank, so the whole table is rebuilt.
	m.refresh()
	return m, nil
}

// refresh re-runs the active query and rebuilds the table rows.
func (m *Model) refresh() {
	rows := resultstable.FromParticipants(m.store.Query(m.lower, m.upper))
	empty := "No participants registered"
	if m.lower != nil || m.upper != nil {
		empty = "No finishers in this time window"
	}
	m.table = m.table.SetEmptyMessage(empty).SetRows(rows)
}

// View implements tea.Model.
func (m Model) View() string {
	formBorder := styles.PaneBorder
	queryBorder := styles.PaneBorder
	if m.focus == FocusForm {
		formBorder = styles.FocusedBorder
	} else {
		queryBorder = styles.FocusedBorder
	}

	sections := []string{
		styles.Title.Render("finishline"),
		formBorder.Padding(0, 1).Render(m.form.View()),
		queryBorder.Padding(0, 1).Render(m.query.View()),
		styles.PaneBorder.Padding(0, 1).Render(m.table.View()),
	}

	if m.showStatusBar {
		if m.status != "" {
			style := styles.StatusInfo
			if m.statusIsErr {
				style = styles.StatusError
			}
			sections = append(sections, style.Render(m.status))
		}
		sections = append(sections, styles.HelpBar.Render(
			"tab next field · enter submit · ctrl+f time filter · esc clear message · ctrl+c quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
