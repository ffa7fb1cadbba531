// Package resultstable renders the ranked finisher list as a table with
// columns (rank, bib, name, time) and an empty-state message.
package resultstable

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"finishline/internal/race"
	"finishline/internal/ui/styles"
)

// Column widths. The name column absorbs whatever width remains.
const (
	rankWidth = 4
	bibWidth  = 6
	timeWidth = 8
	colGap    = 2
	minWidth  = rankWidth + bibWidth + timeWidth + 3*colGap + 8
	// defaultWidth leaves the name column enough room before the host
	// reports a real terminal size.
	defaultWidth = rankWidth + bibWidth + timeWidth + 3*colGap + 40
)

// Row is one rendered line of the results table.
type Row struct {
	Rank int
	Bib  string
	Name string
	Time string
}

// FromParticipants converts query results to table rows. Participants whose
// finish text never decoded show their raw text as entered.
func FromParticipants(participants []*race.Participant) []Row {
	rows := make([]Row, len(participants))
	for i, p := range participants {
		rows[i] = Row{
			Rank: p.Rank(),
			Bib:  p.Bib(),
			Name: p.Name(),
			Time: p.FinishTime(),
		}
	}
	return rows
}

// Model holds table rendering state.
type Model struct {
	rows         []Row
	width        int
	emptyMessage string
}

// New creates an empty table.
func New() Model {
	return Model{
		width:        defaultWidth,
		emptyMessage: "No participants registered",
	}
}

// SetRows updates the row data and returns a new Model (immutable pattern).
func (m Model) SetRows(rows []Row) Model {
	m.rows = rows
	return m
}

// SetWidth sets the available width and returns a new Model.
func (m Model) SetWidth(width int) Model {
	if width < minWidth {
		width = minWidth
	}
	m.width = width
	return m
}

// SetEmptyMessage overrides the message shown when there are no rows.
func (m Model) SetEmptyMessage(msg string) Model {
	m.emptyMessage = msg
	return m
}

// RowCount returns the number of rows in the table.
func (m Model) RowCount() int {
	return len(m.rows)
}

// View renders the table.
func (m Model) View() string {
	if len(m.rows) == 0 {
		return styles.EmptyState.Render(m.emptyMessage)
	}

	nameWidth := m.width - rankWidth - bibWidth - timeWidth - 3*colGap
	gap := strings.Repeat(" ", colGap)

	header := styles.TableHeader.Render(strings.Join([]string{
		styles.PadCell("#", rankWidth),
		styles.PadCell("BIB", bibWidth),
		styles.PadCell("NAME", nameWidth),
		styles.PadCell("TIME", timeWidth),
	}, gap))

	lines := make([]string, 0, len(m.rows)+1)
	lines = append(lines, header)
	for _, row := range m.rows {
		rank := styles.TableRankCell.Render(styles.PadCell(fmt.Sprintf("%d", row.Rank), rankWidth))
		cells := strings.Join([]string{
			rank,
			styles.PadCell(row.Bib, bibWidth),
			styles.PadCell(row.Name, nameWidth),
			styles.PadCell(row.Time, timeWidth),
		}, gap)
		lines = append(lines, cells)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
