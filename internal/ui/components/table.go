package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/truncate"
)

// MaxCellWidth is where long cell text is cut with an ellipsis.
const MaxCellWidth = 40

// Table renders rows under headers with a rounded border.
type Table struct {
	Headers []string
	Rows    [][]string
	// MaxCell truncates longer cells; zero disables truncation.
	MaxCell int
	// Cell styles a body cell; nil uses the default.
	Cell func(row, col int) lipgloss.Style
}

var (
	tableHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EB6620")).Padding(0, 1)
	tableCell   = lipgloss.NewStyle().Padding(0, 1)
	tableFirst  = tableCell.Bold(true)
)

// Truncate cuts s to n cells, ending in an ellipsis.
func Truncate(s string, n int) string {
	if n <= 0 || lipgloss.Width(s) <= n {
		return s
	}
	return truncate.StringWithTail(s, uint(n), "...")
}

// Render draws the table.
func (t Table) Render() string {
	rows := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		row := make([]string, len(r))
		for j, c := range r {
			row[j] = Truncate(c, t.MaxCell)
		}
		rows[i] = row
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedText).
		Headers(t.Headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeader
			}
			if t.Cell != nil {
				return t.Cell(row, col)
			}
			if col == 0 {
				return tableFirst
			}
			return tableCell
		}).
		Render()
}
