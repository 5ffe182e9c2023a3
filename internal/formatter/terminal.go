package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/yildizm/go-termfmt"

	"github.com/SnookieTejas/launch-access-forecast/internal/chart"
)

// DefaultWidth is the chart width used by the terminal formatter.
const DefaultWidth = 72

// terminalFormatter formats output for terminal display using go-termfmt
// trees and lipgloss tables and charts
type terminalFormatter struct {
	opts  *termfmt.TerminalOptions
	color bool
	width int
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = true
	return &terminalFormatter{opts: opts, color: color, width: DefaultWidth}
}

// NewTerminalWithOptions lets the caller disable emoji and pick a width.
func NewTerminalWithOptions(color, emoji bool, width int) Formatter {
	f := NewTerminal(color).(*terminalFormatter)
	f.opts.Emoji = emoji
	if width > 20 {
		f.width = width
	}
	return f
}

func (f *terminalFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b, report.Title)
	if report.Subtitle != "" {
		b.WriteString(report.Subtitle + "\n\n")
	}

	for _, s := range report.Sections {
		if s.empty() {
			continue
		}
		f.writeSection(&b, s)
	}

	return []byte(b.String()), nil
}

// writeHeader writes the report title in a double line box
func (f *terminalFormatter) writeHeader(b *strings.Builder, title string) {
	w := lipgloss.Width(title)
	b.WriteString("╔" + strings.Repeat("═", w+2) + "╗\n")
	b.WriteString("║ " + title + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", w+2) + "╝\n\n")
}

func (f *terminalFormatter) writeSection(b *strings.Builder, s Section) {
	icon := s.Icon
	if icon == "" {
		icon = "summary"
	}
	b.WriteString(termfmt.GetEmoji(icon, f.opts) + " " + s.Title + "\n")

	if len(s.Items) > 0 {
		b.WriteString(termfmt.TreeViewWithOptions(treeItems(s.Items), f.opts) + "\n")
	}
	if s.Table != nil {
		b.WriteString(f.renderTable(s.Table, s.Scores) + "\n")
	}
	if len(s.Donut) > 0 {
		b.WriteString(f.renderDonut(s.Donut, s.Palette))
	}
	if len(s.Stack) > 0 {
		b.WriteString(f.renderStack(s.Stack, s.Palette))
	}
	if len(s.Bars) > 0 {
		b.WriteString(chart.ComparisonBars(s.Bars, f.width, nil))
	}
	if s.Note != "" {
		b.WriteString("• " + s.Note + "\n")
	}
	b.WriteString("\n")
}

// treeItems converts items to go-termfmt tree items, marking the last
// sibling at every level.
func treeItems(items []Item) []termfmt.TreeItem {
	out := make([]termfmt.TreeItem, len(items))
	for i, it := range items {
		out[i] = termfmt.TreeItem{
			Label: it.Label,
			Value: it.Value,
			Last:  i == len(items)-1,
		}
		if len(it.Children) > 0 {
			out[i].Children = treeItems(it.Children)
		}
	}
	return out
}

// renderTable draws t with rounded borders. A non-empty scores slice adds a
// confidence bar column.
func (f *terminalFormatter) renderTable(t *Table, scores []float64) string {
	headers := t.Headers
	rows := t.Rows
	if len(scores) == len(rows) && len(rows) > 0 {
		headers = append(append([]string(nil), headers...), "")
		rows = make([][]string, len(t.Rows))
		for i, r := range t.Rows {
			rows[i] = append(append([]string(nil), r...), termfmt.CreateConfidenceBar(scores[i], f.opts))
		}
	}

	if len(rows) == 0 {
		return "  (no rows)"
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	if f.color {
		headerStyle = headerStyle.Foreground(lipgloss.Color("#EB6620"))
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return tbl.String()
}

func (f *terminalFormatter) renderDonut(slices []chart.Slice, palette chart.Palette) string {
	if f.color {
		return chart.Donut("", slices, f.width, palette)
	}
	var b strings.Builder
	for _, s := range slices {
		bar := termfmt.CreateConfidenceBar(s.Value/100, f.opts)
		fmt.Fprintf(&b, "  %s %-34s %s%%\n", bar, s.Name, chart.FormatValue(s.Value))
	}
	return b.String()
}

func (f *terminalFormatter) renderStack(rows []chart.StackRow, palette chart.Palette) string {
	if f.color {
		return chart.StackedBars(rows, f.width, palette)
	}
	t := stackTable(rows)
	return f.renderTable(t, nil) + "\n"
}

// stackTable lays stacked rows out as label plus one column per segment
// name, in first-seen order.
func stackTable(rows []chart.StackRow) *Table {
	var names []string
	seen := map[string]bool{}
	for _, r := range rows {
		for _, s := range r.Segments {
			if !seen[s.Name] {
				seen[s.Name] = true
				names = append(names, s.Name)
			}
		}
	}

	t := &Table{Headers: append([]string{""}, names...)}
	for _, r := range rows {
		row := make([]string, len(names)+1)
		row[0] = r.Label
		for i, n := range names {
			row[i+1] = "-"
			for _, s := range r.Segments {
				if s.Name == n {
					row[i+1] = chart.FormatValue(s.Value) + "%"
				}
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
