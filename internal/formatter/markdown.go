package formatter

import (
	"fmt"
	"strings"

	"github.com/SnookieTejas/launch-access-forecast/internal/chart"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# " + report.Title + "\n\n")
	if report.Subtitle != "" {
		b.WriteString(report.Subtitle + "\n\n")
	}

	for _, s := range report.Sections {
		if s.empty() {
			continue
		}
		b.WriteString("## " + s.Title + "\n\n")
		if len(s.Items) > 0 {
			writeMarkdownItems(&b, s.Items, 0)
			b.WriteString("\n")
		}
		if s.Table != nil {
			writeMarkdownTable(&b, s.Table)
		}
		if len(s.Donut) > 0 {
			t := &Table{Headers: []string{"Segment", "Share"}}
			for _, sl := range s.Donut {
				t.Rows = append(t.Rows, []string{sl.Name, chart.FormatValue(sl.Value) + "%"})
			}
			writeMarkdownTable(&b, t)
		}
		if len(s.Stack) > 0 {
			writeMarkdownTable(&b, stackTable(s.Stack))
		}
		if len(s.Bars) > 0 {
			t := &Table{Headers: []string{"Scenario", "Value"}}
			for _, bar := range s.Bars {
				t.Rows = append(t.Rows, []string{bar.Label, chart.FormatValue(bar.Value)})
			}
			writeMarkdownTable(&b, t)
		}
		if s.Note != "" {
			b.WriteString("> " + s.Note + "\n\n")
		}
	}

	return []byte(b.String()), nil
}

func writeMarkdownItems(b *strings.Builder, items []Item, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, it := range items {
		if it.Value != "" {
			fmt.Fprintf(b, "%s- **%s**: %s\n", indent, escapeMarkdown(it.Label), escapeMarkdown(it.Value))
		} else {
			fmt.Fprintf(b, "%s- **%s**\n", indent, escapeMarkdown(it.Label))
		}
		writeMarkdownItems(b, it.Children, depth+1)
	}
}

func writeMarkdownTable(b *strings.Builder, t *Table) {
	if len(t.Headers) == 0 {
		return
	}
	row := func(cells []string) {
		escaped := make([]string, len(cells))
		for i, c := range cells {
			escaped[i] = escapeMarkdown(c)
		}
		b.WriteString("| " + strings.Join(escaped, " | ") + " |\n")
	}
	row(t.Headers)
	sep := make([]string, len(t.Headers))
	for i := range sep {
		sep[i] = "---"
	}
	b.WriteString("|" + strings.Join(sep, "|") + "|\n")
	for _, r := range t.Rows {
		row(r)
	}
	b.WriteString("\n")
}

// escapeMarkdown keeps pipes from splitting table cells.
func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", "\\|")
}
