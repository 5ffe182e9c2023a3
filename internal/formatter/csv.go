package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// csvFormatter writes every section as its own CSV block: a "# title" line,
// a header row and the data rows, separated by blank lines.
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(report *Report) ([]byte, error) {
	var b bytes.Buffer
	first := true

	for _, s := range report.Sections {
		t := sectionTable(s)
		if t == nil {
			continue
		}
		if !first {
			b.WriteString("\n")
		}
		first = false

		b.WriteString("# " + escapeCSVString(s.Title) + "\n")
		writer := csv.NewWriter(&b)
		if err := writer.Write(t.Headers); err != nil {
			return nil, fmt.Errorf("failed to write CSV headers: %w", err)
		}
		for _, r := range t.Rows {
			if err := writer.Write(r); err != nil {
				return nil, fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return nil, fmt.Errorf("CSV writer error: %w", err)
		}
	}

	return b.Bytes(), nil
}

// sectionTable flattens whatever the section holds into one table.
func sectionTable(s Section) *Table {
	switch {
	case s.Table != nil:
		return s.Table
	case len(s.Stack) > 0:
		long := &Table{Headers: []string{"Label", "Segment", "Value"}}
		for _, r := range s.Stack {
			for _, seg := range r.Segments {
				long.Rows = append(long.Rows, []string{r.Label, seg.Name, csvNumber(seg.Value)})
			}
		}
		return long
	case len(s.Donut) > 0:
		t := &Table{Headers: []string{"Segment", "Value"}}
		for _, sl := range s.Donut {
			t.Rows = append(t.Rows, []string{sl.Name, csvNumber(sl.Value)})
		}
		return t
	case len(s.Bars) > 0:
		t := &Table{Headers: []string{"Label", "Value"}}
		for _, bar := range s.Bars {
			t.Rows = append(t.Rows, []string{bar.Label, csvNumber(bar.Value)})
		}
		return t
	case len(s.Items) > 0:
		t := &Table{Headers: []string{"Label", "Value"}}
		flattenItems(&t.Rows, s.Items, "")
		return t
	}
	return nil
}

func flattenItems(rows *[][]string, items []Item, prefix string) {
	for _, it := range items {
		label := it.Label
		if prefix != "" {
			label = prefix + " / " + label
		}
		*rows = append(*rows, []string{label, it.Value})
		flattenItems(rows, it.Children, label)
	}
}

// csvNumber keeps machine readable values: no grouping separators.
func csvNumber(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

// escapeCSVString removes line breaks from a comment line
func escapeCSVString(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
