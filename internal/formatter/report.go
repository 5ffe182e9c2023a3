package formatter

import "github.com/SnookieTejas/launch-access-forecast/internal/chart"

// Report is a titled list of sections. Every formatter renders the same
// report, so commands only build it once.
type Report struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle,omitempty"`
	Sections []Section `json:"sections"`
}

// Section holds one kind of content. Empty parts are skipped by every
// formatter.
type Section struct {
	Title string `json:"title"`
	// Icon is a go-termfmt emoji key used by the terminal formatter.
	Icon string `json:"-"`

	Items []Item           `json:"items,omitempty"`
	Table *Table           `json:"table,omitempty"`
	Donut []chart.Slice    `json:"donut,omitempty"`
	Stack []chart.StackRow `json:"stack,omitempty"`
	Bars  []chart.Bar      `json:"bars,omitempty"`
	Note  string           `json:"note,omitempty"`

	// Palette colours donut and stack segments in the terminal.
	Palette chart.Palette `json:"-"`
	// Scores are 0..1 values drawn as confidence bars next to table rows.
	Scores []float64 `json:"-"`
}

// Item is a labelled value, optionally with nested items.
type Item struct {
	Label    string `json:"label"`
	Value    string `json:"value,omitempty"`
	Children []Item `json:"children,omitempty"`
}

// Table is a header row plus string cells.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// AddSection appends s and returns the report for chaining.
func (r *Report) AddSection(s Section) *Report {
	r.Sections = append(r.Sections, s)
	return r
}

func (s Section) empty() bool {
	return len(s.Items) == 0 && s.Table == nil && len(s.Donut) == 0 &&
		len(s.Stack) == 0 && len(s.Bars) == 0 && s.Note == ""
}
