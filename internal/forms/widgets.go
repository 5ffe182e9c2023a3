package forms

import (
	"fmt"
	"strings"
	"time"
)

// MultiSelect is a searchable checklist.
type MultiSelect struct {
	Options     []string
	Placeholder string

	selected []string
	query    string
}

// NewMultiSelect creates a checklist over options.
func NewMultiSelect(options []string, placeholder string) *MultiSelect {
	if placeholder == "" {
		placeholder = "Select options"
	}
	return &MultiSelect{Options: options, Placeholder: placeholder}
}

// Selected returns the chosen options in selection order.
func (m *MultiSelect) Selected() []string {
	return append([]string(nil), m.selected...)
}

// SetSelected replaces the selection.
func (m *MultiSelect) SetSelected(values []string) {
	m.selected = append([]string(nil), values...)
}

// IsSelected reports whether opt is chosen.
func (m *MultiSelect) IsSelected(opt string) bool {
	return indexOf(m.selected, opt) >= 0
}

// Toggle adds or removes a single option.
func (m *MultiSelect) Toggle(opt string) {
	if i := indexOf(m.selected, opt); i >= 0 {
		m.selected = append(m.selected[:i:i], m.selected[i+1:]...)
		return
	}
	m.selected = append(m.selected, opt)
}

// Query returns the search text.
func (m *MultiSelect) Query() string { return m.query }

// SetQuery filters the visible options.
func (m *MultiSelect) SetQuery(q string) { m.query = q }

// Filtered returns the options matching the search text, case-insensitively.
func (m *MultiSelect) Filtered() []string {
	q := strings.ToLower(m.query)
	var out []string
	for _, opt := range m.Options {
		if strings.Contains(strings.ToLower(opt), q) {
			out = append(out, opt)
		}
	}
	return out
}

// AllFilteredSelected reports whether every visible option is chosen.
func (m *MultiSelect) AllFilteredSelected() bool {
	filtered := m.Filtered()
	if len(filtered) == 0 {
		return false
	}
	for _, opt := range filtered {
		if !m.IsSelected(opt) {
			return false
		}
	}
	return true
}

// SelectAll selects every visible option, or deselects them when they
// are all selected already. Hidden selections are kept.
func (m *MultiSelect) SelectAll() {
	filtered := m.Filtered()
	if m.AllFilteredSelected() {
		kept := m.selected[:0:0]
		for _, v := range m.selected {
			if indexOf(filtered, v) < 0 {
				kept = append(kept, v)
			}
		}
		m.selected = kept
		return
	}
	for _, opt := range filtered {
		if !m.IsSelected(opt) {
			m.selected = append(m.selected, opt)
		}
	}
}

// SelectAllLabel is the caption of the select-all row.
func (m *MultiSelect) SelectAllLabel() string {
	if m.query != "" {
		return fmt.Sprintf("Select All (%d)", len(m.Filtered()))
	}
	return "Select All"
}

// DisplayText summarises the selection for the closed dropdown.
func (m *MultiSelect) DisplayText() string {
	switch len(m.selected) {
	case 0:
		return m.Placeholder
	case 1:
		return m.selected[0]
	}
	return fmt.Sprintf("%d selected", len(m.selected))
}

// RangeSlider is a single-value slider.
type RangeSlider struct {
	Min, Max int
	value    int
}

// NewRangeSlider creates a slider over [min, max] starting at value.
func NewRangeSlider(min, max, value int) RangeSlider {
	s := RangeSlider{Min: min, Max: max}
	s.Set(value)
	return s
}

// Value returns the current position.
func (s RangeSlider) Value() int { return s.value }

// Set moves the slider, clamped to the bounds.
func (s *RangeSlider) Set(v int) {
	s.value = clamp(v, s.Min, s.Max)
}

// Step moves the slider by delta.
func (s *RangeSlider) Step(delta int) { s.Set(s.value + delta) }

// Percent is the position within the track, 0..100.
func (s RangeSlider) Percent() float64 {
	if s.Max == s.Min {
		return 0
	}
	return float64(s.value-s.Min) / float64(s.Max-s.Min) * 100
}

// Color is the handle colour for the current value.
func (s RangeSlider) Color() string { return GradientColor(s.value) }

// SliderScale holds the captions under the track.
var SliderScale = [3]string{"Very low", "At parity", "High"}

// GradientColor maps a slider value to its band colour.
func GradientColor(v int) string {
	switch {
	case v < 25:
		return "#EF4444"
	case v < 50:
		return "#F97316"
	case v < 75:
		return "#EAB308"
	}
	return "#10B981"
}

// DualRange is a two-handle slider whose handles never cross.
type DualRange struct {
	Min, Max int
	lo, hi   int
}

// NewDualRange spans the whole [min, max] interval.
func NewDualRange(min, max int) DualRange {
	return DualRange{Min: min, Max: max, lo: min, hi: max}
}

// Bounds returns the selected interval.
func (d DualRange) Bounds() (int, int) { return d.lo, d.hi }

// SetLow moves the lower handle. Moves past the upper handle are ignored.
func (d *DualRange) SetLow(v int) bool {
	v = clamp(v, d.Min, d.Max)
	if v > d.hi {
		return false
	}
	d.lo = v
	return true
}

// SetHigh moves the upper handle. Moves below the lower handle are ignored.
func (d *DualRange) SetHigh(v int) bool {
	v = clamp(v, d.Min, d.Max)
	if v < d.lo {
		return false
	}
	d.hi = v
	return true
}

// Toggle is a yes/no switch.
type Toggle struct {
	On       bool
	YesLabel string
	NoLabel  string
}

// Flip inverts the switch.
func (t *Toggle) Flip() { t.On = !t.On }

// Label returns the caption of the current position.
func (t Toggle) Label() string {
	if t.On {
		return orDefault(t.YesLabel, "Yes")
	}
	return orDefault(t.NoLabel, "No")
}

// Segmented is a row of mutually exclusive buttons.
type Segmented struct {
	Options []string
	index   int
}

// NewSegmented selects value among options, or the first option when
// value is not present.
func NewSegmented(options []string, value string) Segmented {
	s := Segmented{Options: options}
	if i := indexOf(options, value); i >= 0 {
		s.index = i
	}
	return s
}

// Value returns the selected option.
func (s Segmented) Value() string {
	if len(s.Options) == 0 {
		return ""
	}
	return s.Options[s.index]
}

// Index returns the selected position.
func (s Segmented) Index() int { return s.index }

// Set selects an option by value.
func (s *Segmented) Set(v string) error {
	i := indexOf(s.Options, v)
	if i < 0 {
		return fmt.Errorf("invalid option: %s (must be one of: %s)", v, strings.Join(s.Options, ", "))
	}
	s.index = i
	return nil
}

// Next moves the selection right, wrapping around.
func (s *Segmented) Next() {
	if len(s.Options) > 0 {
		s.index = (s.index + 1) % len(s.Options)
	}
}

// Prev moves the selection left, wrapping around.
func (s *Segmented) Prev() {
	if len(s.Options) > 0 {
		s.index = (s.index - 1 + len(s.Options)) % len(s.Options)
	}
}

// Select is a single-choice dropdown. An empty Value shows the placeholder.
type Select struct {
	Options     []string
	Value       string
	Placeholder string
	Disabled    bool
}

// Choose sets the value unless the select is disabled.
func (s *Select) Choose(v string) bool {
	if s.Disabled {
		return false
	}
	s.Value = v
	return true
}

// Display returns the value or the placeholder.
func (s Select) Display() string {
	if s.Value != "" {
		return s.Value
	}
	return orDefault(s.Placeholder, "Select an option")
}

// Cycle moves to the next (dir > 0) or previous option.
func (s *Select) Cycle(dir int) {
	if s.Disabled || len(s.Options) == 0 {
		return
	}
	i := indexOf(s.Options, s.Value)
	switch {
	case i < 0 && dir < 0:
		i = len(s.Options) - 1
	case i < 0:
		i = 0
	default:
		i = (i + dir + len(s.Options)) % len(s.Options)
	}
	s.Value = s.Options[i]
}

// DateLayout is the wire format of DateRange values.
const DateLayout = "2006-01-02"

// DateRange is a start/end pair of YYYY-MM-DD strings.
type DateRange struct {
	Start string
	End   string
}

// Complete reports whether both ends are set.
func (r DateRange) Complete() bool { return r.Start != "" && r.End != "" }

// Clear empties both ends.
func (r *DateRange) Clear() { *r = DateRange{} }

// DisplayText renders the range the way the picker button shows it.
func (r DateRange) DisplayText() string {
	switch {
	case r.Start != "" && r.End != "":
		return displayDate(r.Start) + " - " + displayDate(r.End)
	case r.Start != "":
		return displayDate(r.Start) + " - Select end date"
	}
	return "Select date range"
}

// DatePresets are the quick ranges offered by the picker, in years.
var DatePresets = []int{1, 3, 5}

// NextYears returns the range from now to now plus n years.
func NextYears(now time.Time, n int) DateRange {
	return DateRange{
		Start: now.Format(DateLayout),
		End:   now.AddDate(n, 0, 0).Format(DateLayout),
	}
}

// PresetLabel is the caption of a preset button.
func PresetLabel(years int) string {
	if years == 1 {
		return "Next 1 Year"
	}
	return fmt.Sprintf("Next %d Years", years)
}

func displayDate(s string) string {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
