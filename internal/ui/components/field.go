package components

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SnookieTejas/launch-access-forecast/internal/emoji"
	"github.com/SnookieTejas/launch-access-forecast/internal/forms"
)

// Field is a focusable form control. Keys reach a field only while it has
// focus; tab and shift+tab belong to the surrounding Form.
type Field interface {
	Label() string
	Update(msg tea.KeyMsg) tea.Cmd
	View(focused bool) string
	// Typing reports whether printable keys are consumed by the field.
	Typing() bool
	Focus() tea.Cmd
	Blur()
}

// Styles are defined locally to avoid an import cycle with ui.
var (
	labelStyle    = lipgloss.NewStyle().Bold(true)
	focusMark     = lipgloss.NewStyle().Foreground(lipgloss.Color("#EB6620")).Bold(true)
	mutedText     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
	errorText     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	activeOption  = lipgloss.NewStyle().Background(lipgloss.Color("#EB6620")).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1)
	passiveOption = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#374151", Dark: "#D1D5DB"}).Padding(0, 1)
	disabledText  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

// TextField wraps a bubbles text input. OnChange fires after every edit.
type TextField struct {
	label    string
	input    textinput.Model
	OnChange func(string)
}

// NewTextField creates a single-line input.
func NewTextField(label, placeholder, value string) *TextField {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	ti.Width = 40
	ti.SetValue(value)
	return &TextField{label: label, input: ti}
}

// NewPasswordField creates an input that masks what is typed.
func NewPasswordField(label, placeholder string) *TextField {
	f := NewTextField(label, placeholder, "")
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

func (f *TextField) Label() string { return f.label }
func (f *TextField) Typing() bool  { return true }
func (f *TextField) Focus() tea.Cmd {
	return f.input.Focus()
}
func (f *TextField) Blur() { f.input.Blur() }

// Value returns the current text.
func (f *TextField) Value() string { return f.input.Value() }

// SetValue replaces the text without firing OnChange.
func (f *TextField) SetValue(v string) { f.input.SetValue(v) }

// SetWidth sets the visible width of the input.
func (f *TextField) SetWidth(w int) { f.input.Width = w }

func (f *TextField) Update(msg tea.KeyMsg) tea.Cmd {
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.OnChange != nil && f.input.Value() != before {
		f.OnChange(f.input.Value())
	}
	return cmd
}

func (f *TextField) View(bool) string {
	return f.input.View()
}

// SelectField cycles through the options of a forms.Select with left and
// right.
type SelectField struct {
	label    string
	sel      *forms.Select
	OnChange func(string)
}

// NewSelectField binds a field to sel.
func NewSelectField(label string, sel *forms.Select) *SelectField {
	return &SelectField{label: label, sel: sel}
}

func (f *SelectField) Label() string  { return f.label }
func (f *SelectField) Typing() bool   { return false }
func (f *SelectField) Focus() tea.Cmd { return nil }
func (f *SelectField) Blur()          {}

func (f *SelectField) Update(msg tea.KeyMsg) tea.Cmd {
	before := f.sel.Value
	switch msg.String() {
	case "right", "l", " ":
		f.sel.Cycle(1)
	case "left", "h":
		f.sel.Cycle(-1)
	case "backspace", "delete":
		f.sel.Choose("")
	}
	if f.OnChange != nil && f.sel.Value != before {
		f.OnChange(f.sel.Value)
	}
	return nil
}

func (f *SelectField) View(focused bool) string {
	if f.sel.Disabled {
		return disabledText.Render("‹ " + f.sel.Display() + " ›")
	}
	text := f.sel.Display()
	if f.sel.Value == "" {
		text = mutedText.Render(text)
	}
	if focused {
		return focusMark.Render("‹ ") + text + focusMark.Render(" ›")
	}
	return "‹ " + text + " ›"
}

// SegmentedField renders a forms.Segmented as a button row.
type SegmentedField struct {
	label string
	seg   *forms.Segmented
}

// NewSegmentedField binds a field to seg.
func NewSegmentedField(label string, seg *forms.Segmented) *SegmentedField {
	return &SegmentedField{label: label, seg: seg}
}

func (f *SegmentedField) Label() string  { return f.label }
func (f *SegmentedField) Typing() bool   { return false }
func (f *SegmentedField) Focus() tea.Cmd { return nil }
func (f *SegmentedField) Blur()          {}

func (f *SegmentedField) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "right", "l", " ":
		f.seg.Next()
	case "left", "h":
		f.seg.Prev()
	}
	return nil
}

func (f *SegmentedField) View(bool) string {
	parts := make([]string, len(f.seg.Options))
	for i, opt := range f.seg.Options {
		if i == f.seg.Index() {
			parts[i] = activeOption.Render(opt)
		} else {
			parts[i] = passiveOption.Render(opt)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// ToggleField flips a forms.Toggle with space, left or right.
type ToggleField struct {
	label  string
	toggle *forms.Toggle
}

// NewToggleField binds a field to t.
func NewToggleField(label string, t *forms.Toggle) *ToggleField {
	return &ToggleField{label: label, toggle: t}
}

func (f *ToggleField) Label() string  { return f.label }
func (f *ToggleField) Typing() bool   { return false }
func (f *ToggleField) Focus() tea.Cmd { return nil }
func (f *ToggleField) Blur()          {}

func (f *ToggleField) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case " ", "left", "right", "h", "l":
		f.toggle.Flip()
	}
	return nil
}

func (f *ToggleField) View(bool) string {
	if f.toggle.On {
		return activeOption.Render("●") + " " + f.toggle.Label()
	}
	return passiveOption.Render("○") + " " + f.toggle.Label()
}

// SliderField moves a forms.RangeSlider by one, or by ten with shift.
type SliderField struct {
	label  string
	slider *forms.RangeSlider
	Width  int
}

// NewSliderField binds a field to s.
func NewSliderField(label string, s *forms.RangeSlider) *SliderField {
	return &SliderField{label: label, slider: s, Width: 30}
}

func (f *SliderField) Label() string  { return f.label }
func (f *SliderField) Typing() bool   { return false }
func (f *SliderField) Focus() tea.Cmd { return nil }
func (f *SliderField) Blur()          {}

func (f *SliderField) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "right", "l":
		f.slider.Step(1)
	case "left", "h":
		f.slider.Step(-1)
	case "shift+right", "L":
		f.slider.Step(10)
	case "shift+left", "H":
		f.slider.Step(-10)
	case "home":
		f.slider.Set(f.slider.Min)
	case "end":
		f.slider.Set(f.slider.Max)
	}
	return nil
}

func (f *SliderField) View(bool) string {
	filled := int(f.slider.Percent() / 100 * float64(f.Width))
	color := lipgloss.Color(f.slider.Color())
	track := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(color).Bold(true).Render("●") +
		mutedText.Render(strings.Repeat("─", f.Width-filled))

	scale := forms.SliderScale
	gap := f.Width - len(scale[0]) - len(scale[1]) - len(scale[2])
	left, right := gap/2, gap-gap/2
	if left < 1 {
		left, right = 1, 1
	}
	captions := mutedText.Render(scale[0] + strings.Repeat(" ", left) + scale[1] + strings.Repeat(" ", right) + scale[2])
	return track + " " + strconv.Itoa(f.slider.Value()) + "\n" + captions
}

// DualRangeField edits a forms.DualRange. Space switches the active
// handle, left and right move it.
type DualRangeField struct {
	label string
	rng   *forms.DualRange
	high  bool
	Width int
}

// NewDualRangeField binds a field to r, starting on the lower handle.
func NewDualRangeField(label string, r *forms.DualRange) *DualRangeField {
	return &DualRangeField{label: label, rng: r, Width: 30}
}

func (f *DualRangeField) Label() string  { return f.label }
func (f *DualRangeField) Typing() bool   { return false }
func (f *DualRangeField) Focus() tea.Cmd { return nil }
func (f *DualRangeField) Blur()          {}

// HighActive reports whether the upper handle has the keys.
func (f *DualRangeField) HighActive() bool { return f.high }

func (f *DualRangeField) Update(msg tea.KeyMsg) tea.Cmd {
	step := 0
	switch msg.String() {
	case " ":
		f.high = !f.high
	case "right", "l":
		step = 1
	case "left", "h":
		step = -1
	case "shift+right", "L":
		step = 10
	case "shift+left", "H":
		step = -10
	}
	if step == 0 {
		return nil
	}
	lo, hi := f.rng.Bounds()
	if f.high {
		f.rng.SetHigh(hi + step)
	} else {
		f.rng.SetLow(lo + step)
	}
	return nil
}

func (f *DualRangeField) View(focused bool) string {
	lo, hi := f.rng.Bounds()
	span := f.rng.Max - f.rng.Min
	if span <= 0 {
		span = 1
	}
	pos := func(v int) int { return (v - f.rng.Min) * f.Width / span }
	a, b := pos(lo), pos(hi)

	var sb strings.Builder
	for i := 0; i <= f.Width; i++ {
		switch {
		case i == a && (!f.high || !focused):
			sb.WriteString(focusMark.Render("◆"))
		case i == b && (f.high || !focused):
			sb.WriteString(focusMark.Render("◆"))
		case i == a || i == b:
			sb.WriteString("◇")
		case i > a && i < b:
			sb.WriteString(focusMark.Render("━"))
		default:
			sb.WriteString(mutedText.Render("─"))
		}
	}
	return fmt.Sprintf("%s  %d%% - %d%%", sb.String(), lo, hi)
}

// DateField picks a forms.DateRange from the presets. Left and right step
// through them, backspace clears the range.
type DateField struct {
	label    string
	rng      *forms.DateRange
	preset   int
	now      func() time.Time
	OnChange func(forms.DateRange)
}

// NewDateField binds a field to r. now may be nil.
func NewDateField(label string, r *forms.DateRange, now func() time.Time) *DateField {
	if now == nil {
		now = time.Now
	}
	return &DateField{label: label, rng: r, preset: -1, now: now}
}

func (f *DateField) Label() string  { return f.label }
func (f *DateField) Typing() bool   { return false }
func (f *DateField) Focus() tea.Cmd { return nil }
func (f *DateField) Blur()          {}

func (f *DateField) Update(msg tea.KeyMsg) tea.Cmd {
	n := len(forms.DatePresets)
	switch msg.String() {
	case "right", "l", " ":
		f.preset = (f.preset + 1) % n
	case "left", "h":
		if f.preset <= 0 {
			f.preset = n - 1
		} else {
			f.preset--
		}
	case "backspace", "delete":
		f.preset = -1
		f.rng.Clear()
		f.changed()
		return nil
	default:
		return nil
	}
	*f.rng = forms.NextYears(f.now(), forms.DatePresets[f.preset])
	f.changed()
	return nil
}

func (f *DateField) changed() {
	if f.OnChange != nil {
		f.OnChange(*f.rng)
	}
}

func (f *DateField) View(focused bool) string {
	text := f.rng.DisplayText()
	if !f.rng.Complete() {
		text = mutedText.Render(text)
	}
	out := emoji.WithIcon("calendar", text)
	if focused {
		presets := make([]string, len(forms.DatePresets))
		for i, y := range forms.DatePresets {
			if i == f.preset {
				presets[i] = activeOption.Render(forms.PresetLabel(y))
			} else {
				presets[i] = passiveOption.Render(forms.PresetLabel(y))
			}
		}
		out += "\n" + lipgloss.JoinHorizontal(lipgloss.Top, presets...)
	}
	return out
}
