package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
)

// Form owns focus across a list of fields.
type Form struct {
	Fields []Field
	// Describe returns the help line for a label, or "".
	Describe func(label string) string
	// Errors maps a field label to its validation message.
	Errors map[string]string
	Width  int

	focus int
}

// NewForm focuses the first field.
func NewForm(fields ...Field) *Form {
	f := &Form{Fields: fields, Errors: map[string]string{}, Width: 72}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return f
}

// Focused returns the field that receives keys.
func (f *Form) Focused() Field {
	if len(f.Fields) == 0 {
		return nil
	}
	return f.Fields[f.focus]
}

// FocusIndex is the position of the focused field.
func (f *Form) FocusIndex() int { return f.focus }

// Typing reports whether the focused field consumes printable keys.
func (f *Form) Typing() bool {
	if fld := f.Focused(); fld != nil {
		return fld.Typing()
	}
	return false
}

// Move shifts focus by delta, wrapping around.
func (f *Form) Move(delta int) tea.Cmd {
	n := len(f.Fields)
	if n == 0 {
		return nil
	}
	f.Fields[f.focus].Blur()
	f.focus = ((f.focus+delta)%n + n) % n
	return f.Fields[f.focus].Focus()
}

// FocusLabel moves focus to the field with label.
func (f *Form) FocusLabel(label string) tea.Cmd {
	for i, fld := range f.Fields {
		if fld.Label() == label {
			return f.Move(i - f.focus)
		}
	}
	return nil
}

// Update routes focus keys and hands everything else to the focused field.
func (f *Form) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		if msg.String() == "down" && f.Typing() {
			break
		}
		return f.Move(1)
	case "shift+tab", "up":
		if msg.String() == "up" && f.Typing() {
			break
		}
		return f.Move(-1)
	}
	if fld := f.Focused(); fld != nil {
		return fld.Update(msg)
	}
	return nil
}

// View renders at most window fields around the focused one. A window of
// zero renders every field.
func (f *Form) View(window int) string {
	start, end := 0, len(f.Fields)
	if window > 0 && window < len(f.Fields) {
		start = f.focus - window/2
		if start < 0 {
			start = 0
		}
		end = start + window
		if end > len(f.Fields) {
			end = len(f.Fields)
			start = end - window
		}
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(mutedText.Render("  ↑ more") + "\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(f.row(i))
	}
	if end < len(f.Fields) {
		b.WriteString(mutedText.Render("  ↓ more") + "\n")
	}
	return b.String()
}

func (f *Form) row(i int) string {
	fld := f.Fields[i]
	focused := i == f.focus

	marker := "  "
	if focused {
		marker = focusMark.Render("▌ ")
	}

	var b strings.Builder
	b.WriteString(marker + labelStyle.Render(fld.Label()) + "\n")
	if focused && f.Describe != nil {
		if desc := f.Describe(fld.Label()); desc != "" {
			for _, line := range strings.Split(wordwrap.String(desc, f.Width-4), "\n") {
				b.WriteString("  " + mutedText.Render(line) + "\n")
			}
		}
	}
	for _, line := range strings.Split(fld.View(focused), "\n") {
		b.WriteString("  " + line + "\n")
	}
	if msg := f.Errors[fld.Label()]; msg != "" {
		b.WriteString("  " + errorText.Render(msg) + "\n")
	}
	return b.String()
}
