package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SnookieTejas/launch-access-forecast/internal/forms"
)

// Checklist is the interactive face of a forms.MultiSelect. Row zero is the
// select-all row. "/" starts a search, enter or esc ends it.
type Checklist struct {
	label    string
	ms       *forms.MultiSelect
	search   textinput.Model
	cursor   int
	open     bool
	MaxRows  int
	OnChange func([]string)
}

// NewChecklist binds a checklist to ms.
func NewChecklist(label string, ms *forms.MultiSelect) *Checklist {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search..."
	ti.CharLimit = 60
	ti.Width = 30
	return &Checklist{label: label, ms: ms, search: ti, MaxRows: 8}
}

func (c *Checklist) Label() string { return c.label }

// Typing is true while the search box has the keys.
func (c *Checklist) Typing() bool { return c.open }

func (c *Checklist) Focus() tea.Cmd { return nil }

func (c *Checklist) Blur() { c.closeSearch() }

// Cursor is the highlighted row; zero is select-all.
func (c *Checklist) Cursor() int { return c.cursor }

// Searching reports whether the search box is open.
func (c *Checklist) Searching() bool { return c.open }

func (c *Checklist) closeSearch() {
	c.open = false
	c.search.Blur()
}

func (c *Checklist) Update(msg tea.KeyMsg) tea.Cmd {
	if c.open {
		switch msg.String() {
		case "esc", "enter":
			c.closeSearch()
			return nil
		case "up", "down":
			// fall through to cursor movement
		default:
			var cmd tea.Cmd
			c.search, cmd = c.search.Update(msg)
			c.ms.SetQuery(c.search.Value())
			c.clampCursor()
			return cmd
		}
	}

	rows := len(c.ms.Filtered()) + 1
	switch msg.String() {
	case "/":
		c.open = true
		return c.search.Focus()
	case "j", "down":
		if c.cursor < rows-1 {
			c.cursor++
		}
	case "k", "up":
		if c.cursor > 0 {
			c.cursor--
		}
	case " ", "x":
		c.toggleCursor()
	case "a":
		c.ms.SelectAll()
		c.changed()
	}
	return nil
}

func (c *Checklist) toggleCursor() {
	if c.cursor == 0 {
		c.ms.SelectAll()
	} else {
		filtered := c.ms.Filtered()
		c.ms.Toggle(filtered[c.cursor-1])
	}
	c.changed()
}

func (c *Checklist) changed() {
	if c.OnChange != nil {
		c.OnChange(c.ms.Selected())
	}
}

func (c *Checklist) clampCursor() {
	if n := len(c.ms.Filtered()); c.cursor > n {
		c.cursor = n
	}
}

func (c *Checklist) View(focused bool) string {
	if !focused {
		return "▾ " + c.ms.DisplayText()
	}

	var b strings.Builder
	b.WriteString("▴ " + c.ms.DisplayText() + "\n")
	if c.open || c.ms.Query() != "" {
		b.WriteString(c.search.View() + "\n")
	}

	filtered := c.ms.Filtered()
	if len(filtered) == 0 {
		b.WriteString(mutedText.Render("No options found"))
		return b.String()
	}

	b.WriteString(c.line(0, c.ms.AllFilteredSelected(), c.ms.SelectAllLabel()))

	// keep the cursor visible inside MaxRows option rows
	first := 0
	if c.cursor > c.MaxRows {
		first = c.cursor - c.MaxRows
	}
	last := first + c.MaxRows
	if last > len(filtered) {
		last = len(filtered)
	}
	for i := first; i < last; i++ {
		opt := filtered[i]
		b.WriteString(c.line(i+1, c.ms.IsSelected(opt), opt))
	}
	if hidden := len(filtered) - last; hidden > 0 {
		b.WriteString(mutedText.Render(fmt.Sprintf("  … %d more", hidden)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (c *Checklist) line(row int, checked bool, text string) string {
	box := "[ ]"
	if checked {
		box = focusMark.Render("[x]")
	}
	prefix := "  "
	if row == c.cursor {
		prefix = focusMark.Render("› ")
	}
	return prefix + box + " " + text + "\n"
}
