package components

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// LogEntry is one line of a validation run.
type LogEntry struct {
	Time    string
	Level   string // "error", "warn", "info"
	Source  string
	Message string
}

// LogViewer steps through log entries showing a few lines of context.
type LogViewer struct {
	Title        string
	Entries      []LogEntry
	CurrentIndex int
	Width        int
	Highlight    []string
	contextLines int
}

// NewLogViewer creates an empty viewer.
func NewLogViewer(title string, width int) *LogViewer {
	return &LogViewer{
		Title:        title,
		Width:        width,
		contextLines: 2,
	}
}

// SetEntries replaces the entries and rewinds.
func (v *LogViewer) SetEntries(entries []LogEntry) {
	v.Entries = entries
	v.CurrentIndex = 0
}

// SetHighlight sets terms to emphasise in messages.
func (v *LogViewer) SetHighlight(terms []string) {
	v.Highlight = terms
}

// SetContextLines sets how many entries to show around the current one.
func (v *LogViewer) SetContextLines(lines int) {
	v.contextLines = lines
}

// Next moves to the next entry.
func (v *LogViewer) Next() bool {
	if v.CurrentIndex < len(v.Entries)-1 {
		v.CurrentIndex++
		return true
	}
	return false
}

// Previous moves to the previous entry.
func (v *LogViewer) Previous() bool {
	if v.CurrentIndex > 0 {
		v.CurrentIndex--
		return true
	}
	return false
}

// Current returns the selected entry.
func (v *LogViewer) Current() (LogEntry, bool) {
	if v.CurrentIndex < 0 || v.CurrentIndex >= len(v.Entries) {
		return LogEntry{}, false
	}
	return v.Entries[v.CurrentIndex], true
}

// Count returns the number of entries at level.
func (v *LogViewer) Count(level string) int {
	n := 0
	for _, e := range v.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

var (
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Background(lipgloss.AdaptiveColor{Light: "#FDE9DE", Dark: "#32190A"})
)

// Render draws the viewer.
func (v *LogViewer) Render() string {
	if len(v.Entries) == 0 {
		content := []string{labelStyle.Render(v.Title), "", mutedText.Render("No log entries to display")}
		return panelStyle.Width(v.Width).Render(lipgloss.JoinVertical(lipgloss.Left, content...))
	}

	title := fmt.Sprintf("%s (%d/%d)", v.Title, v.CurrentIndex+1, len(v.Entries))
	content := []string{labelStyle.Render(title), ""}

	start := max(0, v.CurrentIndex-v.contextLines)
	end := min(len(v.Entries), v.CurrentIndex+v.contextLines+1)
	for i := start; i < end; i++ {
		content = append(content, v.renderEntry(v.Entries[i], i == v.CurrentIndex))
	}

	if len(v.Entries) > 1 {
		content = append(content, "", mutedText.Render("Use ←/→ or h/l to navigate entries"))
	}
	return panelStyle.Width(v.Width).Render(lipgloss.JoinVertical(lipgloss.Left, content...))
}

func (v *LogViewer) renderEntry(e LogEntry, current bool) string {
	parts := []string{mutedText.Render(e.Time), formatLevel(e.Level)}
	if e.Source != "" {
		parts = append(parts, mutedText.Render("["+e.Source+"]"))
	}
	parts = append(parts, v.formatMessage(e.Message))

	line := strings.Join(parts, " ")
	if current {
		return highlightStyle.Width(v.Width - 4).Render(line)
	}
	return line
}

func formatLevel(level string) string {
	text := fmt.Sprintf("%-5s", strings.ToUpper(level))
	switch level {
	case "error":
		return lipgloss.NewStyle().Foreground(ToneError.color()).Bold(true).Render(text)
	case "warn":
		return lipgloss.NewStyle().Foreground(ToneWarning.color()).Bold(true).Render(text)
	case "info":
		return lipgloss.NewStyle().Foreground(ToneSuccess.color()).Render(text)
	}
	return text
}

func (v *LogViewer) formatMessage(message string) string {
	for _, term := range v.Highlight {
		if term == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(term))
		if err != nil {
			continue
		}
		message = re.ReplaceAllStringFunc(message, func(match string) string {
			return focusMark.Render(match)
		})
	}
	return message
}

// DetailViewer is a titled panel of sections.
type DetailViewer struct {
	Title   string
	Content []DetailSection
	Width   int
}

// DetailSection is a block of lines under a heading.
type DetailSection struct {
	Title   string
	Content []string
	Style   string // "info", "warning", "error", "success"
}

// NewDetailViewer creates an empty panel.
func NewDetailViewer(title string, width int) *DetailViewer {
	return &DetailViewer{Title: title, Width: width}
}

// AddSection appends a section.
func (d *DetailViewer) AddSection(section DetailSection) {
	d.Content = append(d.Content, section)
}

// Render draws the panel.
func (d *DetailViewer) Render() string {
	content := make([]string, 0, len(d.Content)*4+2)
	content = append(content, labelStyle.Render(d.Title), "")

	for _, section := range d.Content {
		title := labelStyle
		if section.Style != "" {
			title = title.Foreground(ToneFor(section.Style).color())
		}
		content = append(content, title.Render(section.Title))
		for _, line := range section.Content {
			content = append(content, "  "+line)
		}
		content = append(content, "")
	}
	return panelStyle.Width(d.Width).Render(lipgloss.JoinVertical(lipgloss.Left, content...))
}
