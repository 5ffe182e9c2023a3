package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Modal is a bordered dialog drawn over the centre of the screen.
type Modal struct {
	Title  string
	Body   string
	Footer string
	Width  int
}

var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#EB6620")).
			Padding(1, 2)
	modalTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EB6620"))
)

// Render draws the dialog box.
func (m Modal) Render() string {
	parts := []string{}
	if m.Title != "" {
		parts = append(parts, modalTitle.Render(m.Title), "")
	}
	parts = append(parts, m.Body)
	if m.Footer != "" {
		parts = append(parts, "", mutedText.Render(m.Footer))
	}

	style := modalStyle
	if m.Width > 0 {
		style = style.Width(m.Width)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Overlay centres the dialog in a width x height area. The page behind it
// is not drawn, which keeps the dialog readable on small terminals.
func (m Modal) Overlay(width, height int) string {
	if width <= 0 || height <= 0 {
		return m.Render()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.Render())
}
