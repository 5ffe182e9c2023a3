package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	tabActive   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#EB6620")).Padding(0, 2)
	tabInactive = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#374151", Dark: "#D1D5DB"}).Padding(0, 2)
	tabRule     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"})
)

// Tabs renders a tab bar with the active label highlighted and a rule
// underneath of the given width.
func Tabs(labels []string, active int, width int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			parts[i] = tabActive.Render(l)
		} else {
			parts[i] = tabInactive.Render(l)
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if width < lipgloss.Width(bar) {
		width = lipgloss.Width(bar)
	}
	return bar + "\n" + tabRule.Render(strings.Repeat("─", width))
}
