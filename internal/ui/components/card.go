package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/SnookieTejas/launch-access-forecast/internal/chart"
	"github.com/SnookieTejas/launch-access-forecast/internal/emoji"
	"github.com/SnookieTejas/launch-access-forecast/internal/mockdata"
)

// CardWidth is the outer width of a scenario card.
const CardWidth = 38

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}).
			Padding(0, 1).
			Width(CardWidth - 2)
	cardSelected = cardStyle.BorderForeground(lipgloss.Color("#EB6620"))
)

// ScenarioCard renders a dashboard tile.
func ScenarioCard(sc mockdata.ScenarioCard, selected bool) string {
	inner := CardWidth - 4

	var icons []string
	if sc.Pinned {
		icons = append(icons, emoji.GetEmoji("pin"))
	}
	if sc.Favorite {
		icons = append(icons, emoji.GetEmoji("star"))
	}

	header := Tag(sc.Tag, sc.TagColor)
	if len(icons) > 0 {
		iconText := strings.Join(icons, " ")
		gap := inner - lipgloss.Width(header) - lipgloss.Width(iconText)
		if gap < 1 {
			gap = 1
		}
		header += strings.Repeat(" ", gap) + iconText
	}

	lines := []string{
		header,
		labelStyle.Render(truncate.StringWithTail(sc.Title, uint(inner), "…")),
		mutedText.Render(truncate.StringWithTail(emoji.WithIcon("calendar", "Initiated "+sc.InitiatedDate+" by "+sc.CreatedBy), uint(inner), "…")),
		mutedText.Render(truncate.StringWithTail(emoji.WithIcon("clock", "Modified "+sc.LastModified+" by "+sc.LastModifiedBy), uint(inner), "…")),
	}

	style := cardStyle
	if selected {
		style = cardSelected
	}
	return style.Render(strings.Join(lines, "\n"))
}

// Tag renders a coloured pill with readable text.
func Tag(text, color string) string {
	if color == "" {
		return passiveOption.Render(text)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color(chart.ContrastColor(color))).
		Padding(0, 1).
		Render(text)
}
