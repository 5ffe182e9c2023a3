package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Tone colours the value of a tile.
type Tone int

const (
	ToneInfo Tone = iota
	ToneSuccess
	ToneWarning
	ToneError
)

// ToneFor maps a status name ("success", "warning"/"warn", "error") to its
// tone. Anything else is ToneInfo.
func ToneFor(status string) Tone {
	switch status {
	case "success":
		return ToneSuccess
	case "warning", "warn":
		return ToneWarning
	case "error":
		return ToneError
	}
	return ToneInfo
}

func (t Tone) color() lipgloss.AdaptiveColor {
	switch t {
	case ToneSuccess:
		return lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}
	case ToneWarning:
		return lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}
	case ToneError:
		return lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	}
	return lipgloss.AdaptiveColor{Light: "#BA5422", Dark: "#EE8045"}
}

// StatTile is a small boxed figure: icon and title, a coloured value and a
// muted caption.
type StatTile struct {
	Icon    string
	Title   string
	Value   string
	Caption string
	Tone    Tone
}

var tileBorder = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}

// Render draws the tile at the given outer size.
func (s StatTile) Render(width, height int) string {
	title := labelStyle.Render(s.Title)
	if s.Icon != "" {
		title = s.Icon + " " + title
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tileBorder).
		Padding(0, 1).
		Width(width).
		Height(height).
		Render(lipgloss.JoinVertical(lipgloss.Center,
			title,
			lipgloss.NewStyle().Foreground(s.Tone.color()).Bold(true).Render(s.Value),
			mutedText.Render(s.Caption),
		))
}

// Tiles renders equally sized tiles, columns per row.
func Tiles(tiles []StatTile, columns, width, height int) string {
	blocks := make([]string, len(tiles))
	for i, t := range tiles {
		blocks[i] = t.Render(width, height)
	}
	return Grid(blocks, columns)
}

// Grid joins pre-rendered blocks into rows of columns blocks.
func Grid(blocks []string, columns int) string {
	if len(blocks) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}
	var rows []string
	for i := 0; i < len(blocks); i += columns {
		end := min(i+columns, len(blocks))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, blocks[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
