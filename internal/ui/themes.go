package ui

import (
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour set of the TUI. Each colour has a light and a dark
// terminal variant.
type Theme struct {
	Name string

	Accent     lipgloss.AdaptiveColor
	Heading    lipgloss.AdaptiveColor
	Subheading lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Border     lipgloss.AdaptiveColor
	// Highlight backs banners such as the selected analogs strip.
	Highlight lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var themes = map[string]Theme{
	// Brand orange, matching the access tier palette.
	"default": {
		Name:       "default",
		Accent:     adaptive("#BA5422", "#EB6620"),
		Heading:    adaptive("#BA5422", "#EB6620"),
		Subheading: adaptive("#32190A", "#FCC9B1"),
		Muted:      adaptive("#6B7280", "#9CA3AF"),
		Border:     adaptive("#D1D5DB", "#374151"),
		Highlight:  adaptive("#FDE9DE", "#32190A"),
		Text:       adaptive("#111827", "#F9FAFB"),
		Success:    adaptive("#059669", "#10B981"),
		Warning:    adaptive("#D97706", "#F59E0B"),
		Error:      adaptive("#DC2626", "#EF4444"),
		Info:       adaptive("#0891B2", "#06B6D4"),
	},
	"high-contrast": {
		Name:       "high-contrast",
		Accent:     adaptive("#000080", "#8080FF"),
		Heading:    adaptive("#000000", "#FFFFFF"),
		Subheading: adaptive("#000000", "#FFFFFF"),
		Muted:      adaptive("#444444", "#CCCCCC"),
		Border:     adaptive("#000000", "#FFFFFF"),
		Highlight:  adaptive("#FFFF00", "#444444"),
		Text:       adaptive("#000000", "#FFFFFF"),
		Success:    adaptive("#006600", "#00FF00"),
		Warning:    adaptive("#CC6600", "#FFAA00"),
		Error:      adaptive("#CC0000", "#FF4444"),
		Info:       adaptive("#0066CC", "#4499FF"),
	},
	"minimal": {
		Name:       "minimal",
		Accent:     adaptive("#4A5568", "#CBD5E0"),
		Heading:    adaptive("#2D3748", "#E2E8F0"),
		Subheading: adaptive("#718096", "#A0AEC0"),
		Muted:      adaptive("#A0AEC0", "#718096"),
		Border:     adaptive("#E2E8F0", "#2D3748"),
		Highlight:  adaptive("#F7FAFC", "#2D3748"),
		Text:       adaptive("#2D3748", "#F7FAFC"),
		Success:    adaptive("#2F855A", "#68D391"),
		Warning:    adaptive("#C05621", "#F6AD55"),
		Error:      adaptive("#C53030", "#FC8181"),
		Info:       adaptive("#2B6CB0", "#63B3ED"),
	},
}

var currentTheme = themes["default"]

// GetTheme returns the active theme.
func GetTheme() Theme {
	return currentTheme
}

// SetThemeByName activates a theme by name and reports whether it exists.
func SetThemeByName(name string) bool {
	t, ok := themes[name]
	if ok {
		currentTheme = t
	}
	return ok
}

// GetAvailableThemes lists the theme names in alphabetical order.
func GetAvailableThemes() []string {
	return slices.Sorted(maps.Keys(themes))
}

// Styles holds the styled building blocks of every page.
type Styles struct {
	Theme Theme

	Header    lipgloss.Style
	Subheader lipgloss.Style
	Brand     lipgloss.Style
	Muted     lipgloss.Style
	Help      lipgloss.Style
	Status    lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// Box frames the login card, Banner the strips above a page body.
	Box    lipgloss.Style
	Banner lipgloss.Style
}

// GetStyles builds the styles of the active theme.
func GetStyles() *Styles {
	t := GetTheme()
	fg := func(c lipgloss.AdaptiveColor) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	return &Styles{
		Theme: t,

		Header:    fg(t.Heading).Bold(true),
		Subheader: fg(t.Subheading).Bold(true),
		Brand:     fg(t.Accent).Bold(true),
		Muted:     fg(t.Muted),
		Help:      fg(t.Muted).Padding(0, 1),
		Status:    fg(t.Info).Italic(true),

		Success: fg(t.Success).Bold(true),
		Warning: fg(t.Warning).Bold(true),
		Error:   fg(t.Error).Bold(true),
		Info:    fg(t.Info),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 2),
		Banner: lipgloss.NewStyle().
			Background(t.Highlight).
			Foreground(t.Text).
			Padding(0, 1),
	}
}
