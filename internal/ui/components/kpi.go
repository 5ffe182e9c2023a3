package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/SnookieTejas/launch-access-forecast/internal/emoji"
	"github.com/SnookieTejas/launch-access-forecast/internal/mockdata"
)

// KPIRotator cycles through the landing page highlights.
type KPIRotator struct {
	items []mockdata.KPI
	index int
}

// NewKPIRotator starts on the first KPI.
func NewKPIRotator(items []mockdata.KPI) *KPIRotator {
	return &KPIRotator{items: items}
}

// Next advances to the following KPI, wrapping around.
func (k *KPIRotator) Next() {
	if len(k.items) > 0 {
		k.index = (k.index + 1) % len(k.items)
	}
}

// Index is the position of the visible KPI.
func (k *KPIRotator) Index() int { return k.index }

// Current returns the visible KPI.
func (k *KPIRotator) Current() (mockdata.KPI, bool) {
	if len(k.items) == 0 {
		return mockdata.KPI{}, false
	}
	return k.items[k.index], true
}

// View renders the visible KPI with a dot per entry underneath.
func (k *KPIRotator) View() string {
	kpi, ok := k.Current()
	if !ok {
		return ""
	}
	color := lipgloss.Color(kpi.Color)
	if kpi.Color == "" {
		color = lipgloss.Color("#EB6620")
	}
	text := lipgloss.NewStyle().Foreground(color).Bold(true).Render(emoji.WithIcon(kpi.Icon, kpi.Label))

	dots := ""
	for i := range k.items {
		if i == k.index {
			dots += focusMark.Render("●")
		} else {
			dots += mutedText.Render("○")
		}
	}
	return text + "\n" + dots
}
