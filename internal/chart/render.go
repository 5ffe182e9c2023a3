package chart

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Slice is one segment of a donut or a stacked bar.
type Slice struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// StackRow is one stacked bar, e.g. a quarter of the access uptake chart.
type StackRow struct {
	Label    string  `json:"label" yaml:"label"`
	Segments []Slice `json:"segments" yaml:"segments"`
}

// Bar is a single labelled value of a comparison chart.
type Bar struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// MinBarLabel is the smallest stacked segment that still gets a label.
const MinBarLabel = 5.0

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
	numbers    = message.NewPrinter(language.AmericanEnglish)
)

// Donut renders a share breakdown as a two line proportional ring with a
// legend underneath. Percent labels use ContrastColor on their segment.
func Donut(title string, slices []Slice, width int, palette Palette) string {
	if palette == nil {
		palette = TierPalette
	}
	if width < len(slices) {
		width = len(slices)
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n")
	}

	values := make([]float64, len(slices))
	for i, s := range slices {
		values[i] = s.Value
	}
	cells := allocate(values, width)

	var top, mid strings.Builder
	for i, s := range slices {
		color := palette(s.Name)
		seg := lipgloss.NewStyle().
			Background(lipgloss.Color(color)).
			Foreground(lipgloss.Color(ContrastColor(color))).
			Bold(true)
		label := fmt.Sprintf("%g%%", s.Value)
		top.WriteString(seg.Render(strings.Repeat(" ", cells[i])))
		mid.WriteString(seg.Render(fit(label, cells[i])))
	}
	b.WriteString("╭" + top.String() + "╮\n")
	b.WriteString("╰" + mid.String() + "╯\n")

	names := make([]string, len(slices))
	for i, s := range slices {
		names[i] = fmt.Sprintf("%s %g%%", s.Name, s.Value)
	}
	b.WriteString(legend(names, func(i int) string { return palette(slices[i].Name) }))
	return b.String()
}

// Legend renders one coloured swatch per name.
func Legend(names []string, palette Palette) string {
	if palette == nil {
		palette = TierPalette
	}
	return legend(names, func(i int) string { return palette(names[i]) })
}

func legend(labels []string, color func(i int) string) string {
	var b strings.Builder
	for i, l := range labels {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(color(i))).Render("■")
		b.WriteString(swatch + " " + l + "\n")
	}
	return b.String()
}

// StackedBars renders one horizontal stacked bar per row. Rows share a
// scale so a row totalling less than the widest row draws shorter.
func StackedBars(rows []StackRow, width int, palette Palette) string {
	if palette == nil {
		palette = TierPalette
	}
	if len(rows) == 0 {
		return mutedStyle.Render("No data") + "\n"
	}

	labelWidth := 0
	maxTotal := 0.0
	for _, r := range rows {
		if w := lipgloss.Width(r.Label); w > labelWidth {
			labelWidth = w
		}
		if t := total(r.Segments); t > maxTotal {
			maxTotal = t
		}
	}
	barWidth := width - labelWidth - 1
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	for _, r := range rows {
		values := make([]float64, len(r.Segments))
		for i, s := range r.Segments {
			values[i] = s.Value
		}
		rowWidth := barWidth
		if maxTotal > 0 {
			rowWidth = int(math.Round(float64(barWidth) * total(r.Segments) / maxTotal))
		}
		cells := allocate(values, rowWidth)

		b.WriteString(lipgloss.NewStyle().Width(labelWidth).Render(r.Label))
		b.WriteString(" ")
		for i, s := range r.Segments {
			color := palette(s.Name)
			seg := lipgloss.NewStyle().
				Background(lipgloss.Color(color)).
				Foreground(lipgloss.Color(ContrastColor(color)))
			text := ""
			if s.Value >= MinBarLabel {
				text = fmt.Sprintf("%.1f%%", s.Value)
			}
			b.WriteString(seg.Render(fit(text, cells[i])))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ComparisonBars renders labelled horizontal bars scaled to the largest value.
func ComparisonBars(bars []Bar, width int, colors []string) string {
	if len(bars) == 0 {
		return mutedStyle.Render("No data") + "\n"
	}

	labelWidth := 0
	maxValue := 0.0
	for _, bar := range bars {
		if w := lipgloss.Width(bar.Label); w > labelWidth {
			labelWidth = w
		}
		maxValue = math.Max(maxValue, bar.Value)
	}
	barWidth := width - labelWidth - 10
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	for i, bar := range bars {
		filled := 0
		if maxValue > 0 {
			filled = int(math.Round(float64(barWidth) * bar.Value / maxValue))
		}
		if filled < 0 {
			filled = 0
		}
		color := "#EB6620"
		if i < len(colors) {
			color = colors[i]
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		b.WriteString(lipgloss.NewStyle().Width(labelWidth).Render(bar.Label))
		b.WriteString(" ")
		b.WriteString(style.Render(strings.Repeat("█", filled)))
		b.WriteString(mutedStyle.Render(strings.Repeat("░", barWidth-filled)))
		b.WriteString(" " + FormatValue(bar.Value))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatValue prints a chart value with thousands separators and no
// trailing zero decimals.
func FormatValue(v float64) string {
	if v == math.Trunc(v) {
		return numbers.Sprintf("%d", int64(v))
	}
	return numbers.Sprintf("%.1f", v)
}

// allocate splits width cells across values using the largest remainder
// method, so the cells always sum to width when any value is positive.
func allocate(values []float64, width int) []int {
	cells := make([]int, len(values))
	sum := 0.0
	for _, v := range values {
		if v > 0 {
			sum += v
		}
	}
	if sum == 0 || width <= 0 {
		return cells
	}

	type rem struct {
		idx  int
		frac float64
	}
	rems := make([]rem, 0, len(values))
	used := 0
	for i, v := range values {
		if v <= 0 {
			continue
		}
		exact := v / sum * float64(width)
		cells[i] = int(exact)
		used += cells[i]
		rems = append(rems, rem{i, exact - float64(cells[i])})
	}
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for i := 0; used < width && len(rems) > 0; i = (i + 1) % len(rems) {
		cells[rems[i].idx]++
		used++
	}
	return cells
}

// fit centres text in n cells, dropping it when it does not fit.
func fit(text string, n int) string {
	if n <= 0 {
		return ""
	}
	w := lipgloss.Width(text)
	if w == 0 || w > n {
		return strings.Repeat(" ", n)
	}
	left := (n - w) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", n-w-left)
}

func total(slices []Slice) float64 {
	t := 0.0
	for _, s := range slices {
		t += s.Value
	}
	return t
}
