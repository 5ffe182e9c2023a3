package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar shows how far a simulated delay has run.
type ProgressBar struct {
	Width     int
	StartTime time.Time
	Duration  time.Duration
	ShowETA   bool
	Label     string

	now func() time.Time
}

// NewProgressBar starts a bar for a delay of d.
func NewProgressBar(width int, d time.Duration) *ProgressBar {
	return &ProgressBar{
		Width:     width,
		StartTime: time.Now(),
		Duration:  d,
		ShowETA:   true,
		now:       time.Now,
	}
}

// SetClock replaces the time source.
func (p *ProgressBar) SetClock(now func() time.Time) {
	p.now = now
	p.StartTime = now()
}

// SetLabel sets the caption above the bar.
func (p *ProgressBar) SetLabel(label string) {
	p.Label = label
}

// Fraction is the elapsed share of the delay, 0..1.
func (p *ProgressBar) Fraction() float64 {
	if p.Duration <= 0 {
		return 1
	}
	f := float64(p.now().Sub(p.StartTime)) / float64(p.Duration)
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

// Render draws the bar.
func (p *ProgressBar) Render() string {
	progressStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#EB6620")).Bold(true)

	fraction := p.Fraction()
	filledWidth := int(float64(p.Width) * fraction)
	bar := progressStyle.Render(strings.Repeat("█", filledWidth)) +
		mutedText.Render(strings.Repeat("░", p.Width-filledWidth))

	status := fmt.Sprintf("%.0f%%", fraction*100)
	if p.ShowETA && fraction < 1 {
		remaining := p.Duration - p.now().Sub(p.StartTime)
		status += " ETA: " + formatDuration(remaining)
	}

	result := fmt.Sprintf("[%s] %s", bar, status)
	if p.Label != "" {
		result = p.Label + "\n" + result
	}
	return result
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
