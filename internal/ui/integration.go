package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SnookieTejas/launch-access-forecast/internal/analog"
	"github.com/SnookieTejas/launch-access-forecast/internal/emoji"
	"github.com/SnookieTejas/launch-access-forecast/internal/nav"
	"github.com/SnookieTejas/launch-access-forecast/internal/ui/components"
)

// uploadFormats are the file types the upload panel accepts.
var uploadFormats = []struct{ name, desc string }{
	{"CSV", "comma separated"},
	{"XLSX", "Excel workbook"},
	{"JSON", "array of records"},
}

// analogMapping pairs the analog table columns with the dataset keys they
// are read from.
var analogMapping = []string{
	"name", "similarity_score", "cost_per_treatment", "relative_cost_ratio",
	"safety_vs_soc", "efficacy_vs_soc", "heor_ce", "competitive_launches",
	"order_of_entry", "portfolio_leverage", "unmet_need",
}

// integrationPage renders the three data integration panels.
type integrationPage struct {
	logs *components.LogViewer
}

func newIntegrationPage() *integrationPage {
	return &integrationPage{logs: components.NewLogViewer("Validation Logs", 90)}
}

func (p *integrationPage) typing() bool { return false }

func (p *integrationPage) update(m *Model, msg tea.KeyMsg) tea.Cmd {
	if m.ctrl.State().Subsection != nav.SubsectionValidation {
		return nil
	}
	p.refresh(m)
	switch msg.String() {
	case "down", "j", "l":
		p.logs.Next()
	case "up", "k", "h":
		p.logs.Previous()
	}
	return nil
}

// refresh rebuilds the validation entries when the data changed. The
// cursor survives a refresh that only moves the timestamps.
func (p *integrationPage) refresh(m *Model) {
	entries := validationEntries(m)
	if len(entries) != len(p.logs.Entries) {
		p.logs.SetEntries(entries)
		return
	}
	for i := range entries {
		old := p.logs.Entries[i]
		if entries[i].Message != old.Message || entries[i].Level != old.Level {
			p.logs.SetEntries(entries)
			return
		}
	}
}

// validationEntries checks the loaded datasets the way an import would.
func validationEntries(m *Model) []components.LogEntry {
	stamp := m.opts.Now().Format("15:04:05")
	entry := func(level, source, format string, args ...interface{}) components.LogEntry {
		return components.LogEntry{Time: stamp, Level: level, Source: source, Message: fmt.Sprintf(format, args...)}
	}

	entries := []components.LogEntry{
		entry("info", "loader", "data source: %s", m.store.Source()),
		entry("info", "scenarios", "%d scenario cards loaded", len(m.store.Scenarios())),
	}

	analogs := m.store.Analogs()
	entries = append(entries, entry("info", "analogs", "%d analogs loaded", len(analogs)))
	for _, a := range analogs {
		if a.SimilarityScore < 0 || a.SimilarityScore > 100 {
			entries = append(entries, entry("error", "analogs", "%s: similarity score %d outside 0-100", a.Name, a.SimilarityScore))
		}
		if a.CostPerTreatment == 0 {
			entries = append(entries, entry("warn", "analogs", "%s: missing cost per treatment", a.Name))
		}
	}

	for _, ch := range m.store.Channels() {
		if _, err := m.store.ForecastDonut(ch); err != nil {
			entries = append(entries, entry("error", "forecast", "%v", err))
		}
		if _, err := m.store.ForecastBars(ch); err != nil {
			entries = append(entries, entry("error", "forecast", "%v", err))
		}
	}

	brands := m.store.Brands()
	table := m.store.BrandComparison(brands)
	missing := 0
	for _, row := range table.Cells {
		for _, cell := range row {
			if cell == "-" {
				missing++
			}
		}
	}
	level := "info"
	if missing > 0 {
		level = "warn"
	}
	entries = append(entries, entry(level, "market", "%d brands, %d empty attribute cells", len(brands), missing))
	return entries
}

func (p *integrationPage) view(m *Model) string {
	switch m.ctrl.State().Subsection {
	case nav.SubsectionMapping:
		return p.viewMapping(m)
	case nav.SubsectionValidation:
		return p.viewValidation(m)
	}
	return p.viewUpload(m)
}

func (p *integrationPage) viewUpload(m *Model) string {
	drop := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(m.styles.Theme.Border).
		Padding(1, 6).
		Align(lipgloss.Center).
		Render(emoji.GetEmoji("upload") + "\n\nDrag and drop files here or pass --data FILE\n" +
			m.styles.Muted.Render("Supported formats: CSV, XLSX, JSON"))

	tiles := make([]components.StatTile, len(uploadFormats))
	for i, f := range uploadFormats {
		tiles[i] = components.StatTile{
			Icon:    emoji.GetEmoji("file"),
			Title:   f.name,
			Value:   "supported",
			Caption: f.desc,
			Tone:    components.ToneSuccess,
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Subheader.Render(emoji.WithIcon("upload", "Upload Data")),
		m.styles.Muted.Render("Upload external data sources to enhance forecasting accuracy."),
		"",
		drop,
		"",
		components.Tiles(tiles, len(tiles), 22, 4),
	)
}

func (p *integrationPage) viewMapping(m *Model) string {
	d := components.NewDetailViewer("Analog dataset", 90)
	lines := make([]string, len(analog.Columns))
	for i, col := range analog.Columns {
		key := ""
		if i < len(analogMapping) {
			key = analogMapping[i]
		}
		lines[i] = fmt.Sprintf("%-24s → %s", key, col)
	}
	d.AddSection(components.DetailSection{Title: "Field mapping", Content: lines, Style: "info"})
	d.AddSection(components.DetailSection{
		Title:   "Channels",
		Content: m.store.Channels(),
		Style:   "success",
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Subheader.Render(emoji.WithIcon("map", "Mapping View")),
		m.styles.Muted.Render("Map uploaded data fields to system attributes for proper integration."),
		"",
		d.Render(),
	)
}

func (p *integrationPage) viewValidation(m *Model) string {
	p.refresh(m)
	summary := fmt.Sprintf("%d errors · %d warnings · %d info", p.logs.Count("error"), p.logs.Count("warn"), p.logs.Count("info"))
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Subheader.Render(emoji.WithIcon("check", "Validation Logs")),
		m.styles.Muted.Render("Review data validation results and resolve any integration issues."),
		m.styles.Info.Render(summary),
		"",
		p.logs.Render(),
		m.styles.Help.Render("↑/↓ step through entries"),
	)
}
