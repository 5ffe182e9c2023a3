package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SnookieTejas/launch-access-forecast/internal/analog"
	"github.com/SnookieTejas/launch-access-forecast/internal/emoji"
	"github.com/SnookieTejas/launch-access-forecast/internal/forms"
	"github.com/SnookieTejas/launch-access-forecast/internal/logger"
	"github.com/SnookieTejas/launch-access-forecast/internal/ui/components"
)

// assetPage is the asset attributes form of the simulation module.
type assetPage struct {
	attrs    *forms.AssetAttributes
	form     *components.Form
	progress *components.ProgressBar
	scenario string
}

// newAssetPage prefills the basics from the create-scenario modal when data
// is non-nil.
func newAssetPage(m *Model, data *forms.ScenarioFormData) *assetPage {
	attrs := forms.NewAssetAttributes(m.store.AssetOptions(), data)
	p := &assetPage{attrs: attrs}
	if data != nil {
		p.scenario = data.ScenarioName
	}
	p.form = components.NewForm(attributeFields(attrs, true, m.opts.Now)...)
	p.form.Describe = m.store.FieldDescription
	return p
}

func (p *assetPage) typing() bool { return p.form.Typing() }

func (p *assetPage) update(m *Model, msg tea.KeyMsg) tea.Cmd {
	if m.waiting(delayAssetSubmit) {
		return nil
	}

	switch msg.String() {
	case "enter":
		p.progress = components.NewProgressBar(30, AssetSubmitDelay)
		p.progress.SetClock(m.opts.Now)
		p.progress.SetLabel("Saving asset attributes...")
		m.log.DebugWithFields("asset attributes submitted", p.fields())
		return m.startDelay(delayAssetSubmit, AssetSubmitDelay)
	case "ctrl+s":
		m.log.InfoWithFields("asset attributes draft saved", p.fields())
		return m.flash("%s Draft saved", emoji.GetEmoji("success"))
	}
	return p.form.Update(msg)
}

func (p *assetPage) fields() []logger.Field {
	summary := p.attrs.Summary()
	out := make([]logger.Field, 0, len(summary))
	for _, kv := range summary {
		out = append(out, logger.F(kv[0], kv[1]))
	}
	return out
}

func (p *assetPage) view(m *Model) string {
	var parts []string
	if p.scenario != "" {
		parts = append(parts, m.styles.Banner.Render(emoji.WithIcon("file", "Scenario: "+p.scenario)), "")
	}

	_, h := m.size()
	window := (h - 16) / 3
	if window < 3 {
		window = 3
	}
	parts = append(parts,
		m.styles.Subheader.Render("Asset Attributes"),
		m.styles.Muted.Render(fmt.Sprintf("Field %d of %d", p.form.FocusIndex()+1, len(p.form.Fields))),
		"",
		p.form.View(window),
		m.styles.Info.Render(p.attrs.ChannelMixHint()),
	)

	if m.waiting(delayAssetSubmit) && p.progress != nil {
		parts = append(parts, "", m.spinner.View()+" "+p.progress.Render())
	} else {
		parts = append(parts, "", m.styles.Help.Render("enter submit · ctrl+s save draft · tab next field · ←/→ change value"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// analogPage is the analog selection of the simulation module.
type analogPage struct {
	data     []analog.Analog
	names    *forms.MultiSelect
	list     *components.Checklist
	rng      forms.DualRange
	rngField *components.DualRangeField
	sort     analog.SortDirection
	focus    int
	progress *components.ProgressBar
}

func newAnalogPage(m *Model) *analogPage {
	data := m.store.Analogs()
	q := analog.DefaultQuery()
	p := &analogPage{
		data:  data,
		names: forms.NewMultiSelect(analog.Names(data), "Select analogs"),
		rng:   forms.NewDualRange(q.MinScore, q.MaxScore),
		sort:  q.Sort,
	}
	p.list = components.NewChecklist("Analogs", p.names)
	p.rngField = components.NewDualRangeField("Similarity score", &p.rng)
	return p
}

func (p *analogPage) selected() []string { return p.names.Selected() }

func (p *analogPage) query() analog.Query {
	lo, hi := p.rng.Bounds()
	return analog.Query{MinScore: lo, MaxScore: hi, Selected: p.names.Selected(), Sort: p.sort}
}

func (p *analogPage) typing() bool { return p.list.Typing() }

func (p *analogPage) update(m *Model, msg tea.KeyMsg) tea.Cmd {
	if m.waiting(delayAnalogSubmit) {
		return nil
	}
	if p.list.Typing() {
		return p.list.Update(msg)
	}

	switch msg.String() {
	case "tab", "shift+tab":
		p.focus = 1 - p.focus
		if p.focus == 1 {
			p.list.Blur()
		}
		return nil
	case "s":
		p.sort = p.sort.Next()
		m.log.Debug("analog sort %s", p.sort)
		return nil
	case "enter":
		p.progress = components.NewProgressBar(30, m.opts.SubmitDelay)
		p.progress.SetClock(m.opts.Now)
		p.progress.SetLabel("Running access forecast...")
		m.log.Debug("analog selection submitted: %s", strings.Join(p.selected(), ", "))
		return m.startDelay(delayAnalogSubmit, m.opts.SubmitDelay)
	}

	if p.focus == 0 {
		return p.list.Update(msg)
	}
	return p.rngField.Update(msg)
}

func (p *analogPage) view(m *Model) string {
	mark := func(i int, s string) string {
		if p.focus == i {
			return m.styles.Brand.Render("▌ ") + s
		}
		return "  " + s
	}

	picker := lipgloss.JoinVertical(lipgloss.Left,
		mark(0, m.styles.Subheader.Render("Analogs")+"  "+m.styles.Muted.Render(p.names.DisplayText())),
		p.list.View(p.focus == 0),
	)
	lo, hi := p.rng.Bounds()
	similarity := lipgloss.JoinVertical(lipgloss.Left,
		mark(1, m.styles.Subheader.Render("Similarity score")+"  "+m.styles.Muted.Render(fmt.Sprintf("%d%% - %d%%", lo, hi))),
		"  "+p.rngField.View(p.focus == 1),
		"",
		m.styles.Muted.Render("  space switch handle · ←/→ move · L/H by ten"),
	)
	top := lipgloss.JoinHorizontal(lipgloss.Top, picker, "    ", similarity)

	rows := analog.Apply(p.data, p.query())
	var table string
	if len(rows) == 0 {
		table = m.styles.Warning.Render(analog.EmptyMessage) + "\n" + m.styles.Muted.Render(analog.EmptyHint)
	} else {
		headers := append([]string(nil), analog.Columns...)
		headers[1] = headers[1] + " " + p.sort.Arrow()
		body := make([][]string, len(rows))
		for i, a := range rows {
			body[i] = a.Row()
		}
		table = components.Table{Headers: headers, Rows: body, MaxCell: components.MaxCellWidth}.Render()
	}

	footer := m.styles.Help.Render("tab switch control · space toggle · a select all · / search · s sort · enter submit")
	if m.waiting(delayAnalogSubmit) && p.progress != nil {
		footer = m.spinner.View() + " " + p.progress.Render()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Subheader.Render("Analog Selection"),
		"",
		top,
		"",
		m.styles.Muted.Render(fmt.Sprintf("%d analogs shown", len(rows))),
		table,
		"",
		footer,
	)
}
