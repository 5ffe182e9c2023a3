package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SnookieTejas/launch-access-forecast/internal/chart"
	"github.com/SnookieTejas/launch-access-forecast/internal/emoji"
	"github.com/SnookieTejas/launch-access-forecast/internal/forms"
	"github.com/SnookieTejas/launch-access-forecast/internal/scenario"
	"github.com/SnookieTejas/launch-access-forecast/internal/ui/components"
)

// variantColors colour the comparison chart bars.
var variantColors = map[scenario.Variant]string{
	scenario.VariantBase:           "#BA5422",
	scenario.VariantBetterEfficacy: "#EB6620",
	scenario.VariantLowerSafety:    "#FCC9B1",
}

func donutWidth(m *Model, n int) int {
	w, _ := m.size()
	width := (w-4)/n - 4
	if width > 36 {
		width = 36
	}
	if width < 12 {
		width = 12
	}
	return width
}

// channelDonuts renders one donut per channel side by side.
func channelDonuts(m *Model, load func(channel string) ([]chart.Slice, error)) string {
	channels := m.store.Channels()
	width := donutWidth(m, len(channels))
	blocks := make([]string, 0, len(channels))
	for _, ch := range channels {
		slices, err := load(ch)
		if err != nil {
			m.log.Warn("donut for %s: %v", ch, err)
			blocks = append(blocks, m.styles.Error.Render(ch+": no data"))
			continue
		}
		blocks = append(blocks, lipgloss.NewStyle().Width(width+4).Render(chart.Donut(ch, slices, width, chart.TierPalette)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func cycle(i, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}

// forecastPage is the access forecast of the access module.
type forecastPage struct {
	channel int
}

func newForecastPage(*Model) *forecastPage { return &forecastPage{} }

func (p *forecastPage) typing() bool { return false }

func (p *forecastPage) update(m *Model, msg tea.KeyMsg) tea.Cmd {
	n := len(m.store.Channels())
	switch msg.String() {
	case "c", "right", "l":
		p.channel = cycle(p.channel, 1, n)
	case "left", "h":
		p.channel = cycle(p.channel, -1, n)
	}
	return nil
}

func (p *forecastPage) view(m *Model) string {
	w, _ := m.size()
	analogs := m.ctrl.State().SelectedAnalogs
	banner := "No analogs selected, showing the reference forecast"
	if len(analogs) > 0 {
		banner = fmt.Sprintf("Forecast based on %d analogs: %s", len(analogs), strings.Join(analogs, ", "))
	}

	channels := m.store.Channels()
	if len(channels) == 0 {
		return m.styles.Muted.Render("No channels configured.")
	}
	channel := channels[cycle(p.channel, 0, len(channels))]

	rows, err := m.store.ForecastBars(channel)
	bars := ""
	if err != nil {
		bars = m.styles.Error.Render(err.Error())
	} else {
		bars = chart.StackedBars(rows, w-24, chart.TierPalette)
	}

	totals := make([]float64, len(rows))
	for i, r := range rows {
		for _, s := range r.Segments {
			totals[i] += s.Value
		}
	}
	spark := components.NewSparklineChart(totals, len(totals)).Render()

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Banner.Render(emoji.WithIcon("target", banner)),
		"",
		m.styles.Subheader.Render(emoji.WithIcon("pie", "Peak access at 24 months")),
		channelDonuts(m, m.store.ForecastDonut),
		chart.Legend(chart.TierNames(), chart.TierPalette),
		m.styles.Subheader.Render(emoji.WithIcon("bar", "Access uptake by quarter"))+"  "+
			m.styles.Muted.Render("channel: ")+m.styles.Brand.Render(channel),
		bars,
		m.styles.Muted.Render("Covered lives trend ")+spark,
		"",
		m.styles.Help.Render("c/←/→ channel"),
	)
}

// profileForm is the market profile form of an input selection tab.
type profileForm struct {
	attrs *forms.AssetAttributes
	form  *components.Form
}

// comparisonPage is the scenario comparison of the access module.
type comparisonPage struct {
	machine  *scenario.Machine
	channel  int
	options  *components.List
	profiles map[scenario.Tab]*profileForm
}

func newComparisonPage(m *Model, initial scenario.Tab) *comparisonPage {
	return &comparisonPage{
		machine:  scenario.NewMachine(initial),
		options:  components.NewList("Add scenario", 48),
		profiles: map[scenario.Tab]*profileForm{},
	}
}

func (p *comparisonPage) profile(m *Model) *profileForm {
	tab := p.machine.Active()
	if pr, ok := p.profiles[tab]; ok {
		return pr
	}
	attrs := forms.NewMarketProfile(m.store.MarketProfileOptions())
	form := components.NewForm(attributeFields(attrs, false, m.opts.Now)...)
	form.Describe = m.store.FieldDescription
	pr := &profileForm{attrs: attrs, form: form}
	p.profiles[tab] = pr
	return pr
}

func (p *comparisonPage) typing() bool {
	if p.machine.ModalOpen() {
		return true
	}
	if pr, ok := p.profiles[p.machine.Active()]; ok && p.machine.IsInputTab() {
		return pr.form.Typing()
	}
	return false
}

func (p *comparisonPage) update(m *Model, msg tea.KeyMsg) tea.Cmd {
	if p.machine.ModalOpen() {
		return p.updateModal(m, msg)
	}

	if p.machine.IsInputTab() {
		pr := p.profile(m)
		switch msg.String() {
		case "enter":
			return p.submit(m, pr)
		}
		if pr.form.Typing() {
			return pr.form.Update(msg)
		}
	}

	switch msg.String() {
	case "a":
		if !p.machine.AddEnabled() {
			return nil
		}
		p.machine.AddScenario()
		if p.machine.ModalOpen() {
			p.openModal()
		}
		return nil
	case "t":
		tabs := p.machine.VisibleTabs()
		for i, t := range tabs {
			if t == p.machine.Active() {
				p.machine.SetActive(tabs[cycle(i, 1, len(tabs))])
				break
			}
		}
		return nil
	case "l":
		p.machine.SetLowerSafetyLocked(!p.machine.LowerSafetyLocked())
		return nil
	case "c":
		p.channel = cycle(p.channel, 1, len(m.store.Channels()))
		return nil
	case "v":
		p.stepVariant(m, p.machine.DonutVariant(), p.machine.SetPeakVariant)
		return nil
	case "u":
		p.stepVariant(m, p.machine.BarVariant(), p.machine.SetUptakeVariant)
		return nil
	}

	if p.machine.IsInputTab() {
		return p.profile(m).form.Update(msg)
	}
	return nil
}

func (p *comparisonPage) submit(m *Model, pr *profileForm) tea.Cmd {
	if err := p.machine.Submit(); err != nil {
		m.log.Warn("market profile submit: %v", err)
		return nil
	}
	m.log.Debug("market profile submitted, now on %s (%s)", p.machine.Active(), pr.attrs.ChannelMixHint())
	return nil
}

func (p *comparisonPage) stepVariant(m *Model, current scenario.Variant, set func(scenario.Variant) error) {
	choices := p.machine.VariantChoices()
	if len(choices) == 0 {
		return
	}
	next := choices[0]
	for i, v := range choices {
		if v == current {
			next = choices[cycle(i, 1, len(choices))]
		}
	}
	if err := set(next); err != nil {
		m.log.Warn("variant change: %v", err)
	}
}

func (p *comparisonPage) openModal() {
	opts := p.machine.ModalOptions()
	items := make([]components.ListItem, len(opts))
	for i, o := range opts {
		items[i] = components.ListItem{ID: string(o), Title: o.Title(), Description: o.Description()}
	}
	p.options.SetItems(items)
}

func (p *comparisonPage) updateModal(m *Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.machine.CloseModal()
	case "up", "k":
		p.options.MoveUp()
	case "down", "j":
		p.options.MoveDown()
	case "enter":
		item := p.options.SelectedItem()
		if item == nil {
			p.machine.CloseModal()
			return nil
		}
		if err := p.machine.Select(scenario.Option(item.ID)); err != nil {
			m.log.Warn("scenario option: %v", err)
			return nil
		}
		m.log.Debug("scenario option %s selected, now on %s", item.ID, p.machine.Active())
	}
	return nil
}

func (p *comparisonPage) view(m *Model) string {
	w, _ := m.size()
	tabs := p.machine.VisibleTabs()
	labels := make([]string, len(tabs))
	active := 0
	for i, t := range tabs {
		labels[i] = scenario.TabLabel(t)
		if t == p.machine.Active() {
			active = i
		}
	}

	lock := "○ Lower safety lock"
	if p.machine.LowerSafetyLocked() {
		lock = "● Lower safety lock"
	}
	add := m.styles.Brand.Render(emoji.WithIcon("plus", "Add scenario (a)"))
	if !p.machine.AddEnabled() {
		add = m.styles.Muted.Render(emoji.WithIcon("plus", "Add scenario"))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Center,
		components.Tabs(labels, active, w/2), "  ", add, "  ", m.styles.Muted.Render(lock+" (l)"))

	var body string
	switch {
	case p.machine.ModalOpen():
		modal := components.Modal{
			Title:  emoji.WithIcon("sparkles", "Select scenario type"),
			Body:   p.options.Render(),
			Footer: "↑/↓ choose · enter select · esc close",
			Width:  54,
		}
		body = modal.Render()
	case p.machine.IsInputTab():
		body = p.viewProfile(m)
	case p.machine.ShowsCharts():
		body = p.viewCharts(m)
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, "", body)
}

func (p *comparisonPage) viewProfile(m *Model) string {
	pr := p.profile(m)
	_, h := m.size()
	window := (h - 18) / 3
	if window < 3 {
		window = 3
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Subheader.Render("Market profile"),
		pr.form.View(window),
		m.styles.Info.Render(pr.attrs.ChannelMixHint()),
		"",
		m.styles.Help.Render("enter submit · tab next field · t switch tab"),
	)
}

func (p *comparisonPage) viewCharts(m *Model) string {
	w, _ := m.size()
	channels := m.store.Channels()
	if len(channels) == 0 {
		return m.styles.Muted.Render("No channels configured.")
	}
	channel := channels[cycle(p.channel, 0, len(channels))]
	donutVariant, barVariant := p.machine.DonutVariant(), p.machine.BarVariant()

	peakTitle := emoji.WithIcon("pie", "Peak access at 24 months")
	uptakeTitle := emoji.WithIcon("bar", "Access uptake by quarter")
	if len(p.machine.VariantChoices()) > 0 {
		peakTitle += m.styles.Muted.Render("  dataset: ") + m.styles.Brand.Render(donutVariant.Label()) + m.styles.Muted.Render(" (v)")
		uptakeTitle += m.styles.Muted.Render("  dataset: ") + m.styles.Brand.Render(barVariant.Label()) + m.styles.Muted.Render(" (u)")
	}

	donuts := channelDonuts(m, func(ch string) ([]chart.Slice, error) {
		return m.store.ComparisonDonut(donutVariant, ch)
	})

	bars := ""
	if rows, err := m.store.ComparisonBars(barVariant, channel); err != nil {
		bars = m.styles.Error.Render(err.Error())
	} else {
		bars = chart.StackedBars(rows, w-24, chart.TierPalette)
	}

	series := p.machine.SeriesVariants()
	headers := []string{"TPP attribute"}
	colors := make([]string, len(series))
	for i, v := range series {
		headers = append(headers, v.Label())
		colors[i] = variantColors[v]
	}
	var rows [][]string
	for _, attr := range m.store.TPPAttributes() {
		row := []string{attr.Attribute}
		for _, v := range series {
			row = append(row, attr.Value(v))
		}
		rows = append(rows, row)
	}
	tpp := components.Table{Headers: headers, Rows: rows, MaxCell: components.MaxCellWidth}.Render()

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Subheader.Render(peakTitle),
		donuts,
		m.styles.Subheader.Render(uptakeTitle)+m.styles.Muted.Render("  channel: ")+m.styles.Brand.Render(channel)+m.styles.Muted.Render(" (c)"),
		bars,
		m.styles.Subheader.Render(emoji.WithIcon("scale", "Target product profile")),
		tpp,
		"",
		m.styles.Subheader.Render(emoji.WithIcon("trending", "Scenario comparison")),
		chart.ComparisonBars(m.store.ComparisonChart(series), w-8, colors),
	)
}

// marketPage is the market share comparison of the access module.
type marketPage struct {
	brands    *forms.MultiSelect
	list      *components.Checklist
	comparing bool
}

func newMarketPage(m *Model) *marketPage {
	ms := forms.NewMultiSelect(m.store.Brands(), "Select brands")
	return &marketPage{brands: ms, list: components.NewChecklist("Brands", ms)}
}

func (p *marketPage) typing() bool { return p.list.Typing() }

func (p *marketPage) update(m *Model, msg tea.KeyMsg) tea.Cmd {
	if p.comparing {
		if msg.String() == "esc" {
			p.comparing = false
		}
		return nil
	}
	if !p.list.Typing() && msg.String() == "enter" {
		if len(p.brands.Selected()) == 0 {
			return m.flash("%s Select at least one brand to compare", emoji.GetEmoji("warning"))
		}
		p.comparing = true
		m.log.Debug("comparing brands: %s", strings.Join(p.brands.Selected(), ", "))
		return nil
	}
	return p.list.Update(msg)
}

func (p *marketPage) view(m *Model) string {
	selected := p.brands.Selected()
	if p.comparing {
		return p.viewComparison(m, selected)
	}

	compare := m.styles.Brand.Render("[ Compare ]") + m.styles.Muted.Render(" enter")
	if len(selected) == 0 {
		compare = m.styles.Muted.Render("[ Compare ] select a brand first")
	}

	table := m.styles.Muted.Render("Select brands to see their target product profiles.")
	if len(selected) > 0 {
		bt := m.store.BrandComparison(selected)
		table = renderBrandTable(bt.Attributes, bt.Brands, bt.Cells)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Subheader.Render("Market Share Comparison"),
		"",
		m.styles.Muted.Render(p.brands.DisplayText()),
		p.list.View(true),
		"",
		compare,
		"",
		table,
	)
}

func renderBrandTable(attrs, brands []string, cells [][]string) string {
	headers := append([]string{"Attribute"}, brands...)
	rows := make([][]string, len(attrs))
	for i, a := range attrs {
		rows[i] = append([]string{a}, cells[i]...)
	}
	return components.Table{Headers: headers, Rows: rows, MaxCell: components.MaxCellWidth}.Render()
}

func (p *marketPage) viewComparison(m *Model, selected []string) string {
	palette := m.store.BrandPalette()
	scenarios := m.store.MarketScenarios()
	width := donutWidth(m, len(scenarios))

	blocks := make([]string, 0, len(scenarios))
	for _, sc := range scenarios {
		slices, err := m.store.BrandShares(sc, selected)
		if err != nil {
			m.log.Warn("brand shares: %v", err)
			continue
		}
		blocks = append(blocks, lipgloss.NewStyle().Width(width+4).Render(chart.Donut(sc, slices, width, palette)))
	}

	attrs := m.store.BrandAttributes(selected)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Subheader.Render(emoji.WithIcon("pie", "Market share by scenario")),
		lipgloss.JoinHorizontal(lipgloss.Top, blocks...),
		m.styles.Subheader.Render(emoji.WithIcon("tag", "Brand attributes")),
		renderBrandTable(attrs.Attributes, attrs.Brands, attrs.Cells),
		"",
		m.styles.Help.Render("esc back to brand selection"),
	)
}
