package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/SnookieTejas/launch-access-forecast/internal/emoji"
	"github.com/SnookieTejas/launch-access-forecast/internal/forms"
	"github.com/SnookieTejas/launch-access-forecast/internal/mockdata"
	"github.com/SnookieTejas/launch-access-forecast/internal/ui/components"
)

const (
	labelScenarioName = "Scenario name"
	labelTherapyArea  = "Therapy area"
	labelIndication   = "Indication"
	labelTimeframe    = "Timeframe for forecast"
)

// createFieldLabels maps form error keys to the field they belong to.
var createFieldLabels = map[string]string{
	forms.FieldScenarioName: labelScenarioName,
	forms.FieldTherapyArea:  labelTherapyArea,
	forms.FieldIndication:   labelIndication,
	forms.FieldTimeframe:    labelTimeframe,
}

type dashboardPage struct {
	cards     []mockdata.ScenarioCard
	search    textinput.Model
	searching bool
	cursor    int

	create     *forms.CreateScenarioForm
	createOpen bool
	createForm *components.Form
	area       *forms.Select
	indication *forms.Select
	dates      forms.DateRange
	name       *components.TextField
}

func newDashboardPage(m *Model) *dashboardPage {
	ti := textinput.New()
	ti.Prompt = emoji.GetEmoji("search") + " "
	ti.Placeholder = "Search scenarios..."
	ti.CharLimit = 60
	ti.Width = 40

	p := &dashboardPage{search: ti}
	p.reload(m)
	return p
}

// reload takes fresh card copies and rebuilds the create form over the
// current therapy area catalog.
func (p *dashboardPage) reload(m *Model) {
	p.cards = m.store.Scenarios()
	p.create = forms.NewCreateScenarioForm(m.store.TherapyAreaCatalog(), nil).WithIDGenerator(uuid.NewString)
	p.buildCreateForm(m)
	p.clampCursor()
}

func (p *dashboardPage) buildCreateForm(m *Model) {
	p.dates = forms.DateRange{}
	p.area = &forms.Select{Options: p.create.TherapyAreas(), Placeholder: "Select therapy area"}
	p.indication = &forms.Select{Placeholder: "Select indication", Disabled: true}

	p.name = components.NewTextField(labelScenarioName, "Enter scenario name", "")
	p.name.OnChange = p.create.SetScenarioName

	area := components.NewSelectField(labelTherapyArea, p.area)
	area.OnChange = func(v string) {
		p.create.SetTherapyArea(v)
		p.indication.Options = p.create.AvailableIndications()
		p.indication.Value = ""
		p.indication.Disabled = v == ""
	}

	indication := components.NewSelectField(labelIndication, p.indication)
	indication.OnChange = p.create.SetIndication

	dates := components.NewDateField(labelTimeframe, &p.dates, m.opts.Now)
	dates.OnChange = p.create.SetDates

	p.createForm = components.NewForm(p.name, area, indication, dates)
	p.createForm.Width = 60
}

func (p *dashboardPage) typing() bool { return p.searching || p.createOpen }

func (p *dashboardPage) visible() []mockdata.ScenarioCard {
	return mockdata.FilterScenarios(p.cards, p.search.Value())
}

func (p *dashboardPage) clampCursor() {
	n := len(p.visible())
	if p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *dashboardPage) columns(m *Model) int {
	w, _ := m.size()
	cols := (w - 4) / components.CardWidth
	if cols < 1 {
		cols = 1
	}
	return cols
}

func (p *dashboardPage) update(m *Model, msg tea.KeyMsg) tea.Cmd {
	if p.createOpen {
		return p.updateCreate(m, msg)
	}
	if p.searching {
		switch msg.String() {
		case "esc", "enter":
			p.searching = false
			p.search.Blur()
			return nil
		}
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(msg)
		p.clampCursor()
		return cmd
	}

	visible := p.visible()
	cols := p.columns(m)
	switch msg.String() {
	case "q":
		return tea.Quit
	case "?":
		m.showHelp = true
	case "/":
		p.searching = true
		return p.search.Focus()
	case "esc":
		p.search.SetValue("")
		p.clampCursor()
	case "left", "h":
		p.move(-1, len(visible))
	case "right", "l":
		p.move(1, len(visible))
	case "up", "k":
		p.move(-cols, len(visible))
	case "down", "j":
		p.move(cols, len(visible))
	case "f":
		p.toggle(visible, func(c *mockdata.ScenarioCard) { c.Favorite = !c.Favorite })
	case "p":
		p.toggle(visible, func(c *mockdata.ScenarioCard) { c.Pinned = !c.Pinned })
	case "n":
		p.createOpen = true
		return p.createForm.FocusLabel(labelScenarioName)
	case "enter":
		if p.cursor >= len(visible) {
			return nil
		}
		card := visible[p.cursor]
		if card.ID != 1 && card.ID != 2 {
			m.log.Debug("scenario card %d has no comparison view", card.ID)
			return nil
		}
		return m.beginTransition(m.ctrl.NavigateToScenarioComparison(card.ID))
	}
	return nil
}

func (p *dashboardPage) move(delta, n int) {
	next := p.cursor + delta
	if next >= 0 && next < n {
		p.cursor = next
	}
}

func (p *dashboardPage) toggle(visible []mockdata.ScenarioCard, fn func(*mockdata.ScenarioCard)) {
	if p.cursor >= len(visible) {
		return
	}
	id := visible[p.cursor].ID
	for i := range p.cards {
		if p.cards[i].ID == id {
			fn(&p.cards[i])
			return
		}
	}
}

func (p *dashboardPage) updateCreate(m *Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.closeCreate(m)
		return nil
	case "enter":
		data, errs := p.create.Submit()
		if errs != nil {
			p.createForm.Errors = map[string]string{}
			for key, text := range errs {
				p.createForm.Errors[createFieldLabels[key]] = text
			}
			m.log.Debug("create scenario rejected: %d errors", len(errs))
			return nil
		}
		m.log.Info("scenario %q created (%s)", data.ScenarioName, data.ID)
		p.closeCreate(m)
		return m.beginTransition(m.ctrl.NavigateToSimulation(&data))
	}
	return p.createForm.Update(msg)
}

func (p *dashboardPage) closeCreate(m *Model) {
	p.createOpen = false
	p.create.Reset()
	p.buildCreateForm(m)
}

func (p *dashboardPage) view(m *Model) string {
	w, h := m.size()
	if p.createOpen {
		return p.viewCreate(m, w, h)
	}

	header := m.styles.Brand.Render(emoji.WithIcon("pill", "Launch Access Forecast")) + "  " +
		m.styles.Header.Render("Scenarios")

	search := p.search.View()
	if !p.searching && p.search.Value() == "" {
		search = m.styles.Muted.Render(emoji.WithIcon("search", "press / to search"))
	}

	visible := p.visible()
	var grid string
	if len(visible) == 0 {
		grid = m.styles.Muted.Render("No scenarios match your search.")
	} else {
		blocks := make([]string, len(visible))
		for i, card := range visible {
			blocks[i] = components.ScenarioCard(card, i == p.cursor)
		}
		grid = components.Grid(blocks, p.columns(m))
	}

	count := m.styles.Muted.Render(fmt.Sprintf("%d of %d scenarios", len(visible), len(p.cards)))
	footer := m.styles.Help.Render("n new scenario · enter open · f favourite · p pin · / search · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", search+"  "+count, "", grid, "", footer)
}

func (p *dashboardPage) viewCreate(m *Model, w, h int) string {
	modal := components.Modal{
		Title:  emoji.WithIcon("plus", "Create Scenario"),
		Body:   p.createForm.View(0),
		Footer: "tab next field · ←/→ choose · enter create · esc cancel",
		Width:  64,
	}
	return modal.Overlay(w, h-1)
}
