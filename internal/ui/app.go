package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/SnookieTejas/launch-access-forecast/internal/emoji"
	"github.com/SnookieTejas/launch-access-forecast/internal/logger"
	"github.com/SnookieTejas/launch-access-forecast/internal/mockdata"
	"github.com/SnookieTejas/launch-access-forecast/internal/nav"
	"github.com/SnookieTejas/launch-access-forecast/internal/ui/components"
)

// Simulated waits that are not navigation fades.
const (
	RequestAccessDelay = 2500 * time.Millisecond
	AssetSubmitDelay   = 600 * time.Millisecond
	statusDuration     = 4 * time.Second
)

// Options configure the TUI.
type Options struct {
	Store     *mockdata.Store
	Theme     string
	SkipLogin bool
	// StartModule opens the app on a module id such as "access" and implies
	// SkipLogin.
	StartModule     string
	LoginDelay      time.Duration
	TransitionDelay time.Duration
	SubmitDelay     time.Duration
	KPIInterval     time.Duration
	Animations      bool
	Logger          *logger.Logger
	Now             func() time.Time
}

// DefaultOptions mirrors the defaults of the config file.
func DefaultOptions() Options {
	return Options{
		Theme:           "default",
		LoginDelay:      nav.DefaultLoginDelay,
		TransitionDelay: nav.DefaultTransitionDelay,
		SubmitDelay:     3 * time.Second,
		KPIInterval:     3500 * time.Millisecond,
		Animations:      true,
	}
}

// page is one screen body. Pages keep their own widget state and read
// shared state through the model.
type page interface {
	update(m *Model, msg tea.KeyMsg) tea.Cmd
	view(m *Model) string
	// typing reports whether the page wants every key, e.g. while a text
	// field or a modal has focus.
	typing() bool
}

// Model is the root Bubble Tea model.
type Model struct {
	opts   Options
	store  *mockdata.Store
	ctrl   *nav.Controller
	styles *Styles
	keys   KeyMap
	help   help.Model
	log    *logger.Logger

	width  int
	height int
	offset int

	spinner  spinner.Model
	spinning bool

	seq    uint64
	delays map[delayKind]uint64

	showHelp  bool
	helpCache string
	helpWidth int
	status    string

	landing     *landingPage
	dashboard   *dashboardPage
	asset       *assetPage
	analogs     *analogPage
	forecast    *forecastPage
	comparison  *comparisonPage
	market      *marketPage
	integration *integrationPage
}

// New builds the model. A nil store loads the embedded data.
func New(opts Options) (*Model, error) {
	if opts.Store == nil {
		store, err := mockdata.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load mock data: %w", err)
		}
		opts.Store = store
	}
	if opts.Theme != "" && !SetThemeByName(opts.Theme) {
		return nil, fmt.Errorf("unknown theme: %s (must be one of: %s)", opts.Theme, strings.Join(GetAvailableThemes(), ", "))
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(GetTheme().Accent)

	m := &Model{
		opts:    opts,
		store:   opts.Store,
		styles:  GetStyles(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		log:     opts.Logger.WithComponent("ui"),
		spinner: sp,
		delays:  map[delayKind]uint64{},
	}
	m.ctrl = nav.NewController(
		nav.WithLoginDelay(opts.LoginDelay),
		nav.WithTransitionDelay(opts.TransitionDelay),
		nav.WithLogger(opts.Logger.WithComponent("nav")),
		nav.WithScrollHook(func(nav.ScrollReason) {
			m.offset = 0
			m.cancelPageDelays()
		}),
	)

	m.landing = newLandingPage(m)
	m.dashboard = newDashboardPage(m)
	m.asset = newAssetPage(m, nil)
	m.analogs = newAnalogPage(m)
	m.forecast = newForecastPage(m)
	m.comparison = newComparisonPage(m, m.ctrl.State().InitialScenarioTab)
	m.market = newMarketPage(m)
	m.integration = newIntegrationPage()

	if opts.SkipLogin || opts.StartModule != "" {
		p := m.ctrl.Login()
		m.ctrl.Complete(p.ID)
	}
	if opts.StartModule != "" {
		mod, err := nav.ParseModule(opts.StartModule)
		if err != nil {
			return nil, err
		}
		p := m.ctrl.NavigateToSimulation(nil)
		m.ctrl.Complete(p.ID)
		m.ctrl.ChangeModule(mod)
	}
	return m, nil
}

// Controller exposes the navigation state, mainly for tests.
func (m *Model) Controller() *nav.Controller { return m.ctrl }

// Store returns the data currently shown.
func (m *Model) Store() *mockdata.Store { return m.store }

// Init starts the KPI rotation and the cursor blink.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.opts.Animations && m.opts.KPIInterval > 0 && m.ctrl.State().Screen == nav.ScreenLanding {
		cmds = append(cmds, kpiTick(m.opts.KPIInterval))
	}
	return tea.Batch(cmds...)
}

// Update dispatches messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)
	case transitionMsg:
		return m, m.handleTransition(msg)
	case delayMsg:
		return m, m.handleDelay(msg)
	case kpiTickMsg:
		return m, m.handleKPITick()
	case spinner.TickMsg:
		if !m.busy() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case DataReloadedMsg:
		return m, m.handleDataReloaded(msg)
	}
	return m, nil
}

func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.showHelp {
		switch msg.String() {
		case "esc", "?", "f1", "q", "enter":
			m.showHelp = false
		}
		return nil
	}
	// input waits for the fade to finish, esc abandons it
	if m.ctrl.State().FadingOut {
		if msg.Type == tea.KeyEsc {
			m.ctrl.Cancel()
		}
		return nil
	}
	if msg.String() == "f1" {
		m.showHelp = true
		return nil
	}

	switch m.ctrl.State().Screen {
	case nav.ScreenLanding:
		return m.landing.update(m, msg)
	case nav.ScreenDashboard:
		return m.dashboard.update(m, msg)
	}
	return m.updateApp(msg)
}

func (m *Model) updateApp(msg tea.KeyMsg) tea.Cmd {
	p := m.activePage()
	if p.typing() {
		return p.update(m, msg)
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case "?":
		m.showHelp = true
		return nil
	case "1", "2", "3":
		m.ctrl.ChangeModule(nav.Modules[int(msg.String()[0]-'1')])
		return nil
	case "]":
		m.stepSubsection(1)
		return nil
	case "[":
		m.stepSubsection(-1)
		return nil
	case "b":
		return m.beginTransition(m.ctrl.BackToDashboard())
	case "pgdown":
		m.offset += 10
		return nil
	case "pgup":
		m.offset -= 10
		if m.offset < 0 {
			m.offset = 0
		}
		return nil
	}
	return p.update(m, msg)
}

func (m *Model) stepSubsection(delta int) {
	subs := m.ctrl.Subsections().Subsections
	cur := m.ctrl.State().Subsection
	for i, s := range subs {
		if s.ID == cur {
			next := subs[(i+delta+len(subs))%len(subs)].ID
			if err := m.ctrl.ChangeSubsection(next); err != nil {
				m.log.Warn("subsection change failed: %v", err)
			}
			return
		}
	}
}

func (m *Model) activePage() page {
	switch m.ctrl.State().Subsection {
	case nav.SubsectionAsset:
		return m.asset
	case nav.SubsectionAnalog:
		return m.analogs
	case nav.SubsectionForecast:
		return m.forecast
	case nav.SubsectionSensitivity:
		return m.comparison
	case nav.SubsectionComparison:
		return m.market
	}
	return m.integration
}

// beginTransition schedules completion of a faded navigation.
func (m *Model) beginTransition(p nav.Pending) tea.Cmd {
	m.log.Debug("transition %s started, %s", p.Kind, p.Delay)
	return tea.Batch(transitionCmd(p), m.startSpinner())
}

func (m *Model) handleTransition(msg transitionMsg) tea.Cmd {
	p, ok := m.ctrl.PendingTicket()
	if !m.ctrl.Complete(msg.id) || !ok {
		return nil
	}

	st := m.ctrl.State()
	switch p.Kind {
	case nav.KindSimulation:
		m.asset = newAssetPage(m, st.FormData)
	case nav.KindScenarioComparison:
		m.comparison = newComparisonPage(m, st.InitialScenarioTab)
	}
	return textinput.Blink
}

// startDelay schedules a page wait, superseding any earlier wait of the
// same kind.
func (m *Model) startDelay(kind delayKind, d time.Duration) tea.Cmd {
	m.seq++
	m.delays[kind] = m.seq
	cmd := after(d, delayMsg{kind: kind, id: m.seq})
	if kind == delayStatus {
		return cmd
	}
	return tea.Batch(cmd, m.startSpinner())
}

func (m *Model) cancelDelay(kind delayKind) {
	delete(m.delays, kind)
}

// cancelPageDelays drops the submit waits of the page being left, so their
// ticks cannot navigate away from where the user went.
func (m *Model) cancelPageDelays() {
	m.cancelDelay(delayAssetSubmit)
	m.cancelDelay(delayAnalogSubmit)
}

func (m *Model) waiting(kind delayKind) bool {
	_, ok := m.delays[kind]
	return ok
}

func (m *Model) handleDelay(msg delayMsg) tea.Cmd {
	if id, ok := m.delays[msg.kind]; !ok || id != msg.id {
		return nil
	}
	delete(m.delays, msg.kind)

	switch msg.kind {
	case delayRequestAccess:
		m.landing.closeRequest()
	case delayAssetSubmit:
		if err := m.ctrl.ChangeSubsection(nav.SubsectionAnalog); err != nil {
			m.log.Warn("asset submit: %v", err)
		}
	case delayAnalogSubmit:
		m.ctrl.NavigateToAccessForecast(m.analogs.selected())
	case delayStatus:
		m.status = ""
	}
	return nil
}

// flash shows a status line for a few seconds.
func (m *Model) flash(format string, args ...interface{}) tea.Cmd {
	m.status = fmt.Sprintf(format, args...)
	return m.startDelay(delayStatus, statusDuration)
}

func (m *Model) handleKPITick() tea.Cmd {
	if m.ctrl.State().Screen != nav.ScreenLanding {
		return nil
	}
	m.landing.kpi.Next()
	return kpiTick(m.opts.KPIInterval)
}

func (m *Model) busy() bool {
	if m.ctrl.State().FadingOut {
		return true
	}
	for kind := range m.delays {
		if kind != delayStatus {
			return true
		}
	}
	return false
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) handleDataReloaded(msg DataReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		m.log.Warn("data reload failed: %v", msg.Err)
		return m.flash("%s Data reload failed: %v", emoji.GetEmoji("error"), msg.Err)
	}
	if msg.Store == nil {
		return nil
	}
	m.store = msg.Store
	m.landing.kpi = components.NewKPIRotator(m.store.KPIs())
	m.dashboard.reload(m)
	m.analogs = newAnalogPage(m)
	m.market = newMarketPage(m)
	m.log.Debug("store swapped, source %s", m.store.Source())
	return m.flash("%s Data reloaded from %s", emoji.GetEmoji("success"), m.store.Source())
}

// View renders the active screen.
func (m *Model) View() string {
	var content string
	switch m.ctrl.State().Screen {
	case nav.ScreenLanding:
		content = m.landing.view(m)
	case nav.ScreenDashboard:
		content = m.dashboard.view(m)
	default:
		content = m.viewApp()
	}

	if m.ctrl.State().FadingOut {
		content = m.viewFade()
	}
	if m.showHelp {
		content = m.viewHelp()
	}
	if m.status != "" {
		content += "\n" + m.styles.Status.Render(m.status)
	}
	return content
}

func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = 100
	}
	if h <= 0 {
		h = 32
	}
	return w, h
}

func (m *Model) viewFade() string {
	w, h := m.size()
	caption := "Loading..."
	if p, ok := m.ctrl.PendingTicket(); ok {
		switch p.Kind {
		case nav.KindLogin:
			caption = "Signing in..."
		case nav.KindSimulation:
			caption = "Preparing simulation inputs..."
		case nav.KindScenarioComparison:
			caption = "Opening scenario comparison..."
		case nav.KindBackToDashboard:
			caption = "Back to dashboard..."
		}
	}
	return lipgloss.Place(w, h-1, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			m.spinner.View()+" "+m.styles.Muted.Render(caption),
			m.styles.Help.Render("esc cancel"),
		))
}

func (m *Model) viewHelp() string {
	w, h := m.size()
	width := w - 10
	if width > 80 {
		width = 80
	}
	if m.helpCache == "" || m.helpWidth != width {
		md := helpMarkdown(m.keys)
		out := md
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
		if err == nil {
			if rendered, rerr := r.Render(md); rerr == nil {
				out = rendered
			}
		}
		m.helpCache, m.helpWidth = out, width
	}
	modal := components.Modal{Title: emoji.WithIcon("help", "Help"), Body: m.helpCache, Footer: "esc to close"}
	return modal.Overlay(w, h-1)
}

func (m *Model) viewApp() string {
	w, h := m.size()
	st := m.ctrl.State()

	brand := m.styles.Brand.Render(emoji.WithIcon("pill", "Launch Access Forecast"))
	title := m.styles.Header.Render(m.ctrl.Title())
	header := brand + "  " + m.styles.Muted.Render("›") + "  " + title

	moduleLabels := make([]string, len(nav.Modules))
	active := 0
	for i, mod := range nav.Modules {
		moduleLabels[i] = fmt.Sprintf("%d %s", i+1, nav.Config(mod).Title)
		if mod == st.Module {
			active = i
		}
	}
	modules := components.Tabs(moduleLabels, active, w-2)

	cfg := m.ctrl.Subsections()
	subLabels := make([]string, len(cfg.Subsections))
	activeSub := 0
	for i, s := range cfg.Subsections {
		subLabels[i] = s.Label
		if s.ID == st.Subsection {
			activeSub = i
		}
	}
	subsections := components.Tabs(subLabels, activeSub, w-2)

	top := lipgloss.JoinVertical(lipgloss.Left, header, modules, subsections)
	footer := m.styles.Help.Render(m.help.View(m.keys))

	avail := h - lipgloss.Height(top) - lipgloss.Height(footer) - 1
	body := m.window(m.activePage().view(m), avail)
	return lipgloss.JoinVertical(lipgloss.Left, top, body, footer)
}

// window cuts the body to avail lines starting at the scroll offset.
func (m *Model) window(body string, avail int) string {
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	if avail <= 0 || len(lines) <= avail {
		m.offset = 0
		return strings.Join(lines, "\n")
	}
	if maxOffset := len(lines) - avail; m.offset > maxOffset {
		m.offset = maxOffset
	}
	return strings.Join(lines[m.offset:m.offset+avail], "\n")
}

// Run starts the TUI and blocks until it exits or ctx is cancelled. reload,
// when non-nil, is called with a send function that delivers
// DataReloadedMsg values to the running program.
func Run(ctx context.Context, opts Options, reload func(send func(tea.Msg))) error {
	model, err := New(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if reload != nil {
		reload(p.Send)
	}
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
