package nav

import (
	"errors"
	"fmt"
	"time"

	"github.com/SnookieTejas/launch-access-forecast/internal/forms"
	"github.com/SnookieTejas/launch-access-forecast/internal/logger"
	"github.com/SnookieTejas/launch-access-forecast/internal/scenario"
)

// ErrUnknownSubsection is returned when a subsection does not belong to the
// active module.
var ErrUnknownSubsection = errors.New("subsection not in active module")

const (
	DefaultLoginDelay      = 500 * time.Millisecond
	DefaultTransitionDelay = 300 * time.Millisecond
)

// State is the navigation and cross-page data of the application.
type State struct {
	Screen     Screen
	Module     Module
	Subsection Subsection
	// FormData is set by the create scenario flow and never mutated after.
	FormData           *forms.ScenarioFormData
	SelectedAnalogs    []string
	InitialScenarioTab scenario.Tab
	FadingOut          bool
}

// InitialState is the state at startup.
func InitialState() State {
	return State{
		Screen:             ScreenLanding,
		Module:             ModuleSimulation,
		Subsection:         SubsectionAsset,
		SelectedAnalogs:    []string{},
		InitialScenarioTab: scenario.TabBase,
	}
}

// Kind names the deferred part of a faded transition.
type Kind int

const (
	KindLogin Kind = iota
	KindSimulation
	KindScenarioComparison
	KindBackToDashboard
)

func (k Kind) String() string {
	switch k {
	case KindLogin:
		return "login"
	case KindSimulation:
		return "simulation"
	case KindScenarioComparison:
		return "scenario-comparison"
	case KindBackToDashboard:
		return "back-to-dashboard"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Pending is a ticket for a transition that completes after Delay. The caller
// schedules a timer and hands the ID back to Complete.
type Pending struct {
	ID    uint64
	Delay time.Duration
	Kind  Kind
}

// ScrollReason says which dimension of the state changed.
type ScrollReason int

const (
	ScrollScreen ScrollReason = iota
	ScrollModule
	ScrollSubsection
)

func (r ScrollReason) String() string {
	switch r {
	case ScrollScreen:
		return "screen"
	case ScrollModule:
		return "module"
	case ScrollSubsection:
		return "subsection"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Controller owns State and applies every transition to it. It is meant to
// be driven from a single goroutine.
type Controller struct {
	state           State
	loginDelay      time.Duration
	transitionDelay time.Duration
	onScroll        func(ScrollReason)
	log             *logger.Logger

	nextID  uint64
	pending *Pending
}

// Option configures a Controller.
type Option func(*Controller)

// WithLoginDelay overrides the fade before the dashboard appears.
func WithLoginDelay(d time.Duration) Option {
	return func(c *Controller) { c.loginDelay = d }
}

// WithTransitionDelay overrides the fade of the other screen changes.
func WithTransitionDelay(d time.Duration) Option {
	return func(c *Controller) { c.transitionDelay = d }
}

// WithScrollHook is called once per changed dimension after each transition.
func WithScrollHook(fn func(ScrollReason)) Option {
	return func(c *Controller) { c.onScroll = fn }
}

func WithLogger(l *logger.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// NewController returns a controller in the initial state.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		state:           InitialState(),
		loginDelay:      DefaultLoginDelay,
		transitionDelay: DefaultTransitionDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Nop()
	}
	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	s := c.state
	s.SelectedAnalogs = append([]string{}, c.state.SelectedAnalogs...)
	return s
}

// Subsections returns the configuration of the active module.
func (c *Controller) Subsections() ModuleConfig {
	return Config(c.state.Module)
}

// Title is the header of the active module.
func (c *Controller) Title() string {
	return registry[c.state.Module].Title
}

// ChangeModule activates m on its first subsection.
func (c *Controller) ChangeModule(m Module) {
	c.apply(func(s *State) {
		s.Module = m
		if subs := registry[m].Subsections; len(subs) > 0 {
			s.Subsection = subs[0].ID
		}
	})
	c.log.Debug("module changed to %s/%s", m, c.state.Subsection)
}

// ChangeSubsection switches the tab within the active module.
func (c *Controller) ChangeSubsection(id Subsection) error {
	if !registry[c.state.Module].Has(id) {
		return fmt.Errorf("%w: %s in %s", ErrUnknownSubsection, id, c.state.Module)
	}
	c.apply(func(s *State) { s.Subsection = id })
	return nil
}

// NavigateToAccessForecast opens the forecast with the analogs picked on the
// analog selection page.
func (c *Controller) NavigateToAccessForecast(analogs []string) {
	c.apply(func(s *State) {
		s.SelectedAnalogs = append([]string{}, analogs...)
		s.Module = ModuleAccess
		s.Subsection = SubsectionForecast
	})
	c.log.Debug("access forecast with %d analogs", len(analogs))
}

// Login fades out the landing page.
func (c *Controller) Login() Pending {
	return c.begin(KindLogin, c.loginDelay)
}

// NavigateToSimulation opens the asset attributes page. Non-nil form data is
// stored right away.
func (c *Controller) NavigateToSimulation(formData *forms.ScenarioFormData) Pending {
	if formData != nil {
		c.state.FormData = formData
	}
	return c.begin(KindSimulation, c.transitionDelay)
}

// NavigateToScenarioComparison opens the scenario comparison on the tab that
// matches a dashboard card.
func (c *Controller) NavigateToScenarioComparison(id int) Pending {
	c.state.InitialScenarioTab = TabForScenario(id)
	if id != 1 && id != 2 {
		c.log.Debug("scenario %d has no dedicated tab, using %s", id, scenario.TabBase)
	}
	return c.begin(KindScenarioComparison, c.transitionDelay)
}

// BackToDashboard leaves the app screen.
func (c *Controller) BackToDashboard() Pending {
	return c.begin(KindBackToDashboard, c.transitionDelay)
}

// TabForScenario maps a dashboard card id to the comparison tab it opens.
func TabForScenario(id int) scenario.Tab {
	if id == 2 {
		return scenario.TabScenario2
	}
	return scenario.TabBase
}

// PendingTicket returns the outstanding ticket, if any.
func (c *Controller) PendingTicket() (Pending, bool) {
	if c.pending == nil {
		return Pending{}, false
	}
	return *c.pending, true
}

// Complete finishes the transition of ticket id. Tickets superseded by a
// later transition, or cancelled, are ignored and report false.
func (c *Controller) Complete(id uint64) bool {
	if c.pending == nil || c.pending.ID != id {
		c.log.Debug("dropping stale transition %d", id)
		return false
	}
	kind := c.pending.Kind
	c.pending = nil

	c.apply(func(s *State) {
		switch kind {
		case KindLogin, KindBackToDashboard:
			s.Screen = ScreenDashboard
		case KindSimulation:
			s.Screen = ScreenApp
			s.Module = ModuleSimulation
			s.Subsection = SubsectionAsset
		case KindScenarioComparison:
			s.Screen = ScreenApp
			s.Module = ModuleAccess
			s.Subsection = SubsectionSensitivity
		}
		s.FadingOut = false
	})
	c.log.Debug("transition %s complete: %s/%s/%s", kind, c.state.Screen, c.state.Module, c.state.Subsection)
	return true
}

// Cancel drops the outstanding ticket and stops the fade.
func (c *Controller) Cancel() {
	if c.pending == nil {
		return
	}
	c.log.Debug("cancelled transition %s", c.pending.Kind)
	c.pending = nil
	c.state.FadingOut = false
}

func (c *Controller) begin(kind Kind, delay time.Duration) Pending {
	c.nextID++
	p := Pending{ID: c.nextID, Delay: delay, Kind: kind}
	c.pending = &p
	c.state.FadingOut = true
	return p
}

// apply mutates the state and fires the scroll hook for each changed
// dimension, in screen, module, subsection order.
func (c *Controller) apply(fn func(*State)) {
	before := c.state
	fn(&c.state)
	if c.onScroll == nil {
		return
	}
	if before.Screen != c.state.Screen {
		c.onScroll(ScrollScreen)
	}
	if before.Module != c.state.Module {
		c.onScroll(ScrollModule)
	}
	if before.Subsection != c.state.Subsection {
		c.onScroll(ScrollSubsection)
	}
}
