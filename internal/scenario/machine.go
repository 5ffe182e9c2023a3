package scenario

import (
	"errors"
	"fmt"
)

// Tab identifies one of the scenario comparison tabs.
type Tab int

const (
	TabBase Tab = iota
	TabScenario1
	TabScenario2
	TabScenario3
	TabScenario4
)

var tabIDs = [...]string{"base", "scenario1", "scenario2", "scenario3", "scenario4"}

func (t Tab) String() string {
	if t < TabBase || t > TabScenario4 {
		return fmt.Sprintf("tab(%d)", int(t))
	}
	return tabIDs[t]
}

// ParseTab converts a tab id such as "scenario2" back into a Tab.
func ParseTab(s string) (Tab, error) {
	for i, id := range tabIDs {
		if id == s {
			return Tab(i), nil
		}
	}
	return TabBase, fmt.Errorf("unknown scenario tab: %s (must be one of: base, scenario1, scenario2, scenario3, scenario4)", s)
}

// Option is an entry of the add-scenario selection modal.
type Option string

const (
	OptionCustom         Option = "custom"
	OptionBetterEfficacy Option = "better-efficacy"
	OptionLowerSafety    Option = "lower-safety"
)

// Title is the heading shown for the option in the selection modal.
func (o Option) Title() string {
	switch o {
	case OptionCustom:
		return "Custom Scenario"
	case OptionBetterEfficacy:
		return "Better Efficacy"
	case OptionLowerSafety:
		return "Lower Safety"
	}
	return string(o)
}

// Description is the one-line blurb under the option title.
func (o Option) Description() string {
	switch o {
	case OptionCustom:
		return "Create a custom scenario with your own inputs"
	case OptionBetterEfficacy:
		return "Scenario with improved efficacy outcomes"
	case OptionLowerSafety:
		return "Scenario with reduced safety profile"
	}
	return ""
}

var (
	ErrOptionUnavailable = errors.New("scenario option not offered from current tab")
	ErrNotInputTab       = errors.New("submit is only valid on an input selection tab")
)

// Machine tracks the active comparison tab, the selection modal and the
// lower-safety lock.
type Machine struct {
	active            Tab
	modalOpen         bool
	lowerSafetyLocked bool
	picks             map[Tab]*picks
}

// NewMachine starts the machine on the given tab.
func NewMachine(initial Tab) *Machine {
	return &Machine{active: initial}
}

// Active returns the current tab.
func (m *Machine) Active() Tab { return m.active }

// ModalOpen reports whether the add-scenario modal is showing.
func (m *Machine) ModalOpen() bool { return m.modalOpen }

// LowerSafetyLocked reports the state of the lock toggle.
func (m *Machine) LowerSafetyLocked() bool { return m.lowerSafetyLocked }

// SetLowerSafetyLocked flips the lock that reduces the tab bar to the
// three fixed variants.
func (m *Machine) SetLowerSafetyLocked(locked bool) { m.lowerSafetyLocked = locked }

// SetActive selects a tab directly, as a click on the tab bar does.
func (m *Machine) SetActive(t Tab) {
	m.active = t
	m.modalOpen = false
}

// AddEnabled reports whether the add-scenario action is available.
func (m *Machine) AddEnabled() bool {
	return m.active != TabScenario4
}

// AddScenario handles the add-scenario action. From base and scenario2 it
// opens the selection modal; from the input tabs it steps forward.
func (m *Machine) AddScenario() {
	switch m.active {
	case TabBase, TabScenario2:
		m.modalOpen = true
	case TabScenario1:
		m.active = TabScenario2
	case TabScenario3:
		m.active = TabScenario4
	}
}

// CloseModal dismisses the selection modal without changing tabs.
func (m *Machine) CloseModal() { m.modalOpen = false }

// ModalOptions lists the options offered from the current tab.
func (m *Machine) ModalOptions() []Option {
	switch m.active {
	case TabBase:
		return []Option{OptionCustom, OptionBetterEfficacy, OptionLowerSafety}
	case TabScenario2:
		return []Option{OptionCustom, OptionLowerSafety}
	}
	return nil
}

// Select applies a modal choice. The modal is closed whether or not the
// option was valid.
func (m *Machine) Select(opt Option) error {
	m.modalOpen = false
	if !m.offers(opt) {
		return fmt.Errorf("%w: %s from %s", ErrOptionUnavailable, opt, m.active)
	}

	switch opt {
	case OptionCustom:
		if m.active == TabBase {
			m.active = TabScenario1
		} else {
			m.active = TabScenario3
		}
	case OptionBetterEfficacy:
		m.active = TabScenario2
	case OptionLowerSafety:
		m.active = TabScenario4
	}
	return nil
}

func (m *Machine) offers(opt Option) bool {
	for _, o := range m.ModalOptions() {
		if o == opt {
			return true
		}
	}
	return false
}

// Submit completes an input selection tab.
func (m *Machine) Submit() error {
	switch m.active {
	case TabScenario1:
		m.active = TabScenario2
	case TabScenario3:
		m.active = TabScenario4
	default:
		return fmt.Errorf("%w: %s", ErrNotInputTab, m.active)
	}
	return nil
}

// IsInputTab reports whether the active tab shows the market profile form
// instead of charts.
func (m *Machine) IsInputTab() bool {
	return m.active == TabScenario1 || m.active == TabScenario3
}

// VisibleTabs returns the tabs shown in the navigation bar.
func (m *Machine) VisibleTabs() []Tab {
	if m.lowerSafetyLocked {
		return []Tab{TabBase, TabScenario2, TabScenario4}
	}
	switch m.active {
	case TabScenario1:
		return []Tab{TabBase, TabScenario1}
	case TabScenario2:
		return []Tab{TabBase, TabScenario2}
	case TabScenario3:
		return []Tab{TabBase, TabScenario2, TabScenario3}
	case TabScenario4:
		return []Tab{TabBase, TabScenario2, TabScenario4}
	}
	return []Tab{TabBase}
}

// TabLabel is the caption used in the navigation bar.
func TabLabel(t Tab) string {
	switch t {
	case TabBase:
		return "Base Case"
	case TabScenario1, TabScenario3:
		return "Input Selection"
	case TabScenario2:
		return "Better Efficacy"
	case TabScenario4:
		return "Lower Safety"
	}
	return t.String()
}
