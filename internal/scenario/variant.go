package scenario

import (
	"fmt"
	"strings"
)

// Variant names one of the static comparison datasets.
type Variant string

const (
	VariantBase           Variant = "base-case"
	VariantBetterEfficacy Variant = "better-efficacy"
	VariantLowerSafety    Variant = "lower-safety"
)

// Variants lists every dataset in display order.
var Variants = []Variant{VariantBase, VariantBetterEfficacy, VariantLowerSafety}

// Label returns the dropdown caption for the variant.
func (v Variant) Label() string {
	switch v {
	case VariantBase:
		return "Base Case"
	case VariantBetterEfficacy:
		return "Better efficacy"
	case VariantLowerSafety:
		return "Lower safety"
	}
	return string(v)
}

// ParseVariant accepts either the key ("lower-safety") or the label
// ("Lower safety"), ignoring case.
func ParseVariant(s string) (Variant, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, v := range Variants {
		if norm == string(v) || norm == strings.ToLower(v.Label()) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown scenario variant: %s", s)
}

// picks holds the two dataset dropdowns of a comparison tab.
type picks struct {
	peak   Variant
	uptake Variant
}

func (m *Machine) picksFor(t Tab) *picks {
	if m.picks == nil {
		m.picks = map[Tab]*picks{
			TabScenario2: {peak: VariantBetterEfficacy, uptake: VariantBetterEfficacy},
			TabScenario4: {peak: VariantLowerSafety, uptake: VariantLowerSafety},
		}
	}
	return m.picks[t]
}

// VariantChoices lists the datasets the active tab lets the user switch
// between. Tabs without a dropdown return nil.
func (m *Machine) VariantChoices() []Variant {
	switch m.active {
	case TabScenario2:
		return []Variant{VariantBase, VariantBetterEfficacy}
	case TabScenario4:
		return append([]Variant(nil), Variants...)
	}
	return nil
}

func (m *Machine) choosable(v Variant) bool {
	for _, c := range m.VariantChoices() {
		if c == v {
			return true
		}
	}
	return false
}

// SetPeakVariant picks the dataset for the peak access donuts.
func (m *Machine) SetPeakVariant(v Variant) error {
	if !m.choosable(v) {
		return fmt.Errorf("%w: variant %s on %s", ErrOptionUnavailable, v, m.active)
	}
	m.picksFor(m.active).peak = v
	return nil
}

// SetUptakeVariant picks the dataset for the access uptake bars.
func (m *Machine) SetUptakeVariant(v Variant) error {
	if !m.choosable(v) {
		return fmt.Errorf("%w: variant %s on %s", ErrOptionUnavailable, v, m.active)
	}
	m.picksFor(m.active).uptake = v
	return nil
}

// DonutVariant is the dataset behind the peak access donuts.
func (m *Machine) DonutVariant() Variant {
	if p := m.picksFor(m.active); p != nil {
		return p.peak
	}
	return VariantBase
}

// BarVariant is the dataset behind the access uptake stacked bars.
func (m *Machine) BarVariant() Variant {
	if p := m.picksFor(m.active); p != nil {
		return p.uptake
	}
	return VariantBase
}

// SeriesVariants are the columns of the TPP table and the bars of the
// comparison chart for the active tab.
func (m *Machine) SeriesVariants() []Variant {
	switch m.active {
	case TabScenario2:
		return []Variant{VariantBase, VariantBetterEfficacy}
	case TabScenario4:
		return append([]Variant(nil), Variants...)
	}
	return []Variant{VariantBase}
}

// ShowsCharts reports whether the active tab renders the chart panels.
func (m *Machine) ShowsCharts() bool {
	switch m.active {
	case TabBase, TabScenario2, TabScenario4:
		return true
	}
	return false
}
