package nav

import (
	"fmt"
	"strings"
)

// Screen is the top level page of the application.
type Screen int

const (
	ScreenLanding Screen = iota
	ScreenDashboard
	ScreenApp
)

func (s Screen) String() string {
	switch s {
	case ScreenLanding:
		return "landing"
	case ScreenDashboard:
		return "dashboard"
	case ScreenApp:
		return "app"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// Module is one of the three work areas reachable from the app screen.
type Module int

const (
	ModuleSimulation Module = iota
	ModuleAccess
	ModuleIntegration
)

// Modules lists every module in tab order.
var Modules = []Module{ModuleSimulation, ModuleAccess, ModuleIntegration}

var moduleIDs = [...]string{"simulation", "access", "integration"}

func (m Module) String() string {
	if m < 0 || int(m) >= len(moduleIDs) {
		return fmt.Sprintf("module(%d)", int(m))
	}
	return moduleIDs[m]
}

// ParseModule resolves a module id such as "access".
func ParseModule(s string) (Module, error) {
	for i, id := range moduleIDs {
		if strings.EqualFold(s, id) {
			return Module(i), nil
		}
	}
	return 0, fmt.Errorf("unknown module %q", s)
}

// Subsection ids are only meaningful within their module.
type Subsection string

const (
	SubsectionAsset       Subsection = "asset"
	SubsectionAnalog      Subsection = "analog"
	SubsectionForecast    Subsection = "forecast"
	SubsectionSensitivity Subsection = "sensitivity"
	SubsectionComparison  Subsection = "comparison"
	SubsectionUpload      Subsection = "upload"
	SubsectionMapping     Subsection = "mapping"
	SubsectionValidation  Subsection = "validation"
)

// SubsectionDef is a tab inside a module.
type SubsectionDef struct {
	ID    Subsection
	Label string
}

// ModuleConfig describes the header and tabs of a module.
type ModuleConfig struct {
	Title       string
	Subsections []SubsectionDef
}

// Has reports whether id is one of the module's subsections.
func (c ModuleConfig) Has(id Subsection) bool {
	for _, s := range c.Subsections {
		if s.ID == id {
			return true
		}
	}
	return false
}

// Label returns the tab label of id, or the raw id when unknown.
func (c ModuleConfig) Label(id Subsection) string {
	for _, s := range c.Subsections {
		if s.ID == id {
			return s.Label
		}
	}
	return string(id)
}

var registry = map[Module]ModuleConfig{
	ModuleSimulation: {
		Title: "Simulation Inputs",
		Subsections: []SubsectionDef{
			{ID: SubsectionAsset, Label: "Asset Attributes"},
			{ID: SubsectionAnalog, Label: "Analog Selection"},
		},
	},
	ModuleAccess: {
		Title: "Access and Demand Prediction",
		Subsections: []SubsectionDef{
			{ID: SubsectionForecast, Label: "Access Forecast"},
			{ID: SubsectionSensitivity, Label: "Scenario Comparison"},
			{ID: SubsectionComparison, Label: "Market Share Comparison"},
		},
	},
	ModuleIntegration: {
		Title: "Data Integration",
		Subsections: []SubsectionDef{
			{ID: SubsectionUpload, Label: "Upload Data"},
			{ID: SubsectionMapping, Label: "Mapping View"},
			{ID: SubsectionValidation, Label: "Validation Logs"},
		},
	},
}

// Config returns the configuration of m. The returned value is a copy.
func Config(m Module) ModuleConfig {
	c := registry[m]
	c.Subsections = append([]SubsectionDef(nil), c.Subsections...)
	return c
}
