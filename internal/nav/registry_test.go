package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLabels(t *testing.T) {
	tests := []struct {
		module Module
		labels []string
	}{
		{ModuleSimulation, []string{"Asset Attributes", "Analog Selection"}},
		{ModuleAccess, []string{"Access Forecast", "Scenario Comparison", "Market Share Comparison"}},
		{ModuleIntegration, []string{"Upload Data", "Mapping View", "Validation Logs"}},
	}
	for _, tt := range tests {
		var got []string
		for _, s := range Config(tt.module).Subsections {
			got = append(got, s.Label)
		}
		assert.Equal(t, tt.labels, got, tt.module.String())
	}
}

func TestConfigReturnsCopy(t *testing.T) {
	c := Config(ModuleAccess)
	c.Subsections[0].Label = "changed"
	assert.Equal(t, "Access Forecast", Config(ModuleAccess).Subsections[0].Label)
	assert.Equal(t, "Scenario Comparison", Config(ModuleAccess).Label(SubsectionSensitivity))
	assert.Equal(t, "nope", Config(ModuleAccess).Label("nope"))
}

func TestParseModule(t *testing.T) {
	for _, m := range Modules {
		got, err := ParseModule(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := ParseModule("ACCESS")
	require.NoError(t, err)
	assert.Equal(t, ModuleAccess, got)

	_, err = ParseModule("billing")
	assert.Error(t, err)
	assert.Equal(t, "module(7)", Module(7).String())
	assert.Equal(t, "dashboard", ScreenDashboard.String())
}
