package nav

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SnookieTejas/launch-access-forecast/internal/forms"
	"github.com/SnookieTejas/launch-access-forecast/internal/scenario"
)

func TestInitialState(t *testing.T) {
	c := NewController()
	s := c.State()
	assert.Equal(t, ScreenLanding, s.Screen)
	assert.Equal(t, ModuleSimulation, s.Module)
	assert.Equal(t, SubsectionAsset, s.Subsection)
	assert.Nil(t, s.FormData)
	assert.Empty(t, s.SelectedAnalogs)
	assert.Equal(t, scenario.TabBase, s.InitialScenarioTab)
	assert.False(t, s.FadingOut)
	assert.Equal(t, "Simulation Inputs", c.Title())
}

func TestChangeModuleSelectsFirstSubsection(t *testing.T) {
	tests := []struct {
		module Module
		want   Subsection
		title  string
	}{
		{ModuleAccess, SubsectionForecast, "Access and Demand Prediction"},
		{ModuleIntegration, SubsectionUpload, "Data Integration"},
		{ModuleSimulation, SubsectionAsset, "Simulation Inputs"},
	}
	c := NewController()
	for _, tt := range tests {
		t.Run(tt.module.String(), func(t *testing.T) {
			c.ChangeModule(tt.module)
			assert.Equal(t, tt.want, c.State().Subsection)
			assert.Equal(t, tt.title, c.Title())
		})
	}
}

func TestChangeSubsectionRejectsForeignIDs(t *testing.T) {
	c := NewController()
	require.NoError(t, c.ChangeSubsection(SubsectionAnalog))
	assert.Equal(t, SubsectionAnalog, c.State().Subsection)

	err := c.ChangeSubsection(SubsectionForecast)
	assert.ErrorIs(t, err, ErrUnknownSubsection)
	assert.Equal(t, SubsectionAnalog, c.State().Subsection)

	c.ChangeModule(ModuleAccess)
	require.NoError(t, c.ChangeSubsection(SubsectionComparison))
}

func TestNavigateToAccessForecastCopiesAnalogs(t *testing.T) {
	c := NewController()
	analogs := []string{"Actovant", "Aeronyx"}
	c.NavigateToAccessForecast(analogs)
	analogs[0] = "changed"

	s := c.State()
	assert.Equal(t, ModuleAccess, s.Module)
	assert.Equal(t, SubsectionForecast, s.Subsection)
	assert.Equal(t, []string{"Actovant", "Aeronyx"}, s.SelectedAnalogs)

	s.SelectedAnalogs[1] = "mutated"
	assert.Equal(t, "Aeronyx", c.State().SelectedAnalogs[1])
}

func TestLoginFadesThenShowsDashboard(t *testing.T) {
	c := NewController()
	p := c.Login()
	assert.Equal(t, 500*time.Millisecond, p.Delay)
	assert.Equal(t, KindLogin, p.Kind)
	assert.True(t, c.State().FadingOut)
	assert.Equal(t, ScreenLanding, c.State().Screen)

	require.True(t, c.Complete(p.ID))
	assert.Equal(t, ScreenDashboard, c.State().Screen)
	assert.False(t, c.State().FadingOut)

	// a ticket completes once
	assert.False(t, c.Complete(p.ID))
}

func TestNavigateToSimulationStoresFormDataImmediately(t *testing.T) {
	c := NewController()
	data := &forms.ScenarioFormData{ScenarioName: "Launch A", TherapyArea: "Oncology"}

	p := c.NavigateToSimulation(data)
	assert.Equal(t, 300*time.Millisecond, p.Delay)
	assert.Same(t, data, c.State().FormData)
	assert.Equal(t, ScreenLanding, c.State().Screen)

	require.True(t, c.Complete(p.ID))
	s := c.State()
	assert.Equal(t, ScreenApp, s.Screen)
	assert.Equal(t, ModuleSimulation, s.Module)
	assert.Equal(t, SubsectionAsset, s.Subsection)

	// nil keeps what was stored before
	p = c.NavigateToSimulation(nil)
	c.Complete(p.ID)
	assert.Same(t, data, c.State().FormData)
}

func TestNavigateToScenarioComparison(t *testing.T) {
	tests := []struct {
		id   int
		want scenario.Tab
	}{
		{1, scenario.TabBase},
		{2, scenario.TabScenario2},
		{3, scenario.TabBase},
		{8, scenario.TabBase},
		{-1, scenario.TabBase},
	}
	for _, tt := range tests {
		c := NewController()
		p := c.NavigateToScenarioComparison(tt.id)
		assert.Equal(t, tt.want, c.State().InitialScenarioTab, "id %d", tt.id)

		require.True(t, c.Complete(p.ID))
		s := c.State()
		assert.Equal(t, ScreenApp, s.Screen)
		assert.Equal(t, ModuleAccess, s.Module)
		assert.Equal(t, SubsectionSensitivity, s.Subsection)
	}
}

func TestBackToDashboardKeepsModule(t *testing.T) {
	c := NewController()
	c.Complete(c.NavigateToScenarioComparison(2).ID)

	p := c.BackToDashboard()
	require.True(t, c.Complete(p.ID))
	s := c.State()
	assert.Equal(t, ScreenDashboard, s.Screen)
	assert.Equal(t, ModuleAccess, s.Module)
	assert.Equal(t, scenario.TabScenario2, s.InitialScenarioTab)
}

func TestNewerTransitionSupersedesPending(t *testing.T) {
	c := NewController()
	first := c.NavigateToSimulation(nil)
	second := c.NavigateToScenarioComparison(2)
	assert.NotEqual(t, first.ID, second.ID)

	assert.False(t, c.Complete(first.ID))
	assert.Equal(t, ScreenLanding, c.State().Screen)
	assert.True(t, c.State().FadingOut)

	assert.True(t, c.Complete(second.ID))
	assert.Equal(t, ModuleAccess, c.State().Module)
}

func TestCancel(t *testing.T) {
	c := NewController()
	p := c.Login()
	c.Cancel()

	_, ok := c.PendingTicket()
	assert.False(t, ok)
	assert.False(t, c.State().FadingOut)
	assert.False(t, c.Complete(p.ID))
	assert.Equal(t, ScreenLanding, c.State().Screen)

	// no-op without a ticket
	c.Cancel()
}

func TestDelayOptions(t *testing.T) {
	c := NewController(WithLoginDelay(time.Millisecond), WithTransitionDelay(2*time.Millisecond))
	assert.Equal(t, time.Millisecond, c.Login().Delay)
	assert.Equal(t, 2*time.Millisecond, c.BackToDashboard().Delay)
}

func TestScrollHookFiresPerChangedDimension(t *testing.T) {
	var reasons []ScrollReason
	c := NewController(WithScrollHook(func(r ScrollReason) { reasons = append(reasons, r) }))

	c.Complete(c.Login().ID)
	assert.Equal(t, []ScrollReason{ScrollScreen}, reasons)

	reasons = nil
	c.Complete(c.NavigateToScenarioComparison(1).ID)
	assert.Equal(t, []ScrollReason{ScrollScreen, ScrollModule, ScrollSubsection}, reasons)

	reasons = nil
	require.NoError(t, c.ChangeSubsection(SubsectionSensitivity))
	assert.Empty(t, reasons, "same subsection is not a change")

	require.NoError(t, c.ChangeSubsection(SubsectionComparison))
	assert.Equal(t, []ScrollReason{ScrollSubsection}, reasons)

	reasons = nil
	c.ChangeModule(ModuleAccess)
	assert.Equal(t, []ScrollReason{ScrollSubsection}, reasons)

	reasons = nil
	c.ChangeModule(ModuleIntegration)
	assert.Equal(t, []ScrollReason{ScrollModule, ScrollSubsection}, reasons)
}
