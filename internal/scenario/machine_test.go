package scenario

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTab(t *testing.T) {
	for i, id := range tabIDs {
		got, err := ParseTab(id)
		require.NoError(t, err)
		assert.Equal(t, Tab(i), got)
		assert.Equal(t, id, got.String())
	}

	_, err := ParseTab("scenario5")
	assert.Error(t, err)
}

func TestAddScenario(t *testing.T) {
	tests := []struct {
		name      string
		from      Tab
		wantTab   Tab
		wantModal bool
	}{
		{"base opens modal", TabBase, TabBase, true},
		{"scenario2 opens modal", TabScenario2, TabScenario2, true},
		{"scenario1 steps forward", TabScenario1, TabScenario2, false},
		{"scenario3 steps forward", TabScenario3, TabScenario4, false},
		{"scenario4 is terminal", TabScenario4, TabScenario4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(tt.from)
			m.AddScenario()
			assert.Equal(t, tt.wantTab, m.Active())
			assert.Equal(t, tt.wantModal, m.ModalOpen())
		})
	}
}

func TestAddEnabled(t *testing.T) {
	for _, tab := range []Tab{TabBase, TabScenario1, TabScenario2, TabScenario3} {
		assert.True(t, NewMachine(tab).AddEnabled(), tab.String())
	}
	assert.False(t, NewMachine(TabScenario4).AddEnabled())
}

func TestModalSelection(t *testing.T) {
	tests := []struct {
		name string
		from Tab
		opt  Option
		want Tab
	}{
		{"custom from base", TabBase, OptionCustom, TabScenario1},
		{"better efficacy from base", TabBase, OptionBetterEfficacy, TabScenario2},
		{"lower safety from base skips ahead", TabBase, OptionLowerSafety, TabScenario4},
		{"custom from scenario2", TabScenario2, OptionCustom, TabScenario3},
		{"lower safety from scenario2", TabScenario2, OptionLowerSafety, TabScenario4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(tt.from)
			m.AddScenario()
			require.True(t, m.ModalOpen())
			require.NoError(t, m.Select(tt.opt))
			assert.Equal(t, tt.want, m.Active())
			assert.False(t, m.ModalOpen())
		})
	}
}

func TestSelectUnavailableOption(t *testing.T) {
	m := NewMachine(TabScenario2)
	m.AddScenario()

	err := m.Select(OptionBetterEfficacy)
	assert.True(t, errors.Is(err, ErrOptionUnavailable))
	assert.Equal(t, TabScenario2, m.Active())
	assert.False(t, m.ModalOpen())

	assert.Empty(t, NewMachine(TabScenario1).ModalOptions())
}

func TestSubmit(t *testing.T) {
	m := NewMachine(TabScenario1)
	require.NoError(t, m.Submit())
	assert.Equal(t, TabScenario2, m.Active())

	m.SetActive(TabScenario3)
	require.NoError(t, m.Submit())
	assert.Equal(t, TabScenario4, m.Active())

	err := m.Submit()
	assert.ErrorIs(t, err, ErrNotInputTab)
	assert.Equal(t, TabScenario4, m.Active())
}

func TestVisibleTabs(t *testing.T) {
	tests := []struct {
		active Tab
		locked bool
		want   []Tab
	}{
		{TabBase, false, []Tab{TabBase}},
		{TabScenario1, false, []Tab{TabBase, TabScenario1}},
		{TabScenario2, false, []Tab{TabBase, TabScenario2}},
		{TabScenario3, false, []Tab{TabBase, TabScenario2, TabScenario3}},
		{TabScenario4, false, []Tab{TabBase, TabScenario2, TabScenario4}},
		{TabBase, true, []Tab{TabBase, TabScenario2, TabScenario4}},
		{TabScenario1, true, []Tab{TabBase, TabScenario2, TabScenario4}},
	}

	for _, tt := range tests {
		m := NewMachine(tt.active)
		m.SetLowerSafetyLocked(tt.locked)
		assert.Equal(t, tt.want, m.VisibleTabs(), "active=%s locked=%v", tt.active, tt.locked)
	}
}

func TestTabLabel(t *testing.T) {
	assert.Equal(t, "Base Case", TabLabel(TabBase))
	assert.Equal(t, "Input Selection", TabLabel(TabScenario1))
	assert.Equal(t, "Better Efficacy", TabLabel(TabScenario2))
	assert.Equal(t, "Input Selection", TabLabel(TabScenario3))
	assert.Equal(t, "Lower Safety", TabLabel(TabScenario4))
}

func TestIsInputTab(t *testing.T) {
	assert.True(t, NewMachine(TabScenario1).IsInputTab())
	assert.True(t, NewMachine(TabScenario3).IsInputTab())
	assert.False(t, NewMachine(TabScenario2).IsInputTab())
}
