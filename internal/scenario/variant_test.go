package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariant(t *testing.T) {
	tests := map[string]Variant{
		"base-case":       VariantBase,
		"Base Case":       VariantBase,
		"Better efficacy": VariantBetterEfficacy,
		"LOWER-SAFETY":    VariantLowerSafety,
		" lower safety ":  VariantLowerSafety,
	}
	for in, want := range tests {
		got, err := ParseVariant(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseVariant("worse efficacy")
	assert.Error(t, err)
}

func TestDefaultVariantsPerTab(t *testing.T) {
	tests := []struct {
		tab        Tab
		wantDonut  Variant
		wantBar    Variant
		wantSeries []Variant
	}{
		{TabBase, VariantBase, VariantBase, []Variant{VariantBase}},
		{TabScenario1, VariantBase, VariantBase, []Variant{VariantBase}},
		{TabScenario2, VariantBetterEfficacy, VariantBetterEfficacy, []Variant{VariantBase, VariantBetterEfficacy}},
		{TabScenario3, VariantBase, VariantBase, []Variant{VariantBase}},
		{TabScenario4, VariantLowerSafety, VariantLowerSafety, Variants},
	}

	for _, tt := range tests {
		m := NewMachine(tt.tab)
		assert.Equal(t, tt.wantDonut, m.DonutVariant(), tt.tab.String())
		assert.Equal(t, tt.wantBar, m.BarVariant(), tt.tab.String())
		assert.Equal(t, tt.wantSeries, m.SeriesVariants(), tt.tab.String())
	}
}

func TestVariantPicksAreKeptPerTab(t *testing.T) {
	m := NewMachine(TabScenario2)
	require.NoError(t, m.SetPeakVariant(VariantBase))
	assert.Equal(t, VariantBase, m.DonutVariant())
	assert.Equal(t, VariantBetterEfficacy, m.BarVariant())

	assert.ErrorIs(t, m.SetPeakVariant(VariantLowerSafety), ErrOptionUnavailable)

	m.SetActive(TabScenario4)
	assert.Equal(t, VariantLowerSafety, m.DonutVariant())
	require.NoError(t, m.SetUptakeVariant(VariantBetterEfficacy))
	assert.Equal(t, VariantBetterEfficacy, m.BarVariant())

	m.SetActive(TabScenario2)
	assert.Equal(t, VariantBase, m.DonutVariant())
}

func TestVariantChoicesOnFixedTabs(t *testing.T) {
	m := NewMachine(TabBase)
	assert.Nil(t, m.VariantChoices())
	assert.ErrorIs(t, m.SetUptakeVariant(VariantBase), ErrOptionUnavailable)
	assert.True(t, m.ShowsCharts())

	m.SetActive(TabScenario3)
	assert.False(t, m.ShowsCharts())
}
