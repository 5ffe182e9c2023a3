package mockdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SnookieTejas/launch-access-forecast/internal/chart"
	"github.com/SnookieTejas/launch-access-forecast/internal/scenario"
)

func mustLoad(t *testing.T) *Store {
	t.Helper()
	s, err := Load()
	require.NoError(t, err)
	return s
}

func TestLoadEmbedded(t *testing.T) {
	s := mustLoad(t)
	assert.Equal(t, "embedded", s.Source())
	assert.Len(t, s.Scenarios(), 8)
	assert.Len(t, s.KPIs(), 3)
	assert.Len(t, s.Analogs(), 15)
	assert.Len(t, s.TherapyAreaCatalog(), 12)
	assert.Len(t, s.TPPAttributes(), 16)
	assert.Len(t, s.Brands(), 7)
	assert.Equal(t, []string{"Commercial", "Medicare", "Medicaid"}, s.Channels())
}

func TestScenarioCards(t *testing.T) {
	s := mustLoad(t)
	first, ok := s.Scenario(1)
	require.True(t, ok)

	want := ScenarioCard{
		ID: 1, Title: "Scenario 1", Tag: "Base case", TagColor: "teal",
		InitiatedDate: "8/23/2025", CreatedBy: "Siddharth Jain",
		LastModified: "9/17/2025", LastModifiedBy: "Siddharth Jain",
		Favorite: true, Pinned: true,
	}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("scenario 1 mismatch (-want +got):\n%s", diff)
	}

	_, ok = s.Scenario(42)
	assert.False(t, ok)
}

func ids(cards []ScenarioCard) []int {
	out := make([]int, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func TestSearchScenarios(t *testing.T) {
	s := mustLoad(t)
	tests := []struct {
		query string
		want  []int
	}{
		{"", []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"   ", []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"AVINASH", []int{4, 5, 7}},
		{"better efficacy", []int{2, 8}},
		{"scenario 6", []int{6}},
		{"9/17", []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"tejas", []int{6, 8}},
		{"nobody", []int{}},
	}
	for _, tt := range tests {
		got := ids(s.SearchScenarios(tt.query))
		assert.Equal(t, tt.want, got, "query %q", tt.query)
	}
}

func TestAnalogsMatchSource(t *testing.T) {
	s := mustLoad(t)
	a := s.Analogs()
	assert.Equal(t, "Actovant", a[0].Name)
	assert.Equal(t, 92, a[0].SimilarityScore)
	assert.Equal(t, 150000, a[0].CostPerTreatment)
	assert.True(t, a[0].PortfolioLeverage)
	assert.Equal(t, "Biotrinix", a[14].Name)
	assert.Equal(t, 51, a[14].SimilarityScore)
}

func TestForecastData(t *testing.T) {
	s := mustLoad(t)

	donut, err := s.ForecastDonut("Medicaid")
	require.NoError(t, err)
	want := []chart.Slice{
		{Name: "Preferred", Value: 38},
		{Name: "Preferred with interventions", Value: 33},
		{Name: "Non-preferred with interventions", Value: 20},
		{Name: "Non-preferred", Value: 6},
		{Name: "Restrictive tier", Value: 3},
	}
	if diff := cmp.Diff(want, donut); diff != "" {
		t.Errorf("medicaid donut mismatch (-want +got):\n%s", diff)
	}

	bars, err := s.ForecastBars("Commercial")
	require.NoError(t, err)
	require.Len(t, bars, 8)
	assert.Equal(t, "Launch Quarter", bars[0].Label)
	assert.Equal(t, "L+8", bars[7].Label)
	assert.Equal(t, chart.Slice{Name: "Restrictive tier", Value: 31.82}, bars[0].Segments[0])

	_, err = s.ForecastDonut("Veterans")
	assert.ErrorIs(t, err, ErrUnknownChannel)
	_, err = s.ForecastBars("Veterans")
	assert.ErrorIs(t, err, ErrUnknownChannel)
}

func TestEveryBarSegmentHasATierColor(t *testing.T) {
	s := mustLoad(t)
	for _, v := range scenario.Variants {
		for _, ch := range s.Channels() {
			rows, err := s.ComparisonBars(v, ch)
			require.NoError(t, err)
			for _, r := range rows {
				for _, seg := range r.Segments {
					_, ok := chart.TierColor(seg.Name)
					assert.True(t, ok, "%s/%s/%s: %s", v, ch, r.Label, seg.Name)
				}
			}
		}
	}
}

func TestComparisonData(t *testing.T) {
	s := mustLoad(t)

	donut, err := s.ComparisonDonut(scenario.VariantBetterEfficacy, "Medicare")
	require.NoError(t, err)
	assert.Equal(t, float64(20), donut[0].Value)

	rows, err := s.ComparisonBars(scenario.VariantLowerSafety, "Medicare")
	require.NoError(t, err)
	last := rows[len(rows)-1]
	assert.Equal(t, "L+8", last.Label)
	assert.Equal(t, 34.9, last.Segments[0].Value)

	_, err = s.ComparisonDonut(scenario.Variant("worse"), "Medicare")
	assert.ErrorIs(t, err, ErrUnknownVariant)

	tpp := s.TPPAttributes()
	assert.Equal(t, "Cost per treatment per annum", tpp[0].Attribute)
	assert.Equal(t, "$85,000", tpp[0].Value(scenario.VariantBase))
	assert.Equal(t, "$95,000", tpp[0].Value(scenario.VariantBetterEfficacy))
	assert.Equal(t, "$75,000", tpp[0].Value(scenario.VariantLowerSafety))
	assert.Equal(t, "-", TPPAttribute{}.Value(scenario.VariantBase))

	bars := s.ComparisonChart([]scenario.Variant{scenario.VariantBase, scenario.VariantLowerSafety})
	assert.Equal(t, []chart.Bar{{Label: "Base case", Value: 12000}, {Label: "Lower safety", Value: 8000}}, bars)
}

func TestFormOptions(t *testing.T) {
	s := mustLoad(t)
	asset := s.AssetOptions()
	assert.Equal(t, []string{"Oncology", "Cardiology", "Neurology", "Immunology", "Respiratory"}, asset.TherapyAreas)
	assert.Equal(t, []string{"1", "2", "3", "4", "more than 5"}, asset.OrderOfEntry)

	profile := s.MarketProfileOptions()
	assert.Equal(t, []string{"<3", "3-5", ">5"}, profile.CompetitiveLaunches)
	assert.Empty(t, profile.TherapyAreas)

	assert.Contains(t, s.TherapyAreaCatalog()["Immunology"], "Sjögren's Syndrome")
	assert.Equal(t, "Enter product name", s.FieldDescription("Product name"))
	assert.Empty(t, s.FieldDescription("Annual Cost of Treatment"))
}

func TestBrandTables(t *testing.T) {
	s := mustLoad(t)

	table := s.BrandComparison([]string{"Immuvex", "Ghost"})
	require.Len(t, table.Attributes, 15)
	for i, attr := range table.Attributes {
		switch attr {
		case "Cost per treatment per annum":
			assert.Equal(t, "$2441", table.Cells[i][0])
		case "Budget impact of disease treated by drug (millions)":
			assert.Equal(t, "$21119.52", table.Cells[i][0])
		case "Advocacy":
			assert.Equal(t, "Low", table.Cells[i][0])
		}
		assert.Equal(t, "-", table.Cells[i][1], attr)
	}

	viz := s.BrandAttributes([]string{"Neurovax"})
	require.Len(t, viz.Attributes, 12)
	for i, attr := range viz.Attributes {
		if attr == "Budget impact of disease treated by drug (millions)" {
			// the share view only prefixes the per-annum cost
			assert.Equal(t, "15420.33", viz.Cells[i][0])
		}
		if attr == "Cost per treatment per annum" {
			assert.Equal(t, "$8750.25", viz.Cells[i][0])
		}
	}
}

func TestBrandShares(t *testing.T) {
	s := mustLoad(t)
	shares, err := s.BrandShares("Lower Safety", []string{"Immuvex", "Dermalynet", "Ghost"})
	require.NoError(t, err)
	assert.Equal(t, []chart.Slice{{Name: "Immuvex", Value: 18}, {Name: "Dermalynet", Value: 22}, {Name: "Ghost", Value: 0}}, shares)

	_, err = s.BrandShares("Worst Case", nil)
	assert.ErrorIs(t, err, ErrUnknownScenario)

	p := s.BrandPalette()
	assert.Equal(t, "#3B82F6", p("Immuvex"))
	assert.Equal(t, "#9CA3AF", p("Ghost"))
	assert.Equal(t, []string{"Base Case", "Better Efficacy", "Lower Safety"}, s.MarketScenarios())
}

func writeOverride(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "override.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadWithOverride(t *testing.T) {
	path := writeOverride(t, t.TempDir(), `
kpis:
  - icon: rocket
    label: Faster Launches
    color: "#6C5DD3"
field_descriptions:
  Product name: Brand name used at launch
`)

	s, err := LoadWithOverride(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Source())
	assert.Equal(t, []KPI{{Icon: "rocket", Label: "Faster Launches", Color: "#6C5DD3"}}, s.KPIs())
	assert.Equal(t, "Brand name used at launch", s.FieldDescription("Product name"))
	// untouched keys survive the merge
	assert.NotEmpty(t, s.FieldDescription("HEOR/CE"))
	assert.Len(t, s.Scenarios(), 8)
}

func TestLoadWithOverrideErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadWithOverride(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadWithOverride(writeOverride(t, dir, "not_a_field: 1\n"))
	assert.Error(t, err)

	_, err = LoadWithOverride(writeOverride(t, dir, "channels: []\n"))
	assert.ErrorContains(t, err, "no channels")

	s, err := LoadWithOverride("")
	require.NoError(t, err)
	assert.Equal(t, "embedded", s.Source())
}

func TestGettersReturnCopies(t *testing.T) {
	s := mustLoad(t)
	cards := s.Scenarios()
	cards[0].Title = "changed"
	first, _ := s.Scenario(1)
	assert.Equal(t, "Scenario 1", first.Title)

	donut, _ := s.ForecastDonut("Commercial")
	donut[0].Value = 0
	again, _ := s.ForecastDonut("Commercial")
	assert.Equal(t, float64(35), again[0].Value)
}
