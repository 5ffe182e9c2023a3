package analog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []Analog {
	return []Analog{
		{Name: "Aeronyx", SimilarityScore: 87},
		{Name: "Actovant", SimilarityScore: 92},
		{Name: "Bionova", SimilarityScore: 54},
		{Name: "Allotrex", SimilarityScore: 75},
		{Name: "Twin", SimilarityScore: 75},
	}
}

func TestFilterByRange(t *testing.T) {
	got := Filter(sample(), 70, 90, nil)
	assert.Equal(t, []string{"Aeronyx", "Allotrex", "Twin"}, Names(got))

	// bounds are inclusive
	got = Filter(sample(), 54, 54, nil)
	assert.Equal(t, []string{"Bionova"}, Names(got))
}

func TestFilterBySelection(t *testing.T) {
	got := Filter(sample(), 0, 100, []string{"Bionova", "Actovant", "Unknown"})
	assert.Equal(t, []string{"Actovant", "Bionova"}, Names(got))

	got = Filter(sample(), 60, 100, []string{"Bionova"})
	assert.Empty(t, got)
}

func TestFilterIsExactlyTheMatchingSet(t *testing.T) {
	data := sample()
	for lo := 0; lo <= 100; lo += 10 {
		for hi := lo; hi <= 100; hi += 15 {
			got := Filter(data, lo, hi, nil)
			want := 0
			for _, a := range data {
				if a.SimilarityScore >= lo && a.SimilarityScore <= hi {
					want++
				}
			}
			assert.Len(t, got, want, "range [%d, %d]", lo, hi)
		}
	}
}

func TestApplySorting(t *testing.T) {
	q := DefaultQuery()
	assert.Equal(t, []string{"Actovant", "Aeronyx", "Allotrex", "Twin", "Bionova"}, Names(Apply(sample(), q)))

	q.Sort = SortAsc
	assert.Equal(t, []string{"Bionova", "Allotrex", "Twin", "Aeronyx", "Actovant"}, Names(Apply(sample(), q)))

	q.Sort = SortNone
	assert.Equal(t, Names(sample()), Names(Apply(sample(), q)))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	data := sample()
	Apply(data, DefaultQuery())
	assert.Equal(t, "Aeronyx", data[0].Name)
}

func TestSortDirectionCycle(t *testing.T) {
	d := SortDesc
	d = d.Next()
	assert.Equal(t, SortAsc, d)
	d = d.Next()
	assert.Equal(t, SortNone, d)
	d = d.Next()
	assert.Equal(t, SortDesc, d)
}

func TestParseSortDirection(t *testing.T) {
	for _, s := range []string{"desc", "asc", "none"} {
		d, err := ParseSortDirection(s)
		require.NoError(t, err)
		assert.Equal(t, s, d.String())
	}
	_, err := ParseSortDirection("sideways")
	assert.Error(t, err)
}

func TestTags(t *testing.T) {
	assert.Equal(t, TagHigh, CategoryTag("Very High"))
	assert.Equal(t, TagHigh, CategoryTag("high"))
	assert.Equal(t, TagMedium, CategoryTag("Medium"))
	assert.Equal(t, TagLow, CategoryTag("Low"))
	assert.Equal(t, TagLow, CategoryTag("Higher"))

	assert.Equal(t, TagHigh, NumericTag(75))
	assert.Equal(t, TagMedium, NumericTag(74))
	assert.Equal(t, TagMedium, NumericTag(50))
	assert.Equal(t, TagLow, NumericTag(49))
}

func TestRow(t *testing.T) {
	a := Analog{
		Name: "Actovant", SimilarityScore: 92, CostPerTreatment: 150000,
		RelativeCostRatio: "High", SafetyVsSoC: 78, EfficacyVsSoC: 85,
		HEORCE: "High", CompetitiveLaunches: "3-5", OrderOfEntry: "2nd",
		PortfolioLeverage: true, UnmetNeed: "Very High",
	}
	row := a.Row()
	require.Len(t, row, len(Columns))
	assert.Equal(t, "92%", row[1])
	assert.Equal(t, "$150,000", row[2])
	assert.Equal(t, "Yes", row[9])
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0", FormatCurrency(0))
	assert.Equal(t, "$85,000", FormatCurrency(85000))
	assert.Equal(t, "$1,234,567", FormatCurrency(1234567))
	assert.Equal(t, "-$500", FormatCurrency(-500))
}
