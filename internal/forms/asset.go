package forms

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	levels         = []string{"Low", "Medium", "High"}
	extendedLevels = []string{"Low", "Medium", "High", "Very High"}
)

// AssetAttributes is the asset attributes form of the simulation module.
// The same shape backs the input selection tabs of the scenario comparison.
type AssetAttributes struct {
	TherapyArea Select
	Indication  Select
	Timeframe   DateRange
	ProductName string

	HEORCE               Segmented
	DemonstratedEfficacy Toggle
	EfficacyVsSoC        RangeSlider
	SafetyVsSoC          RangeSlider
	RelativeCostRatio    Segmented
	CostPerTreatment     string

	Commercial string
	Medicare   string
	Medicaid   string

	UnmetNeed         Segmented
	Advocacy          Segmented
	LowCostOption     Segmented
	TreatmentOptions  Segmented
	BudgetImpact      Segmented
	OrphanStatus      Toggle
	PortfolioLeverage Toggle
	HigherValue       Toggle

	OrderOfEntry        Select
	CompetitiveLaunches Select
}

// AssetOptions are the dropdown lists of the asset attributes form.
type AssetOptions struct {
	TherapyAreas        []string
	Indications         []string
	OrderOfEntry        []string
	CompetitiveLaunches []string
}

// NewAssetAttributes returns the form with its defaults. When prefill is
// non-nil the therapy area, indication and timeframe are copied from it.
func NewAssetAttributes(opts AssetOptions, prefill *ScenarioFormData) *AssetAttributes {
	a := &AssetAttributes{
		TherapyArea: Select{Options: opts.TherapyAreas, Placeholder: "Select therapy area"},
		Indication:  Select{Options: opts.Indications, Placeholder: "Select indication"},

		HEORCE:            NewSegmented(levels, "Medium"),
		EfficacyVsSoC:     NewRangeSlider(0, 100, 50),
		SafetyVsSoC:       NewRangeSlider(0, 100, 50),
		RelativeCostRatio: NewSegmented(levels, "Medium"),

		Commercial: "60",
		Medicare:   "20",
		Medicaid:   "10",

		UnmetNeed:        NewSegmented(extendedLevels, "Medium"),
		Advocacy:         NewSegmented(extendedLevels, "Medium"),
		LowCostOption:    NewSegmented(levels, "Medium"),
		TreatmentOptions: NewSegmented(levels, "Medium"),
		BudgetImpact:     NewSegmented(levels, "Medium"),

		OrderOfEntry:        Select{Options: opts.OrderOfEntry, Placeholder: "Select order"},
		CompetitiveLaunches: Select{Options: opts.CompetitiveLaunches, Placeholder: "Select range"},
	}

	if prefill != nil {
		a.TherapyArea.Value = prefill.TherapyArea
		a.Indication.Value = prefill.Indication
		a.Timeframe = DateRange{Start: prefill.StartDate, End: prefill.EndDate}
	}
	return a
}

// NewMarketProfile returns the form used on the input selection tabs,
// which starts the commercial share at 65.
func NewMarketProfile(opts AssetOptions) *AssetAttributes {
	a := NewAssetAttributes(opts, nil)
	a.Commercial = "65"
	return a
}

// ChannelMixTotal sums the commercial, medicare and medicaid shares.
// Blank shares count as zero. The total is informational only and is not
// required to reach 100.
func (a *AssetAttributes) ChannelMixTotal() (int, error) {
	total := 0
	for _, ch := range [][2]string{
		{"commercial", a.Commercial},
		{"medicare", a.Medicare},
		{"medicaid", a.Medicaid},
	} {
		name, raw := ch[0], strings.TrimSpace(ch[1])
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("invalid %s share %q: %w", name, raw, err)
		}
		total += n
	}
	return total, nil
}

// ChannelMixHint describes the channel total for display next to the
// market profile.
func (a *AssetAttributes) ChannelMixHint() string {
	total, err := a.ChannelMixTotal()
	if err != nil {
		return "Channel mix: enter whole percentages"
	}
	if total == 100 {
		return "Channel mix: 100%"
	}
	return fmt.Sprintf("Channel mix: %d%% (remaining %d%%)", total, 100-total)
}

// Summary flattens the form into label/value pairs in form order.
func (a *AssetAttributes) Summary() [][2]string {
	return [][2]string{
		{"Therapy Area", a.TherapyArea.Value},
		{"Indication", a.Indication.Value},
		{"Timeframe for forecast", a.Timeframe.DisplayText()},
		{"Product name", a.ProductName},
		{"HEOR/CE", a.HEORCE.Value()},
		{"Demonstrated efficacy in sub-population", a.DemonstratedEfficacy.Label()},
		{"Efficacy vs SoC", strconv.Itoa(a.EfficacyVsSoC.Value())},
		{"Safety vs SoC", strconv.Itoa(a.SafetyVsSoC.Value())},
		{"Relative cost ratio", a.RelativeCostRatio.Value()},
		{"Cost per treatment per annum", a.CostPerTreatment},
		{"Commercial (%)", a.Commercial},
		{"Medicare (%)", a.Medicare},
		{"Medicaid (%)", a.Medicaid},
		{"Unmet need in therapy area", a.UnmetNeed.Value()},
		{"Advocacy", a.Advocacy.Value()},
		{"Low cost option usage", a.LowCostOption.Value()},
		{"Treatment options", a.TreatmentOptions.Value()},
		{"Budget impact of disease treated by drug", a.BudgetImpact.Value()},
		{"Orphan status", a.OrphanStatus.Label()},
		{"Portfolio leverage", a.PortfolioLeverage.Label()},
		{"Higher value to patient relative to plan", a.HigherValue.Label()},
		{"Order of entry", a.OrderOfEntry.Value},
		{"Competitive branded launches", a.CompetitiveLaunches.Value},
	}
}
