package ui

import (
	"time"

	"github.com/SnookieTejas/launch-access-forecast/internal/forms"
	"github.com/SnookieTejas/launch-access-forecast/internal/ui/components"
)

// attributeFields builds the controls of an asset attributes form. The
// basics (therapy area, indication, timeframe, product name) are left out
// of the market profile tabs.
func attributeFields(a *forms.AssetAttributes, basics bool, now func() time.Time) []components.Field {
	var fields []components.Field
	if basics {
		product := components.NewTextField("Product name", "Enter product name", a.ProductName)
		product.OnChange = func(v string) { a.ProductName = v }
		fields = append(fields,
			components.NewSelectField("Therapy Area", &a.TherapyArea),
			components.NewSelectField("Indication", &a.Indication),
			components.NewDateField("Timeframe for forecast", &a.Timeframe, now),
			product,
		)
	}

	cost := components.NewTextField("Cost per treatment per annum", "e.g. 150000", a.CostPerTreatment)
	cost.OnChange = func(v string) { a.CostPerTreatment = v }

	commercial := components.NewTextField("Commercial (%)", "0-100", a.Commercial)
	commercial.OnChange = func(v string) { a.Commercial = v }
	medicare := components.NewTextField("Medicare (%)", "0-100", a.Medicare)
	medicare.OnChange = func(v string) { a.Medicare = v }
	medicaid := components.NewTextField("Medicaid (%)", "0-100", a.Medicaid)
	medicaid.OnChange = func(v string) { a.Medicaid = v }

	return append(fields,
		components.NewSegmentedField("HEOR/CE", &a.HEORCE),
		components.NewToggleField("Demonstrated efficacy in sub-population", &a.DemonstratedEfficacy),
		components.NewSliderField("Efficacy vs SoC", &a.EfficacyVsSoC),
		components.NewSliderField("Safety vs SoC", &a.SafetyVsSoC),
		components.NewSegmentedField("Relative cost ratio", &a.RelativeCostRatio),
		cost,
		commercial,
		medicare,
		medicaid,
		components.NewSegmentedField("Unmet need in therapy area", &a.UnmetNeed),
		components.NewSegmentedField("Advocacy", &a.Advocacy),
		components.NewSegmentedField("Low cost option usage", &a.LowCostOption),
		components.NewSegmentedField("Treatment options", &a.TreatmentOptions),
		components.NewSegmentedField("Budget impact of disease treated by drug", &a.BudgetImpact),
		components.NewToggleField("Orphan status", &a.OrphanStatus),
		components.NewToggleField("Portfolio leverage", &a.PortfolioLeverage),
		components.NewToggleField("Higher value to patient relative to plan", &a.HigherValue),
		components.NewSelectField("Order of entry", &a.OrderOfEntry),
		components.NewSelectField("Competitive branded launches", &a.CompetitiveLaunches),
	)
}
