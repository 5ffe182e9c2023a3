package analog

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Analog is a previously launched product used as a reference point for a
// new asset.
type Analog struct {
	Name                string `json:"name" yaml:"name"`
	SimilarityScore     int    `json:"similarity_score" yaml:"similarity_score"`
	CostPerTreatment    int    `json:"cost_per_treatment" yaml:"cost_per_treatment"`
	RelativeCostRatio   string `json:"relative_cost_ratio" yaml:"relative_cost_ratio"`
	SafetyVsSoC         int    `json:"safety_vs_soc" yaml:"safety_vs_soc"`
	EfficacyVsSoC       int    `json:"efficacy_vs_soc" yaml:"efficacy_vs_soc"`
	HEORCE              string `json:"heor_ce" yaml:"heor_ce"`
	CompetitiveLaunches string `json:"competitive_launches" yaml:"competitive_launches"`
	OrderOfEntry        string `json:"order_of_entry" yaml:"order_of_entry"`
	PortfolioLeverage   bool   `json:"portfolio_leverage" yaml:"portfolio_leverage"`
	UnmetNeed           string `json:"unmet_need" yaml:"unmet_need"`
}

// Columns are the table headers in display order.
var Columns = []string{
	"Analog",
	"Similarity Score",
	"Cost per Treatment",
	"Relative Cost",
	"Safety vs SoC",
	"Efficacy vs SoC",
	"HEOR/CE",
	"Competitive Launches",
	"Order of Entry",
	"Portfolio Leverage",
	"Unmet Need",
}

// Row renders the analog as table cells matching Columns.
func (a Analog) Row() []string {
	return []string{
		a.Name,
		strconv.Itoa(a.SimilarityScore) + "%",
		FormatCurrency(a.CostPerTreatment),
		a.RelativeCostRatio,
		strconv.Itoa(a.SafetyVsSoC),
		strconv.Itoa(a.EfficacyVsSoC),
		a.HEORCE,
		a.CompetitiveLaunches,
		a.OrderOfEntry,
		YesNo(a.PortfolioLeverage),
		a.UnmetNeed,
	}
}

// Names returns the analog names in input order.
func Names(data []Analog) []string {
	names := make([]string, len(data))
	for i, a := range data {
		names[i] = a.Name
	}
	return names
}

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders whole US dollars, e.g. "$150,000".
func FormatCurrency(v int) string {
	if v < 0 {
		return "-" + usd.Sprintf("$%d", -v)
	}
	return usd.Sprintf("$%d", v)
}

// YesNo renders a boolean cell.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
