package mockdata

import (
	"fmt"

	"github.com/SnookieTejas/launch-access-forecast/internal/chart"
)

// BrandTable is an attribute by brand grid ready for display.
type BrandTable struct {
	Attributes []string
	Brands     []string
	// Cells[i][j] is attribute i of brand j.
	Cells [][]string
}

// Brands lists the competitor brands in selection order.
func (s *Store) Brands() []string {
	return append([]string(nil), s.ds.Market.Brands...)
}

// MarketScenarios lists the scenarios of the market share view.
func (s *Store) MarketScenarios() []string {
	return append([]string(nil), s.ds.Market.Visualization.Scenarios...)
}

// BrandComparison builds the TPP attribute table for the selected brands.
func (s *Store) BrandComparison(brands []string) BrandTable {
	m := s.ds.Market
	return buildBrandTable(m.Attributes, brands, m.BrandData, m.CurrencyAttributes)
}

// BrandAttributes builds the attribute table of the market share view.
func (s *Store) BrandAttributes(brands []string) BrandTable {
	v := s.ds.Market.Visualization
	return buildBrandTable(v.Attributes, brands, v.BrandAttributes, v.CurrencyAttributes)
}

func buildBrandTable(attrs, brands []string, data map[string]map[string]string, currency []string) BrandTable {
	money := make(map[string]bool, len(currency))
	for _, a := range currency {
		money[a] = true
	}

	t := BrandTable{
		Attributes: append([]string(nil), attrs...),
		Brands:     append([]string(nil), brands...),
		Cells:      make([][]string, len(attrs)),
	}
	for i, attr := range attrs {
		row := make([]string, len(brands))
		for j, brand := range brands {
			row[j] = BrandCell(data[brand][attr], money[attr])
		}
		t.Cells[i] = row
	}
	return t
}

// BrandCell formats a raw brand attribute: "-" when missing, "$" prefixed
// for currency attributes.
func BrandCell(raw string, currency bool) string {
	if raw == "" {
		return "-"
	}
	if currency {
		return "$" + raw
	}
	return raw
}

// BrandShares returns the market share of each selected brand under a
// scenario. Brands without a share get zero.
func (s *Store) BrandShares(scenarioName string, brands []string) ([]chart.Slice, error) {
	shares, ok := s.ds.Market.Visualization.Shares[scenarioName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScenario, scenarioName)
	}
	out := make([]chart.Slice, len(brands))
	for i, b := range brands {
		out[i] = chart.Slice{Name: b, Value: shares[b]}
	}
	return out, nil
}

// BrandPalette colours brands for the market share donuts.
func (s *Store) BrandPalette() chart.Palette {
	colors := make(map[string]string, len(s.ds.Market.Visualization.BrandColors))
	for k, v := range s.ds.Market.Visualization.BrandColors {
		colors[k] = v
	}
	return chart.MapPalette(colors, "#9CA3AF")
}
