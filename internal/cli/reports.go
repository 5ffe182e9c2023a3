package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/SnookieTejas/launch-access-forecast/internal/analog"
	"github.com/SnookieTejas/launch-access-forecast/internal/chart"
	"github.com/SnookieTejas/launch-access-forecast/internal/formatter"
	"github.com/SnookieTejas/launch-access-forecast/internal/mockdata"
	"github.com/SnookieTejas/launch-access-forecast/internal/scenario"
)

// maxBrandCell is where market table cells are cut.
const maxBrandCell = 40

func scenariosReport(store *mockdata.Store, query string) *formatter.Report {
	cards := store.SearchScenarios(query)
	r := &formatter.Report{Title: "Scenarios"}
	if query != "" {
		r.Subtitle = fmt.Sprintf("Search: %q", query)
	}

	favorites, pinned := 0, 0
	rows := make([][]string, len(cards))
	for i, c := range cards {
		var flags []string
		if c.Favorite {
			favorites++
			flags = append(flags, "favorite")
		}
		if c.Pinned {
			pinned++
			flags = append(flags, "pinned")
		}
		rows[i] = []string{
			strconv.Itoa(c.ID), c.Title, c.Tag, c.InitiatedDate, c.CreatedBy,
			c.LastModified, c.LastModifiedBy, strings.Join(flags, ", "),
		}
	}

	r.AddSection(formatter.Section{
		Title: "Summary",
		Icon:  "statistics",
		Items: []formatter.Item{
			{Label: "Scenarios", Value: strconv.Itoa(len(cards))},
			{Label: "Favorites", Value: strconv.Itoa(favorites)},
			{Label: "Pinned", Value: strconv.Itoa(pinned)},
		},
	})
	if len(cards) == 0 {
		r.AddSection(formatter.Section{Title: "Dashboard", Note: "No scenarios match the search."})
		return r
	}
	return r.AddSection(formatter.Section{
		Title: "Dashboard",
		Icon:  "summary",
		Table: &formatter.Table{
			Headers: []string{"ID", "Title", "Tag", "Initiated", "Created By", "Last Modified", "Modified By", "Flags"},
			Rows:    rows,
		},
	})
}

func analogsReport(store *mockdata.Store, q analog.Query) (*formatter.Report, error) {
	data := store.Analogs()
	known := make(map[string]bool, len(data))
	for _, a := range data {
		known[a.Name] = true
	}
	for _, name := range q.Selected {
		if !known[name] {
			return nil, fmt.Errorf("unknown analog: %s", name)
		}
	}
	if q.MinScore < 0 || q.MaxScore > 100 || q.MinScore > q.MaxScore {
		return nil, fmt.Errorf("invalid similarity range %d-%d (need 0 <= min <= max <= 100)", q.MinScore, q.MaxScore)
	}

	rows := analog.Apply(data, q)
	r := &formatter.Report{
		Title:    "Analog Selection",
		Subtitle: fmt.Sprintf("Similarity %d%% - %d%%, sorted %s", q.MinScore, q.MaxScore, q.Sort),
	}
	selected := "all"
	if len(q.Selected) > 0 {
		selected = strings.Join(q.Selected, ", ")
	}
	r.AddSection(formatter.Section{
		Title: "Filters",
		Icon:  "info",
		Items: []formatter.Item{
			{Label: "Analogs", Value: selected},
			{Label: "Shown", Value: fmt.Sprintf("%d of %d", len(rows), len(data))},
		},
	})

	if len(rows) == 0 {
		return r.AddSection(formatter.Section{Title: "Analogs", Note: analog.EmptyMessage + " " + analog.EmptyHint}), nil
	}
	body := make([][]string, len(rows))
	scores := make([]float64, len(rows))
	for i, a := range rows {
		body[i] = a.Row()
		scores[i] = float64(a.SimilarityScore) / 100
	}
	return r.AddSection(formatter.Section{
		Title:  "Analogs",
		Icon:   "pattern",
		Table:  &formatter.Table{Headers: analog.Columns, Rows: body},
		Scores: scores,
	}), nil
}

// channelsOrAll returns the requested channel, or every channel when empty.
func channelsOrAll(store *mockdata.Store, channel string) []string {
	if channel == "" {
		return store.Channels()
	}
	return []string{channel}
}

func forecastReport(store *mockdata.Store, channel string, analogs []string) (*formatter.Report, error) {
	r := &formatter.Report{Title: "Access Forecast"}
	if len(analogs) > 0 {
		r.Subtitle = "Selected analogs: " + strings.Join(analogs, ", ")
	}

	for _, ch := range channelsOrAll(store, channel) {
		donut, err := store.ForecastDonut(ch)
		if err != nil {
			return nil, err
		}
		bars, err := store.ForecastBars(ch)
		if err != nil {
			return nil, err
		}
		r.AddSection(formatter.Section{
			Title:   ch + " peak access",
			Icon:    "insight",
			Donut:   donut,
			Palette: chart.TierPalette,
		}).AddSection(formatter.Section{
			Title:   ch + " access uptake",
			Icon:    "statistics",
			Stack:   bars,
			Palette: chart.TierPalette,
		})
	}
	return r, nil
}

// compareOptions picks the scenario comparison view to print.
type compareOptions struct {
	Tab     scenario.Tab
	Channel string
	Peak    string
	Uptake  string
}

func compareReport(store *mockdata.Store, opts compareOptions) (*formatter.Report, error) {
	m := scenario.NewMachine(opts.Tab)
	if !m.ShowsCharts() {
		return nil, fmt.Errorf("%s is an input selection tab and has no charts", opts.Tab)
	}
	if err := setVariant(opts.Peak, m.SetPeakVariant); err != nil {
		return nil, fmt.Errorf("invalid --peak: %w", err)
	}
	if err := setVariant(opts.Uptake, m.SetUptakeVariant); err != nil {
		return nil, fmt.Errorf("invalid --uptake: %w", err)
	}

	r := &formatter.Report{
		Title:    "Scenario Comparison",
		Subtitle: fmt.Sprintf("%s (peak: %s, uptake: %s)", scenario.TabLabel(opts.Tab), m.DonutVariant().Label(), m.BarVariant().Label()),
	}

	for _, ch := range channelsOrAll(store, opts.Channel) {
		donut, err := store.ComparisonDonut(m.DonutVariant(), ch)
		if err != nil {
			return nil, err
		}
		bars, err := store.ComparisonBars(m.BarVariant(), ch)
		if err != nil {
			return nil, err
		}
		r.AddSection(formatter.Section{
			Title:   ch + " peak access",
			Icon:    "insight",
			Donut:   donut,
			Palette: chart.TierPalette,
		}).AddSection(formatter.Section{
			Title:   ch + " access uptake",
			Icon:    "statistics",
			Stack:   bars,
			Palette: chart.TierPalette,
		})
	}

	variants := m.SeriesVariants()
	headers := []string{"Attribute"}
	for _, v := range variants {
		headers = append(headers, v.Label())
	}
	var rows [][]string
	for _, attr := range store.TPPAttributes() {
		row := []string{attr.Attribute}
		for _, v := range variants {
			row = append(row, attr.Value(v))
		}
		rows = append(rows, row)
	}
	r.AddSection(formatter.Section{
		Title: "Target product profile",
		Icon:  "info",
		Table: &formatter.Table{Headers: headers, Rows: rows},
	})

	return r.AddSection(formatter.Section{
		Title: "Scenario chart",
		Icon:  "statistics",
		Bars:  store.ComparisonChart(variants),
	}), nil
}

func setVariant(raw string, set func(scenario.Variant) error) error {
	if raw == "" {
		return nil
	}
	v, err := scenario.ParseVariant(raw)
	if err != nil {
		return err
	}
	return set(v)
}

func marketReport(store *mockdata.Store, brands []string) (*formatter.Report, error) {
	all := store.Brands()
	if len(brands) == 0 {
		brands = all
	}
	known := make(map[string]bool, len(all))
	for _, b := range all {
		known[b] = true
	}
	for _, b := range brands {
		if !known[b] {
			return nil, fmt.Errorf("unknown brand: %s (known: %s)", b, strings.Join(all, ", "))
		}
	}

	r := &formatter.Report{
		Title:    "Market Share Comparison",
		Subtitle: "Brands: " + strings.Join(brands, ", "),
	}
	r.AddSection(formatter.Section{
		Title: "Target product profiles",
		Icon:  "info",
		Table: brandTable(store.BrandComparison(brands)),
	})

	palette := store.BrandPalette()
	for _, name := range store.MarketScenarios() {
		shares, err := store.BrandShares(name, brands)
		if err != nil {
			return nil, err
		}
		r.AddSection(formatter.Section{
			Title:   "Market share: " + name,
			Icon:    "insight",
			Donut:   shares,
			Palette: palette,
		})
	}

	return r.AddSection(formatter.Section{
		Title: "Brand attributes",
		Icon:  "info",
		Table: brandTable(store.BrandAttributes(brands)),
	}), nil
}

func brandTable(t mockdata.BrandTable) *formatter.Table {
	out := &formatter.Table{Headers: append([]string{"Attribute"}, t.Brands...)}
	for i, attr := range t.Attributes {
		row := []string{attr}
		for _, cell := range t.Cells[i] {
			row = append(row, truncate.StringWithTail(cell, maxBrandCell, "…"))
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func contrastReport(colors []string) *formatter.Report {
	rows := make([][]string, len(colors))
	for i, c := range colors {
		rows[i] = []string{c, chart.ContrastColor(c)}
	}
	return (&formatter.Report{Title: "Contrast Colors"}).AddSection(formatter.Section{
		Title: "Label colors",
		Table: &formatter.Table{Headers: []string{"Background", "Text"}, Rows: rows},
	})
}
