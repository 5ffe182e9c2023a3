package mockdata

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SnookieTejas/launch-access-forecast/internal/analog"
	"github.com/SnookieTejas/launch-access-forecast/internal/chart"
	"github.com/SnookieTejas/launch-access-forecast/internal/forms"
	"github.com/SnookieTejas/launch-access-forecast/internal/scenario"
)

//go:embed data/*.yaml
var embedded embed.FS

var (
	ErrUnknownChannel  = errors.New("unknown channel")
	ErrUnknownVariant  = errors.New("unknown scenario variant")
	ErrUnknownScenario = errors.New("unknown market scenario")
)

// Store is a read-only view over a Dataset. A reload produces a new Store.
type Store struct {
	ds     Dataset
	source string
}

// Load decodes the embedded datasets.
func Load() (*Store, error) {
	ds, err := decodeEmbedded()
	if err != nil {
		return nil, err
	}
	s := &Store{ds: ds, source: "embedded"}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadWithOverride decodes the embedded datasets and merges the YAML file at
// path over them. Lists in the override replace the defaults, maps are
// merged key by key. An empty path behaves like Load.
func LoadWithOverride(path string) (*Store, error) {
	if path == "" {
		return Load()
	}

	ds, err := decodeEmbedded()
	if err != nil {
		return nil, err
	}

	// #nosec G304 - path comes from config or a flag
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read data override: %w", err)
	}
	if err := decodeInto(&ds, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to parse data override %s: %w", path, err)
	}

	s := &Store{ds: ds, source: path}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid data override %s: %w", path, err)
	}
	return s, nil
}

func decodeEmbedded() (Dataset, error) {
	var ds Dataset
	entries, err := fs.Glob(embedded, "data/*.yaml")
	if err != nil {
		return ds, fmt.Errorf("failed to list embedded data: %w", err)
	}
	sort.Strings(entries)

	for _, name := range entries {
		f, err := embedded.Open(name)
		if err != nil {
			return ds, fmt.Errorf("failed to open %s: %w", name, err)
		}
		err = decodeInto(&ds, f)
		_ = f.Close()
		if err != nil {
			return ds, fmt.Errorf("failed to decode %s: %w", name, err)
		}
	}
	return ds, nil
}

func decodeInto(ds *Dataset, r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(ds); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (s *Store) validate() error {
	if len(s.ds.Channels) == 0 {
		return fmt.Errorf("no channels defined")
	}
	for _, ch := range s.ds.Channels {
		if _, ok := s.ds.Forecast.Donut[ch]; !ok {
			return fmt.Errorf("forecast donut missing channel %s", ch)
		}
		if _, ok := s.ds.Forecast.Bars[ch]; !ok {
			return fmt.Errorf("forecast bars missing channel %s", ch)
		}
	}
	for _, v := range scenario.Variants {
		if _, ok := s.ds.Comparison.Variants[string(v)]; !ok {
			return fmt.Errorf("comparison missing variant %s", v)
		}
	}
	seen := make(map[int]bool, len(s.ds.Scenarios))
	for _, sc := range s.ds.Scenarios {
		if seen[sc.ID] {
			return fmt.Errorf("duplicate scenario id %d", sc.ID)
		}
		seen[sc.ID] = true
	}
	return nil
}

// Source names where the data came from: "embedded" or the override path.
func (s *Store) Source() string { return s.source }

// Dataset returns a shallow copy of the decoded data, for export.
func (s *Store) Dataset() Dataset { return s.ds }

// Scenarios returns the dashboard cards.
func (s *Store) Scenarios() []ScenarioCard {
	return append([]ScenarioCard(nil), s.ds.Scenarios...)
}

// Scenario finds a card by id.
func (s *Store) Scenario(id int) (ScenarioCard, bool) {
	for _, sc := range s.ds.Scenarios {
		if sc.ID == id {
			return sc, true
		}
	}
	return ScenarioCard{}, false
}

// SearchScenarios filters cards by title, tag, creator and last modifier
// (case-insensitive) or by either date. A blank query returns every card.
func (s *Store) SearchScenarios(query string) []ScenarioCard {
	return FilterScenarios(s.ds.Scenarios, query)
}

// FilterScenarios applies the dashboard search to cards.
func FilterScenarios(cards []ScenarioCard, query string) []ScenarioCard {
	if strings.TrimSpace(query) == "" {
		return append([]ScenarioCard(nil), cards...)
	}
	q := strings.ToLower(query)

	var out []ScenarioCard
	for _, sc := range cards {
		if strings.Contains(strings.ToLower(sc.Title), q) ||
			strings.Contains(strings.ToLower(sc.Tag), q) ||
			strings.Contains(strings.ToLower(sc.CreatedBy), q) ||
			strings.Contains(strings.ToLower(sc.LastModifiedBy), q) ||
			strings.Contains(sc.InitiatedDate, q) ||
			strings.Contains(sc.LastModified, q) {
			out = append(out, sc)
		}
	}
	return out
}

// KPIs returns the landing page rotation.
func (s *Store) KPIs() []KPI {
	return append([]KPI(nil), s.ds.KPIs...)
}

// TherapyAreaCatalog maps each therapy area to its indications.
func (s *Store) TherapyAreaCatalog() map[string][]string {
	out := make(map[string][]string, len(s.ds.TherapyAreas))
	for _, ta := range s.ds.TherapyAreas {
		out[ta.Name] = append([]string(nil), ta.Indications...)
	}
	return out
}

// AssetOptions are the dropdowns of the asset attributes form.
func (s *Store) AssetOptions() forms.AssetOptions {
	return toFormOptions(s.ds.AssetOptions)
}

// MarketProfileOptions are the dropdowns of the input selection tabs.
func (s *Store) MarketProfileOptions() forms.AssetOptions {
	return toFormOptions(s.ds.MarketProfileOptions)
}

func toFormOptions(o OptionSet) forms.AssetOptions {
	return forms.AssetOptions{
		TherapyAreas:        append([]string(nil), o.TherapyAreas...),
		Indications:         append([]string(nil), o.Indications...),
		OrderOfEntry:        append([]string(nil), o.OrderOfEntry...),
		CompetitiveLaunches: append([]string(nil), o.CompetitiveLaunches...),
	}
}

// FieldDescription is the help text for a form label, or "".
func (s *Store) FieldDescription(label string) string {
	return s.ds.FieldDescriptions[label]
}

// Analogs returns the reference analogs.
func (s *Store) Analogs() []analog.Analog {
	return append([]analog.Analog(nil), s.ds.Analogs...)
}

// Channels lists the payer channels in display order.
func (s *Store) Channels() []string {
	return append([]string(nil), s.ds.Channels...)
}

// ForecastDonut is the 24-month peak access split for a channel.
func (s *Store) ForecastDonut(channel string) ([]chart.Slice, error) {
	return donutFor(s.ds.Forecast, channel)
}

// ForecastBars is the quarterly access uptake for a channel.
func (s *Store) ForecastBars(channel string) ([]chart.StackRow, error) {
	return barsFor(s.ds.Forecast, channel)
}

// ComparisonDonut is the peak access split of a variant for a channel.
func (s *Store) ComparisonDonut(v scenario.Variant, channel string) ([]chart.Slice, error) {
	cc, ok := s.ds.Comparison.Variants[string(v)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, v)
	}
	return donutFor(cc, channel)
}

// ComparisonBars is the quarterly uptake of a variant for a channel.
func (s *Store) ComparisonBars(v scenario.Variant, channel string) ([]chart.StackRow, error) {
	cc, ok := s.ds.Comparison.Variants[string(v)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, v)
	}
	return barsFor(cc, channel)
}

func donutFor(cc ChannelCharts, channel string) ([]chart.Slice, error) {
	d, ok := cc.Donut[channel]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChannel, channel)
	}
	return append([]chart.Slice(nil), d...), nil
}

func barsFor(cc ChannelCharts, channel string) ([]chart.StackRow, error) {
	rows, ok := cc.Bars[channel]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChannel, channel)
	}
	out := make([]chart.StackRow, len(rows))
	for i, r := range rows {
		out[i] = chart.StackRow{Label: r.Label, Segments: append([]chart.Slice(nil), r.Segments...)}
	}
	return out, nil
}

// TPPAttributes returns the target product profile rows.
func (s *Store) TPPAttributes() []TPPAttribute {
	return append([]TPPAttribute(nil), s.ds.Comparison.TPPAttributes...)
}

// Value returns the attribute value under a variant, or "-".
func (t TPPAttribute) Value(v scenario.Variant) string {
	if val, ok := t.Values[string(v)]; ok && val != "" {
		return val
	}
	return "-"
}

// ComparisonChart returns the bars for the given variants, in that order.
func (s *Store) ComparisonChart(variants []scenario.Variant) []chart.Bar {
	var out []chart.Bar
	for _, v := range variants {
		for _, cv := range s.ds.Comparison.Chart {
			if cv.Variant == string(v) {
				out = append(out, chart.Bar{Label: cv.Label, Value: cv.Value})
			}
		}
	}
	return out
}
