package mockdata

import (
	"github.com/SnookieTejas/launch-access-forecast/internal/analog"
	"github.com/SnookieTejas/launch-access-forecast/internal/chart"
)

// Dataset is the decoded form of every YAML file under data/. An override
// file uses the same shape.
type Dataset struct {
	Scenarios            []ScenarioCard    `yaml:"scenarios" json:"scenarios"`
	KPIs                 []KPI             `yaml:"kpis" json:"kpis"`
	TherapyAreas         []TherapyArea     `yaml:"therapy_areas" json:"therapy_areas"`
	AssetOptions         OptionSet         `yaml:"asset_options" json:"asset_options"`
	MarketProfileOptions OptionSet         `yaml:"market_profile_options" json:"market_profile_options"`
	FieldDescriptions    map[string]string `yaml:"field_descriptions" json:"field_descriptions"`
	Analogs              []analog.Analog   `yaml:"analogs" json:"analogs"`
	Channels             []string          `yaml:"channels" json:"channels"`
	Forecast             ChannelCharts     `yaml:"forecast" json:"forecast"`
	Comparison           Comparison        `yaml:"comparison" json:"comparison"`
	Market               Market            `yaml:"market" json:"market"`
}

// ScenarioCard is a tile on the dashboard.
type ScenarioCard struct {
	ID             int    `yaml:"id" json:"id"`
	Title          string `yaml:"title" json:"title"`
	Tag            string `yaml:"tag" json:"tag"`
	TagColor       string `yaml:"tag_color" json:"tag_color"`
	InitiatedDate  string `yaml:"initiated_date" json:"initiated_date"`
	CreatedBy      string `yaml:"created_by" json:"created_by"`
	LastModified   string `yaml:"last_modified" json:"last_modified"`
	LastModifiedBy string `yaml:"last_modified_by" json:"last_modified_by"`
	Favorite       bool   `yaml:"favorite" json:"favorite"`
	Pinned         bool   `yaml:"pinned" json:"pinned"`
}

// KPI is one entry of the landing page rotation.
type KPI struct {
	Icon  string `yaml:"icon" json:"icon"`
	Label string `yaml:"label" json:"label"`
	Color string `yaml:"color" json:"color"`
}

// TherapyArea lists the indications selectable under an area.
type TherapyArea struct {
	Name        string   `yaml:"name" json:"name"`
	Indications []string `yaml:"indications" json:"indications"`
}

// OptionSet holds the dropdown lists of an attribute form.
type OptionSet struct {
	TherapyAreas        []string `yaml:"therapy_areas,omitempty" json:"therapy_areas,omitempty"`
	Indications         []string `yaml:"indications,omitempty" json:"indications,omitempty"`
	OrderOfEntry        []string `yaml:"order_of_entry" json:"order_of_entry"`
	CompetitiveLaunches []string `yaml:"competitive_launches" json:"competitive_launches"`
}

// ChannelCharts is a donut and a quarterly stacked bar series per channel.
type ChannelCharts struct {
	Donut map[string][]chart.Slice    `yaml:"donut" json:"donut"`
	Bars  map[string][]chart.StackRow `yaml:"bars" json:"bars"`
}

// Comparison holds the scenario comparison datasets.
type Comparison struct {
	Variants      map[string]ChannelCharts `yaml:"variants" json:"variants"`
	TPPAttributes []TPPAttribute           `yaml:"tpp_attributes" json:"tpp_attributes"`
	Chart         []VariantValue           `yaml:"chart" json:"chart"`
}

// TPPAttribute is a target product profile row with one value per variant.
type TPPAttribute struct {
	Attribute string            `yaml:"attribute" json:"attribute"`
	Values    map[string]string `yaml:"values" json:"values"`
}

// VariantValue is a bar of the scenario comparison chart.
type VariantValue struct {
	Variant string  `yaml:"variant" json:"variant"`
	Label   string  `yaml:"label" json:"label"`
	Value   float64 `yaml:"value" json:"value"`
}

// Market holds the competitor brand data.
type Market struct {
	Brands             []string                     `yaml:"brands" json:"brands"`
	Attributes         []string                     `yaml:"attributes" json:"attributes"`
	CurrencyAttributes []string                     `yaml:"currency_attributes" json:"currency_attributes"`
	BrandData          map[string]map[string]string `yaml:"brand_data" json:"brand_data"`
	Visualization      MarketVisualization          `yaml:"visualization" json:"visualization"`
}

// MarketVisualization backs the per-scenario market share view.
type MarketVisualization struct {
	Scenarios          []string                      `yaml:"scenarios" json:"scenarios"`
	Attributes         []string                      `yaml:"attributes" json:"attributes"`
	CurrencyAttributes []string                      `yaml:"currency_attributes" json:"currency_attributes"`
	BrandColors        map[string]string             `yaml:"brand_colors" json:"brand_colors"`
	Shares             map[string]map[string]float64 `yaml:"shares" json:"shares"`
	BrandAttributes    map[string]map[string]string  `yaml:"brand_attributes" json:"brand_attributes"`
}
