package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/SnookieTejas/launch-access-forecast/internal/analog"
	"github.com/SnookieTejas/launch-access-forecast/internal/config"
	"github.com/SnookieTejas/launch-access-forecast/internal/formatter"
	"github.com/SnookieTejas/launch-access-forecast/internal/logger"
	"github.com/SnookieTejas/launch-access-forecast/internal/mockdata"
	"github.com/SnookieTejas/launch-access-forecast/internal/scenario"
	"github.com/SnookieTejas/launch-access-forecast/internal/ui"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("1.2.3", "abc123", "2025-01-01")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--no-color", "--no-emoji"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func decodeReport(t *testing.T, out string) formatter.Report {
	t.Helper()
	var r formatter.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r), out)
	return r
}

func section(t *testing.T, r formatter.Report, title string) formatter.Section {
	t.Helper()
	for _, s := range r.Sections {
		if s.Title == title {
			return s
		}
	}
	t.Fatalf("no section %q in %q", title, r.Title)
	return formatter.Section{}
}

func testStore(t *testing.T) *mockdata.Store {
	t.Helper()
	s, err := mockdata.Load()
	require.NoError(t, err)
	return s
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "launchaccess 1.2.3 (abc123) built on 2025-01-01")
	assert.Contains(t, out, "Go version:")
}

func TestScenariosList(t *testing.T) {
	out, err := execute(t, "scenarios", "list", "--search", "scenario 3", "-o", "json")
	require.NoError(t, err)

	r := decodeReport(t, out)
	assert.Equal(t, "Scenarios", r.Title)
	table := section(t, r, "Dashboard").Table
	require.NotNil(t, table)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "3", table.Rows[0][0])
	assert.Equal(t, "Scenario 3", table.Rows[0][1])
}

func TestScenariosListNoMatch(t *testing.T) {
	r := scenariosReport(testStore(t), "no such scenario")
	assert.Equal(t, "No scenarios match the search.", section(t, *r, "Dashboard").Note)
	assert.Equal(t, "0", r.Sections[0].Items[0].Value)
}

func TestScenariosListText(t *testing.T) {
	out, err := execute(t, "scenarios", "list")
	require.NoError(t, err)
	for _, sc := range testStore(t).Scenarios() {
		assert.Contains(t, out, sc.Title)
	}
}

func TestAnalogsReport(t *testing.T) {
	store := testStore(t)
	q := analog.Query{MinScore: 0, MaxScore: 100, Selected: []string{"Actovant", "Aeronyx"}, Sort: analog.SortAsc}

	r, err := analogsReport(store, q)
	require.NoError(t, err)
	s := section(t, *r, "Analogs")
	want := analog.Apply(store.Analogs(), q)
	require.Len(t, s.Table.Rows, len(want))
	for i, a := range want {
		assert.Equal(t, a.Name, s.Table.Rows[i][0])
		assert.InDelta(t, float64(a.SimilarityScore)/100, s.Scores[i], 1e-9)
	}
	assert.Equal(t, analog.Columns, s.Table.Headers)
}

func TestAnalogsReportErrors(t *testing.T) {
	store := testStore(t)

	_, err := analogsReport(store, analog.Query{MaxScore: 100, Selected: []string{"Nope"}})
	assert.EqualError(t, err, "unknown analog: Nope")

	_, err = analogsReport(store, analog.Query{MinScore: 80, MaxScore: 20})
	assert.Error(t, err)
}

func TestAnalogsEmpty(t *testing.T) {
	r, err := analogsReport(testStore(t), analog.Query{MinScore: 100, MaxScore: 100, Selected: []string{"Actovant"}})
	require.NoError(t, err)
	if s := section(t, *r, "Analogs"); s.Table == nil {
		assert.Contains(t, s.Note, analog.EmptyMessage)
	}
}

func TestAnalogsCommandFlags(t *testing.T) {
	_, err := execute(t, "analogs", "--sort", "sideways")
	assert.ErrorContains(t, err, "invalid --sort")

	out, err := execute(t, "analogs", "--select", "Actovant", "-o", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Actovant")
	assert.NotContains(t, out, "Aeronyx")
}

func TestForecastReport(t *testing.T) {
	store := testStore(t)

	r, err := forecastReport(store, "Medicare", []string{"Actovant"})
	require.NoError(t, err)
	assert.Equal(t, "Selected analogs: Actovant", r.Subtitle)
	require.Len(t, r.Sections, 2)
	donut, err := store.ForecastDonut("Medicare")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(donut, r.Sections[0].Donut))

	all, err := forecastReport(store, "", nil)
	require.NoError(t, err)
	assert.Len(t, all.Sections, 2*len(store.Channels()))

	_, err = forecastReport(store, "Veterans", nil)
	assert.ErrorIs(t, err, mockdata.ErrUnknownChannel)
}

func TestCompareReport(t *testing.T) {
	store := testStore(t)

	r, err := compareReport(store, compareOptions{Tab: scenario.TabScenario2, Channel: "Commercial"})
	require.NoError(t, err)
	assert.Contains(t, r.Subtitle, "peak: Better efficacy")
	tpp := section(t, *r, "Target product profile")
	assert.Equal(t, []string{"Attribute", "Base Case", "Better efficacy"}, tpp.Table.Headers)
	assert.Len(t, section(t, *r, "Scenario chart").Bars, 2)

	r, err = compareReport(store, compareOptions{Tab: scenario.TabScenario2, Channel: "Commercial", Peak: "base-case"})
	require.NoError(t, err)
	want, err := store.ComparisonDonut(scenario.VariantBase, "Commercial")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, section(t, *r, "Commercial peak access").Donut))
}

func TestCompareReportErrors(t *testing.T) {
	store := testStore(t)

	_, err := compareReport(store, compareOptions{Tab: scenario.TabScenario1})
	assert.ErrorContains(t, err, "input selection tab")

	_, err = compareReport(store, compareOptions{Tab: scenario.TabScenario2, Peak: "lower-safety"})
	assert.ErrorIs(t, err, scenario.ErrOptionUnavailable)

	_, err = compareReport(store, compareOptions{Tab: scenario.TabBase, Uptake: "better-efficacy"})
	assert.ErrorIs(t, err, scenario.ErrOptionUnavailable)

	_, err = execute(t, "compare", "--tab", "scenario9")
	assert.ErrorContains(t, err, "invalid --tab")
}

func TestMarketReport(t *testing.T) {
	store := testStore(t)

	r, err := marketReport(store, []string{"Biotropex", "Immuvex"})
	require.NoError(t, err)
	profiles := section(t, *r, "Target product profiles")
	assert.Equal(t, []string{"Attribute", "Biotropex", "Immuvex"}, profiles.Table.Headers)
	for _, row := range profiles.Table.Rows {
		for _, cell := range row[1:] {
			assert.LessOrEqual(t, len([]rune(cell)), maxBrandCell)
		}
	}
	assert.Len(t, r.Sections, 2+len(store.MarketScenarios()))

	all, err := marketReport(store, nil)
	require.NoError(t, err)
	assert.Equal(t, "Brands: "+strings.Join(store.Brands(), ", "), all.Subtitle)

	_, err = marketReport(store, []string{"Placebo"})
	assert.ErrorContains(t, err, "unknown brand: Placebo")
}

func TestBrandTableTruncates(t *testing.T) {
	long := strings.Repeat("x", 60)
	table := brandTable(mockdata.BrandTable{
		Attributes: []string{"Mechanism"},
		Brands:     []string{"A"},
		Cells:      [][]string{{long}},
	})
	cell := table.Rows[0][1]
	assert.True(t, strings.HasSuffix(cell, "…"))
	assert.Equal(t, maxBrandCell, len([]rune(cell)))
}

func TestContrastCommand(t *testing.T) {
	out, err := execute(t, "contrast", "#FFFFFF", "#000000", "bad", "-o", "json")
	require.NoError(t, err)

	rows := decodeReport(t, out).Sections[0].Table.Rows
	assert.Equal(t, [][]string{
		{"#FFFFFF", "#000000"},
		{"#000000", "#FFFFFF"},
		{"bad", "#FFFFFF"},
	}, rows)

	_, err = execute(t, "contrast")
	assert.Error(t, err)
}

func TestOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	out, err := execute(t, "market", "--brands", "Orbisyn", "-o", "markdown", "--output-file", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Market Share Comparison")
}

func TestConfigInitShowValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")

	out, err := execute(t, "config", "init", "--minimal", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration file created at: "+path)

	_, err = execute(t, "config", "init", "--path", path)
	assert.ErrorContains(t, err, "already exists")
	_, err = execute(t, "config", "init", "--path", path, "--force")
	require.NoError(t, err)

	out, err = execute(t, "config", "show", "--config", path, "--format", "json")
	require.NoError(t, err)
	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "default", cfg.UI.Theme)

	out, err = execute(t, "config", "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
}

func TestConfigValidateReportsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: neon\n"), 0o600))

	out, err := execute(t, "config", "validate", "--config", path)
	require.Error(t, err)
	assert.Contains(t, out, "Configuration validation failed")

	// other commands refuse to start
	_, err = execute(t, "--config", path, "scenarios", "list")
	assert.ErrorContains(t, err, "failed to load configuration")
}

func TestConfigFillsUnsetFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  default_format: json\n"), 0o600))

	out, err := execute(t, "--config", path, "contrast", "#FFFFFF")
	require.NoError(t, err)
	assert.Equal(t, "Contrast Colors", decodeReport(t, out).Title)

	out, err = execute(t, "--config", path, "-o", "markdown", "contrast", "#FFFFFF")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "#"), out)
}

func TestDataExport(t *testing.T) {
	out, err := execute(t, "data", "export", "--format", "json")
	require.NoError(t, err)

	var got mockdata.Dataset
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	if diff := cmp.Diff(testStore(t).Dataset(), got); diff != "" {
		t.Errorf("exported dataset mismatch (-want +got):\n%s", diff)
	}

	_, err = execute(t, "data", "export", "--format", "toml")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestDataValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "override.yaml")
	require.NoError(t, os.WriteFile(good, []byte("kpis:\n  - icon: rocket\n    label: Faster Launches\n    color: \"#6C5DD3\"\n"), 0o600))

	out, err := execute(t, "data", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
	assert.Contains(t, out, "Scenarios: 8")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("kpis: [unclosed\n"), 0o600))
	out, err = execute(t, "data", "validate", bad)
	require.Error(t, err)
	assert.Contains(t, out, "Data override is invalid")

	_, err = execute(t, "data", "validate", filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "file does not exist")
}

func TestDataFlagOverridesReports(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	body := "scenarios:\n  - id: 42\n    title: Override Only\n    tag: Oncology\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	out, err := execute(t, "--data", path, "scenarios", "list", "-o", "json")
	require.NoError(t, err)
	rows := section(t, decodeReport(t, out), "Dashboard").Table.Rows
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"42", "Override Only"}, rows[0][:2])
}

func TestUIOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.SkipLogin = true
	cfg.UI.SubmitDelay = time.Second

	cmd := newTUICommand()
	require.NoError(t, cmd.Flags().Set("theme", "minimal"))
	opts := uiOptions(cmd, cfg)

	assert.Equal(t, "minimal", opts.Theme)
	assert.True(t, opts.SkipLogin)
	assert.Equal(t, time.Second, opts.SubmitDelay)
	assert.Equal(t, cfg.UI.KPIInterval, opts.KPIInterval)

	require.NoError(t, cmd.Flags().Set("skip-login", "false"))
	assert.False(t, uiOptions(cmd, cfg).SkipLogin)
	assert.Empty(t, uiOptions(cmd, cfg).StartModule)

	require.NoError(t, cmd.Flags().Set("module", "integration"))
	assert.Equal(t, "integration", uiOptions(cmd, cfg).StartModule)
}

func TestRedirectLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tui.log")
	cfg := config.DefaultConfig()
	cfg.Logging.File = path

	restore, err := redirectLogs(newTUICommand(), cfg)
	require.NoError(t, err)
	logger.NewWithCallback("test", func() bool { return true }).Info("hello from the tui")
	restore()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from the tui")
}

func TestWatchOverrideSendsReloads(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "override.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kpis: []\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reload, err := watchOverride(ctx, path, logger.Nop())
	require.NoError(t, err)

	msgs := make(chan tea.Msg, 8)
	reload(func(msg tea.Msg) {
		select {
		case msgs <- msg:
		default:
		}
	})

	body := "kpis:\n  - icon: rocket\n    label: Reloaded\n    color: \"#000000\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	deadline := time.After(5 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case msg := <-msgs:
			m, ok := msg.(ui.DataReloadedMsg)
			require.True(t, ok)
			reloaded = m.Err == nil && len(m.Store.KPIs()) == 1
		case <-deadline:
			t.Fatal("no reload after write")
		}
	}
	cancel()
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b ,"))
	assert.Nil(t, splitList(""))
}
