package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SnookieTejas/launch-access-forecast/internal/scenario"
)

var (
	forecastChannel string
	forecastAnalogs string

	compareTab     string
	compareChannel string
	comparePeak    string
	compareUptake  string
)

func newForecastCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Show the access forecast charts",
		Long: `Show the peak access split and the quarterly access uptake of every
payer channel, as the access forecast page draws them.

Examples:
  launchaccess forecast
  launchaccess forecast --channel Medicare
  launchaccess forecast --analogs Actovant,Aeronyx -o markdown`,
		Args: cobra.NoArgs,
		RunE: runForecast,
	}

	cmd.Flags().StringVar(&forecastChannel, "channel", "", "only this channel (Commercial, Medicare, Medicaid)")
	cmd.Flags().StringVar(&forecastAnalogs, "analogs", "", "comma separated analogs noted in the report header")

	return cmd
}

func runForecast(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}
	report, err := forecastReport(store, forecastChannel, splitList(forecastAnalogs))
	if err != nil {
		return err
	}
	return writeReport(cmd, report)
}

func newCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Show a scenario comparison tab",
		Long: `Show the charts and target product profile of a scenario comparison tab.

Only the chart tabs can be printed: base, scenario2 (better efficacy) and
scenario4 (lower safety). On scenario2 and scenario4 --peak and --uptake pick
the dataset behind the donuts and the uptake bars.

Examples:
  launchaccess compare
  launchaccess compare --tab scenario2 --peak base-case
  launchaccess compare --tab scenario4 --channel Commercial -o json`,
		Args: cobra.NoArgs,
		RunE: runCompare,
	}

	cmd.Flags().StringVar(&compareTab, "tab", "base", "comparison tab (base, scenario2, scenario4)")
	cmd.Flags().StringVar(&compareChannel, "channel", "", "only this channel (Commercial, Medicare, Medicaid)")
	cmd.Flags().StringVar(&comparePeak, "peak", "", "peak access dataset (base-case, better-efficacy, lower-safety)")
	cmd.Flags().StringVar(&compareUptake, "uptake", "", "access uptake dataset (base-case, better-efficacy, lower-safety)")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	tab, err := scenario.ParseTab(compareTab)
	if err != nil {
		return fmt.Errorf("invalid --tab: %w", err)
	}
	store, err := loadStore()
	if err != nil {
		return err
	}

	report, err := compareReport(store, compareOptions{
		Tab:     tab,
		Channel: compareChannel,
		Peak:    comparePeak,
		Uptake:  compareUptake,
	})
	if err != nil {
		return err
	}
	return writeReport(cmd, report)
}
