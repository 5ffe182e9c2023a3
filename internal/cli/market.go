package cli

import (
	"github.com/spf13/cobra"
)

var marketBrands string

func newMarketCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Compare competitor brands",
		Long: `Compare the target product profiles and market shares of competitor
brands. Without --brands every brand is included.

Examples:
  launchaccess market
  launchaccess market --brands Biotropex,Immuvex`,
		Args: cobra.NoArgs,
		RunE: runMarket,
	}

	cmd.Flags().StringVar(&marketBrands, "brands", "", "comma separated brand names")

	return cmd
}

func runMarket(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}
	report, err := marketReport(store, splitList(marketBrands))
	if err != nil {
		return err
	}
	return writeReport(cmd, report)
}

func newContrastCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast HEX...",
		Short: "Print the label color for chart segment colors",
		Long: `Print the text color (black or white) that stays readable on each
background color. Colors must be written as #RRGGBB; anything else gets white.

Examples:
  launchaccess contrast '#EB6620' '#FCC9B1'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeReport(cmd, contrastReport(args))
		},
	}
}
