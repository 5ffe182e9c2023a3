package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SnookieTejas/launch-access-forecast/internal/analog"
)

var (
	analogsMin    int
	analogsMax    int
	analogsSelect string
	analogsSort   string
)

func newAnalogsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analogs",
		Short: "Show the analog comparison table",
		Long: `Show the analog comparison table used by the analog selection page.

Rows are kept when the similarity score lies within [--min, --max] and, when
--select is given, the analog is one of the selected names.

Examples:
  launchaccess analogs
  launchaccess analogs --min 60 --sort asc
  launchaccess analogs --select Actovant,Aeronyx -o csv`,
		Args: cobra.NoArgs,
		RunE: runAnalogs,
	}

	q := analog.DefaultQuery()
	cmd.Flags().IntVar(&analogsMin, "min", q.MinScore, "lowest similarity score")
	cmd.Flags().IntVar(&analogsMax, "max", q.MaxScore, "highest similarity score")
	cmd.Flags().StringVar(&analogsSelect, "select", "", "comma separated analog names")
	cmd.Flags().StringVar(&analogsSort, "sort", q.Sort.String(), "similarity sort (desc, asc, none)")

	return cmd
}

func runAnalogs(cmd *cobra.Command, args []string) error {
	dir, err := analog.ParseSortDirection(analogsSort)
	if err != nil {
		return fmt.Errorf("invalid --sort: %w", err)
	}
	store, err := loadStore()
	if err != nil {
		return err
	}

	report, err := analogsReport(store, analog.Query{
		MinScore: analogsMin,
		MaxScore: analogsMax,
		Selected: splitList(analogsSelect),
		Sort:     dir,
	})
	if err != nil {
		return err
	}
	return writeReport(cmd, report)
}
