package cli

import (
	"github.com/spf13/cobra"
)

var scenariosSearch string

func newScenariosCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Work with dashboard scenarios",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the dashboard scenario cards",
		Long: `List the scenario cards shown on the dashboard.

The search matches title, tag, creator and last modifier (ignoring case) as
well as the initiated and last modified dates.

Examples:
  launchaccess scenarios list
  launchaccess scenarios list --search oncology
  launchaccess scenarios list -o json`,
		Args: cobra.NoArgs,
		RunE: runScenariosList,
	}
	listCmd.Flags().StringVarP(&scenariosSearch, "search", "s", "", "filter cards by text or date")

	cmd.AddCommand(listCmd)
	return cmd
}

func runScenariosList(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}
	return writeReport(cmd, scenariosReport(store, scenariosSearch))
}
