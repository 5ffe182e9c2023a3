package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SnookieTejas/launch-access-forecast/internal/emoji"
	"github.com/SnookieTejas/launch-access-forecast/internal/mockdata"
)

var dataExportFormat string

func newDataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Inspect and override the built-in datasets",
		Long: `Inspect the datasets behind every page and check data override files.

An override file is a YAML document with the same shape as "data export".
Lists in the override replace the built-in ones; maps are merged key by key.`,
	}

	cmd.AddCommand(newDataExportCommand())
	cmd.AddCommand(newDataValidateCommand())
	cmd.AddCommand(newDataWatchCommand())

	return cmd
}

func newDataExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the effective datasets",
		Long: `Print the datasets after merging the --data override, as YAML or JSON.
The output is a valid starting point for an override file.

Examples:
  launchaccess data export > override.yaml
  launchaccess data export --format json --data ./override.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore()
			if err != nil {
				return err
			}
			out, err := encodeDataset(store.Dataset(), dataExportFormat)
			if err != nil {
				return err
			}
			return handleOutputDestination(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVarP(&dataExportFormat, "format", "f", "yaml", "output format (yaml, json)")

	return cmd
}

func encodeDataset(ds mockdata.Dataset, format string) ([]byte, error) {
	switch format {
	case "yaml", "yml":
		data, err := yaml.Marshal(ds)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal data to YAML: %w", err)
		}
		return data, nil
	case "json":
		data, err := json.MarshalIndent(ds, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal data to JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use yaml or json)", format)
	}
}

func newDataValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a data override file",
		Long: `Merge FILE over the built-in datasets and check the result the same way
the application does on startup.

Examples:
  launchaccess data validate ./override.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if err := validateFilePath(args[0]); err != nil {
				return err
			}
			store, err := mockdata.LoadWithOverride(args[0])
			if err != nil {
				fmt.Fprintf(out, "%s Data override is invalid:\n   %v\n", emoji.GetEmoji("error"), err)
				return err
			}
			printDataSummary(out, store)
			return nil
		},
	}
}

func printDataSummary(out io.Writer, store *mockdata.Store) {
	ds := store.Dataset()
	fmt.Fprintf(out, "%s Data from %s is valid\n", emoji.GetEmoji("success"), store.Source())
	fmt.Fprintf(out, "   Scenarios: %d\n", len(ds.Scenarios))
	fmt.Fprintf(out, "   Analogs: %d\n", len(ds.Analogs))
	fmt.Fprintf(out, "   Channels: %d\n", len(ds.Channels))
	fmt.Fprintf(out, "   Brands: %d\n", len(ds.Market.Brands))
}

func newDataWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE",
		Short: "Validate a data override every time it changes",
		Long: `Watch FILE and re-run "data validate" after every write. Useful while
editing an override in another window. Press Ctrl+C to stop watching.

Examples:
  launchaccess data watch ./override.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runDataWatch,
	}
}

func runDataWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()
	log := newLogger("watch")

	w, err := mockdata.NewWatcher(path, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Watching file: %s\n", path)
		fmt.Fprintf(os.Stderr, "Press Ctrl+C to stop...\n\n")
	}
	return watchLoop(ctx, w, out)
}

// watchLoop prints a summary or the error after every reload until ctx is
// done.
func watchLoop(ctx context.Context, w *mockdata.Watcher, out io.Writer) error {
	return w.Run(ctx, func(store *mockdata.Store, err error) {
		if err != nil {
			fmt.Fprintf(out, "%s %v\n", emoji.GetEmoji("error"), err)
			return
		}
		printDataSummary(out, store)
	})
}
