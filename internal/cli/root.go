package cli

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/SnookieTejas/launch-access-forecast/internal/config"
	"github.com/SnookieTejas/launch-access-forecast/internal/emoji"
	"github.com/SnookieTejas/launch-access-forecast/internal/logger"
)

var (
	cfgFile    string
	verbose    bool
	noColor    bool
	noEmoji    bool
	outputFmt  string
	outputFile string
	dataPath   string

	globalConfig *config.Config
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "launchaccess",
		Short: "Launch access and demand forecasting",
		Long: `launchaccess predicts payer access and demand for a pharmaceutical product
before launch.

Run "launchaccess tui" for the interactive application, or use the report
commands (scenarios, analogs, forecast, compare, market) to print the
underlying datasets as text, JSON, Markdown or CSV.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}
			emoji.SetEmojiDisabled(noEmoji)

			cfg, err := config.NewLoader().LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			applyConfig(cmd, cfg)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format (text, json, markdown, csv)")
	rootCmd.PersistentFlags().StringVar(&outputFile, "output-file", "", "save output to file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "YAML data override merged over the built-in datasets")

	rootCmd.AddCommand(newTUICommand())
	rootCmd.AddCommand(newScenariosCommand())
	rootCmd.AddCommand(newAnalogsCommand())
	rootCmd.AddCommand(newForecastCommand())
	rootCmd.AddCommand(newCompareCommand())
	rootCmd.AddCommand(newMarketCommand())
	rootCmd.AddCommand(newContrastCommand())
	rootCmd.AddCommand(newDataCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// applyConfig lets the loaded configuration fill in every flag the user did
// not set explicitly.
func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	globalConfig = cfg

	if !flagChanged(cmd, "output") && cfg.Output.DefaultFormat != "" {
		outputFmt = cfg.Output.DefaultFormat
	}
	if !flagChanged(cmd, "no-color") && cfg.Output.ColorMode == "never" {
		noColor = true
	}
	if !flagChanged(cmd, "verbose") && cfg.Logging.Level == "debug" {
		verbose = true
	}
	if !flagChanged(cmd, "data") && cfg.Data.OverridePath != "" {
		dataPath = config.ExpandPath(cfg.Data.OverridePath)
	}
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "launchaccess %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// GetGlobalConfig returns the configuration loaded for the running command,
// or the defaults when none was loaded.
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

// Global helpers
func isVerbose() bool {
	return verbose
}

func getOutputFormat() string {
	return outputFmt
}

func isEmojiDisabled() bool {
	return noEmoji
}

// newLogger returns a component logger that follows --verbose.
func newLogger(component string) *logger.Logger {
	return logger.NewWithCallback(component, isVerbose)
}
