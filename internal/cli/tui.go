package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SnookieTejas/launch-access-forecast/internal/config"
	"github.com/SnookieTejas/launch-access-forecast/internal/logger"
	"github.com/SnookieTejas/launch-access-forecast/internal/mockdata"
	"github.com/SnookieTejas/launch-access-forecast/internal/ui"
)

var (
	tuiTheme     string
	tuiSkipLogin bool
	tuiModule    string
	tuiWatch     bool
	tuiLogFile   string
)

func newTUICommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive application",
		Long: `Run the launch access forecasting application in the terminal.

Log lines go to --log-file (or logging.file) while the application owns the
terminal. With --data and --watch the data override is reloaded whenever it
changes on disk.

Examples:
  launchaccess tui
  launchaccess tui --skip-login --theme high-contrast
  launchaccess tui --module access
  launchaccess tui --data ./override.yaml --watch`,
		Args: cobra.NoArgs,
		RunE: runTUI,
	}

	cmd.Flags().StringVar(&tuiTheme, "theme", "", "color theme (default, high-contrast, minimal)")
	cmd.Flags().BoolVar(&tuiSkipLogin, "skip-login", false, "start on the dashboard")
	cmd.Flags().StringVar(&tuiModule, "module", "", "open directly on a module (simulation, access, integration)")
	cmd.Flags().BoolVar(&tuiWatch, "watch", false, "reload the --data override when it changes")
	cmd.Flags().StringVar(&tuiLogFile, "log-file", "", "write logs to this file while the TUI runs")

	return cmd
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	store, err := loadStore()
	if err != nil {
		return err
	}

	closeLog, err := redirectLogs(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	log := newLogger("tui")
	opts := uiOptions(cmd, cfg)
	opts.Store = store
	opts.Logger = log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var reload func(send func(tea.Msg))
	if dataPath != "" && (tuiWatch || cfg.Data.Watch) {
		reload, err = watchOverride(ctx, dataPath, log)
		if err != nil {
			return err
		}
	}

	log.Debug("starting TUI (theme %s, data %s)", opts.Theme, store.Source())
	return ui.Run(ctx, opts, reload)
}

// uiOptions merges the ui config section with the tui flags.
func uiOptions(cmd *cobra.Command, cfg *config.Config) ui.Options {
	opts := ui.DefaultOptions()
	if cfg.UI.Theme != "" {
		opts.Theme = cfg.UI.Theme
	}
	opts.SkipLogin = cfg.UI.SkipLogin
	opts.LoginDelay = cfg.UI.LoginDelay
	opts.TransitionDelay = cfg.UI.TransitionDelay
	opts.SubmitDelay = cfg.UI.SubmitDelay
	opts.KPIInterval = cfg.UI.KPIInterval
	opts.Animations = cfg.UI.Animations

	if flagChanged(cmd, "theme") {
		opts.Theme = tuiTheme
	}
	if flagChanged(cmd, "skip-login") {
		opts.SkipLogin = tuiSkipLogin
	}
	if flagChanged(cmd, "module") {
		opts.StartModule = tuiModule
	}
	return opts
}

// redirectLogs points every logger at the log file, or discards log output
// when none is configured. The returned func restores stderr.
func redirectLogs(cmd *cobra.Command, cfg *config.Config) (func(), error) {
	path := cfg.Logging.File
	if flagChanged(cmd, "log-file") {
		path = tuiLogFile
	}
	if path == "" {
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(os.Stderr) }, nil
	}

	path = filepath.Clean(config.ExpandPath(path))
	// #nosec G304 - path comes from config or a flag
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		if err := f.Close(); err != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
	}, nil
}

// watchOverride returns the reload hook handed to ui.Run. The watcher runs
// until ctx is cancelled.
func watchOverride(ctx context.Context, path string, log *logger.Logger) (func(send func(tea.Msg)), error) {
	w, err := mockdata.NewWatcher(path, log.WithComponent("watch"))
	if err != nil {
		return nil, err
	}
	return func(send func(tea.Msg)) {
		go func() {
			err := w.Run(ctx, func(s *mockdata.Store, err error) {
				send(ui.DataReloadedMsg{Store: s, Err: err})
			})
			if err != nil {
				log.Warn("data watcher stopped: %v", err)
			}
		}()
	}, nil
}
