// Package cmd provides the Cobra CLI surface for the viloxterm workbench
// core: a process host that boots every subsystem (settings, workspace,
// command dispatch, keyboard, pty, autosave) and keeps it running until
// asked to stop. It never renders anything itself — that is left to a
// frontend built against the packages this process wires together.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vilosource/viloxterm/internal/cli"
	"github.com/vilosource/viloxterm/internal/logging"
	"github.com/vilosource/viloxterm/internal/settings"
)

var (
	app *cli.App

	flagSettingsDir   string
	flagSettingsFile  string
	flagPortable      bool
	flagTempSettings  bool
	flagResetSettings bool
	flagNoConfirm     bool
	flagTestMode      bool
	flagDebug         bool
	flagDev           bool
)

var rootCmd = &cobra.Command{
	Use:           "viloxterm",
	Short:         "Terminal and editor workbench core",
	SilenceErrors: true,
	SilenceUsage:  true,
	Long: `viloxterm is the workbench core behind a terminal and editor frontend:
workspace model, command dispatch, keyboard chords, PTY sessions and the
layered settings engine, wired into a single long-running process.

Run with no subcommand to boot the workbench and keep it alive until
interrupted; the autosave service flushes workspace state on exit. The
settings subcommand inspects and edits the persisted configuration; it
builds the same app as the root command but exits when done instead of
staying resident.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		switch cmd.Name() {
		case "help", "completion":
			return nil
		}

		opts := settings.Options{
			SettingsDir:   flagSettingsDir,
			SettingsFile:  flagSettingsFile,
			Portable:      flagPortable,
			TempSettings:  flagTempSettings,
			ResetSettings: flagResetSettings,
			NoConfirm:     flagNoConfirm,
			TestMode:      flagTestMode,
			Debug:         flagDebug,
			Dev:           flagDev,
		}

		built, err := cli.NewApp(opts)
		if err != nil {
			return fmt.Errorf("initialize app: %w", err)
		}
		app = built
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if app != nil {
			_ = app.Close()
		}
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runWorkbench(app)
	},
}

// Execute runs the root command, reporting any error to stderr.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var printedErr *printedError
		if errors.As(err, &printedErr) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runWorkbench blocks until the process receives an interrupt or
// termination signal, then returns so the deferred app.Close runs the
// final autosave and settings shutdown.
func runWorkbench(app *cli.App) error {
	logger := logging.FromContext(app.Ctx())
	defer logging.SetupPanicRecovery(logger)()
	logger.Info().Msg("workbench ready")

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutting down")
	return nil
}

type printedError struct {
	err error
}

func (e *printedError) Error() string {
	if e == nil || e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *printedError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

func wrapPrintedError(err error) error {
	if err == nil {
		return nil
	}
	fmt.Fprintln(os.Stderr, err)
	return &printedError{err: err}
}

// GetApp returns the initialized app for use by subcommands.
func GetApp() *cli.App {
	return app
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSettingsDir, "settings-dir", "", "override the settings and workspace-state directory")
	rootCmd.PersistentFlags().StringVar(&flagSettingsFile, "settings-file", "", "override the exact settings file path")
	rootCmd.PersistentFlags().BoolVar(&flagPortable, "portable", false, "keep settings alongside the executable instead of the user config directory")
	rootCmd.PersistentFlags().BoolVar(&flagTempSettings, "temp-settings", false, "use a scratch settings directory that is discarded on exit")
	rootCmd.PersistentFlags().BoolVar(&flagResetSettings, "reset-settings", false, "reset all settings to defaults before starting")
	rootCmd.PersistentFlags().BoolVar(&flagNoConfirm, "no-confirm", false, "skip interactive confirmation prompts")
	rootCmd.PersistentFlags().BoolVar(&flagTestMode, "test-mode", false, "run with test-mode defaults (implies --no-confirm)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug-level logging")
	rootCmd.PersistentFlags().BoolVar(&flagDev, "dev", false, "enable developer-mode behavior")

	rootCmd.AddCommand(settingsCmd)
}
