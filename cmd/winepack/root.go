// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/winepack/winepack/internal/config"
	"github.com/winepack/winepack/internal/issue"
	"github.com/winepack/winepack/pkg/i18n"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

type (
	// App carries the dependencies shared by every command.
	App struct {
		Config config.Provider
		Fs     afero.Fs
		Getenv func(string) string

		// Set by the root command before any subcommand runs.
		cfg     *config.Config
		cfgPath string
		locale  i18n.Locale
		verbose bool
		logger  *log.Logger
	}

	rootFlags struct {
		configFile string
		locale     string
		verbose    bool
	}
)

// NewApp returns an App backed by the OS filesystem and environment.
func NewApp() *App {
	return &App{
		Config: config.NewProvider(),
		Fs:     afero.NewOsFs(),
		Getenv: os.Getenv,
	}
}

func newRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "winepack",
		Short: "Validate Proton/Wine game profiles",
		Long: TitleStyle.Render("winepack") + SubtitleStyle.Render(" - Validate Proton/Wine game profiles") + `

winepack checks every field of a game profile (paths, registry keys, DLL
overrides, drives, Gamescope settings) and decides whether the profile is
ready for the executable to be created.

` + SubtitleStyle.Render("Examples:") + `
  winepack init game.cue                       Write a default profile
  winepack validate game.cue --exe /games/demo/game.exe
  winepack check windows-path 'C:\Games\Demo'  Check a single value
  winepack plan game.cue --exe /games/demo/game.exe`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.setup(cmd, flags)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/winepack/config.cue)")
	rootCmd.PersistentFlags().StringVar(&flags.locale, "locale", "", "message language, e.g. en-US or pt-BR (default from config or LANG)")

	rootCmd.AddCommand(
		newValidateCommand(app),
		newCheckCommand(app),
		newCatalogCommand(app),
		newConfigCommand(app, flags),
		newInitCommand(app),
		newPlanCommand(app),
		newVersionCommand(),
	)

	return rootCmd
}

// setup loads the preferences and resolves locale, verbosity and logger.
// A broken config file is reported and the defaults are used instead.
func (a *App) setup(cmd *cobra.Command, flags *rootFlags) {
	cfg, path, err := a.Config.LoadWithPath(cmd.Context(), config.LoadOptions{
		ConfigFilePath: flags.configFile,
		Fs:             a.Fs,
	})
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, flags.verbose))
		cfg = config.DefaultConfig()
	}
	a.cfg, a.cfgPath = cfg, path

	a.verbose = flags.verbose || cfg.UI.Verbose

	switch cfg.UI.ColorScheme {
	case config.ColorSchemeDark:
		lipgloss.SetHasDarkBackground(true)
	case config.ColorSchemeLight:
		lipgloss.SetHasDarkBackground(false)
	}

	if flags.locale != "" {
		a.locale = i18n.ParseLocale(flags.locale)
	} else {
		a.locale = cfg.ResolveLocale(a.Getenv)
	}

	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "winepack"})
	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
	a.logger.Debug("configuration resolved", "file", path, "locale", a.locale)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Main runs the CLI with os.Args and returns the process exit code.
func Main() int {
	rootCmd := newRootCommand(NewApp())

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return 1
	}
	return 0
}

// Execute runs the CLI and exits. It is called by main.main().
func Execute() {
	os.Exit(Main())
}

// formatErrorForDisplay formats an error for user display. Actionable errors
// carry their suggestions; verbose mode adds the full chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
