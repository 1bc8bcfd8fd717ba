// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winepack/winepack/internal/issue"
	"github.com/winepack/winepack/internal/watch"
	"github.com/winepack/winepack/pkg/guard"
)

type validateFlags struct {
	exePath  string
	gameRoot string
	format   outputFormat
	watch    bool
}

func newValidateCommand(app *App) *cobra.Command {
	flags := &validateFlags{}

	cmd := &cobra.Command{
		Use:   "validate <profile>",
		Short: "Check whether a profile is ready to create the executable",
		Long: `Run every blocking rule against a profile and list what must be fixed,
followed by non-blocking warnings. Exits with status 1 when the profile is
not ready.

The executable and game root are host paths. When only one is given the
other is derived from the profile's relative executable path.

With --watch the profile is validated again every time it is saved, until
interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.watch {
				return runValidateWatch(cmd, app, flags, args[0])
			}
			return runValidate(cmd, app, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.exePath, "exe", "", "absolute path of the main executable")
	cmd.Flags().StringVar(&flags.gameRoot, "game-root", "", "absolute path of the game folder")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "validate again whenever the profile changes")
	addFormatFlag(cmd, &flags.format)

	return cmd
}

func runValidate(cmd *cobra.Command, app *App, flags *validateFlags, path string) error {
	report, err := evaluateProfile(cmd, app, flags, path)
	if err != nil {
		return err
	}

	if !report.Ready {
		if app.verbose {
			if rendered, err := issue.Get(issue.ProfileNotReadyId).Render(app.glamourStyle()); err == nil {
				cmd.PrintErr(rendered)
			}
		}
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}
	return nil
}

// runValidateWatch reports once, then again on every save of the profile
// until the context is cancelled. Load failures are printed and the watch
// goes on, since the next save may fix them.
func runValidateWatch(cmd *cobra.Command, app *App, flags *validateFlags, path string) error {
	run := func() {
		if _, err := evaluateProfile(cmd, app, flags, path); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render(errorIcon)+" "+formatErrorForDisplay(err, app.verbose))
		}
	}
	run()

	w, err := watch.New(watch.Config{
		Files:  []string{path},
		Stderr: cmd.ErrOrStderr(),
		OnChange: func(ctx context.Context, changed []string) error {
			app.logger.Debug("profile changed", "files", changed)
			fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("--- "+path+" changed ---"))
			run()
			return nil
		},
	})
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("watch profile").
			WithResource(path).
			WithSuggestion("Check that the profile's directory exists").
			Wrap(err).
			BuildError()
	}

	fmt.Fprintln(cmd.ErrOrStderr(), SubtitleStyle.Render("Watching "+path+" (Ctrl+C to stop)"))
	return w.Run(cmd.Context())
}

// evaluateProfile loads the profile, runs the guard and writes the report.
func evaluateProfile(cmd *cobra.Command, app *App, flags *validateFlags, path string) (guard.Report, error) {
	p, err := app.loadProfile(path)
	if err != nil {
		return guard.Report{}, err
	}

	exePath, gameRoot := resolvePaths(p, flags.exePath, flags.gameRoot)
	app.logger.Debug("evaluating profile", "exe", exePath, "game_root", gameRoot, "locale", app.locale)

	report := guard.Evaluate(guard.Context{
		Profile:  p,
		Locale:   app.locale,
		ExePath:  exePath,
		GameRoot: gameRoot,
	})

	if err := app.writeReport(cmd, app.resolveFormat(cmd, flags.format), path, report); err != nil {
		return guard.Report{}, err
	}
	return report, nil
}
