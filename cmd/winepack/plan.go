// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winepack/winepack/internal/issue"
	"github.com/winepack/winepack/internal/launchplan"
)

type planFlags struct {
	exePath  string
	gameRoot string
	format   outputFormat
}

func newPlanCommand(app *App) *cobra.Command {
	flags := &planFlags{}

	cmd := &cobra.Command{
		Use:   "plan <profile>",
		Short: "Preview the launch command line",
		Long: `Print the command line the profile would launch with: enabled wrappers,
Gamescope when enabled, then Proton with the main executable. Nothing is
executed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, app, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.exePath, "exe", "", "absolute path of the main executable")
	cmd.Flags().StringVar(&flags.gameRoot, "game-root", "", "absolute path of the game folder")
	addFormatFlag(cmd, &flags.format)

	return cmd
}

func runPlan(cmd *cobra.Command, app *App, flags *planFlags, path string) error {
	p, err := app.loadProfile(path)
	if err != nil {
		return err
	}

	exePath, _ := resolvePaths(p, flags.exePath, flags.gameRoot)
	plan, err := launchplan.Build(p, exePath)
	switch {
	case errors.Is(err, launchplan.ErrMissingExecutable):
		return issue.NewErrorContext().
			WithOperation("build launch plan").
			WithResource(path).
			WithSuggestion("Pass --exe, or --game-root with a relative_exe_path in the profile").
			Wrap(err).
			BuildError()
	case err != nil:
		return issue.NewErrorContext().
			WithOperation("build launch plan").
			WithResource(path).
			WithIssue(issue.InvalidLaunchArgsId).
			Wrap(err).
			BuildError()
	}

	out := cmd.OutOrStdout()
	if app.resolveFormat(cmd, flags.format) == formatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}
	fmt.Fprintln(out, plan.String())
	return nil
}
