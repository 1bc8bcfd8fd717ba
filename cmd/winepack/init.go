// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winepack/winepack/internal/issue"
	"github.com/winepack/winepack/pkg/profile"
)

var errProfileExists = errors.New("profile already exists")

type initFlags struct {
	force    bool
	gameName string
	exe      string
}

func newInitCommand(app *App) *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init <profile>",
		Short: "Write a profile with the default settings",
		Long: `Write a new profile with the default settings. The format follows the
file extension: .cue, .json, .toml, .yaml or .yml.

The Proton version is taken from runner.default_proton_version in the
preferences when set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, app, flags, args[0])
		},
	}

	cmd.Flags().BoolVar(&flags.force, "force", false, "overwrite an existing profile")
	cmd.Flags().StringVar(&flags.gameName, "name", "", "game name")
	cmd.Flags().StringVar(&flags.exe, "exe", "", "main executable relative to the game folder, e.g. ./bin/game.exe")

	return cmd
}

func runInit(cmd *cobra.Command, app *App, flags *initFlags, path string) error {
	if _, err := profile.FormatForPath(path); err != nil {
		return issue.NewErrorContext().
			WithOperation("create profile").
			WithResource(path).
			WithSuggestion("Use one of the extensions: " + extensionList()).
			WithIssue(issue.UnsupportedFormatId).
			Wrap(err).
			BuildError()
	}

	loader := profile.NewLoader(app.Fs)
	if !flags.force && loader.Exists(path) {
		return issue.NewErrorContext().
			WithOperation("create profile").
			WithResource(path).
			WithSuggestion("Use --force to overwrite it").
			WithIssue(issue.ProfileExistsId).
			Wrap(errProfileExists).
			BuildError()
	}

	p := profile.Default()
	p.GameName = flags.gameName
	p.RelativeExePath = flags.exe
	p.Runner.ProtonVersion = app.cfg.Runner.DefaultProtonVersion

	if err := loader.Save(path, p); err != nil {
		return issue.NewErrorContext().
			WithOperation("create profile").
			WithResource(path).
			WithSuggestion("Check that the directory is writable").
			Wrap(err).
			BuildError()
	}

	app.logger.Debug("profile written", "path", path)
	fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", SuccessStyle.Render(successIcon), path)
	return nil
}
