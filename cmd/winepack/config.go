// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winepack/winepack/internal/config"
	"github.com/winepack/winepack/internal/issue"
)

// newConfigCommand creates the `winepack config` command tree.
func newConfigCommand(app *App, rootFlags *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage winepack preferences",
		Long: `Manage winepack preferences.

Preferences are stored in:
  - Linux: $XDG_CONFIG_HOME/winepack/config.cue (~/.config by default)
  - macOS: ~/Library/Application Support/winepack/config.cue
  - Windows: %APPDATA%\winepack\config.cue

Every key can be overridden with a WINEPACK_ environment variable, for
example WINEPACK_LOCALE=pt-BR or WINEPACK_REPORT_FORMAT=json.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, app)
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefaultConfig(app.Fs, "", force)
			if errors.Is(err, config.ErrConfigExists) {
				return issue.NewErrorContext().
					WithOperation("create configuration").
					WithResource(path).
					WithSuggestion("Use --force to overwrite it").
					Wrap(err).
					BuildError()
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", SuccessStyle.Render(successIcon), path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := rootFlags.configFile
			if path == "" {
				var err error
				if path, err = config.FilePath(""); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(app.cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(cmd *cobra.Command, app *App) error {
	out := cmd.OutOrStdout()
	cfg := app.cfg

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	if app.cfgPath != "" {
		fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Config file"), app.cfgPath)
	} else {
		fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(out)

	locale := cfg.Locale
	if locale == "" {
		locale = "(from environment)"
	}
	rows := [][2]string{
		{"locale", locale},
		{"active locale", app.locale.String()},
		{"ui.color_scheme", string(cfg.UI.ColorScheme)},
		{"ui.verbose", fmt.Sprint(cfg.UI.Verbose)},
		{"report.format", string(cfg.Report.Format)},
		{"runner.default_proton_version", cfg.Runner.DefaultProtonVersion},
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render(row[0]), SuccessStyle.Render(row[1]))
	}
	return nil
}
