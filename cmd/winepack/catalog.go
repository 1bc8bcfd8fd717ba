// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winepack/winepack/pkg/i18n"
)

func newCatalogCommand(app *App) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the message catalogs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	catalogCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Report keys missing from any locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogCheck(cmd)
		},
	})

	catalogCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print every message of the active locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, key := range i18n.Keys(app.locale) {
				fmt.Fprintf(out, "%s = %s\n", CmdStyle.Render(string(key)), i18n.Translate(app.locale, key))
			}
			return nil
		},
	})

	return catalogCmd
}

func runCatalogCheck(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	complete := true

	for _, loc := range i18n.Supported() {
		missing := i18n.MissingKeys(loc)
		if len(missing) == 0 {
			fmt.Fprintf(out, "%s %s: %d messages\n", SuccessStyle.Render(successIcon), loc, len(i18n.Keys(loc)))
			continue
		}
		complete = false
		fmt.Fprintf(out, "%s %s: %d key(s) out of parity\n", ErrorStyle.Render(errorIcon), loc, len(missing))
		for _, key := range missing {
			fmt.Fprintf(out, "  - %s\n", key)
		}
	}

	if !complete {
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}
	return nil
}
