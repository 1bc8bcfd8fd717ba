// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/winepack/winepack/pkg/fieldcheck"
)

func newCheckCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check <kind> <value>",
		Short: "Validate a single field value",
		Long: `Validate one value the way the profile editor does while typing.

Kinds: ` + strings.Join(fieldcheck.KindNames(), ", ") + `

Exits with status 1 when the value is rejected. Hints and suggested
corrections are printed even for accepted values.`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return fieldcheck.KindNames(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, app, args[0], args[1])
		},
	}
}

func runCheck(cmd *cobra.Command, app *App, kind, value string) error {
	validate, ok := fieldcheck.Lookup(kind)
	if !ok {
		return fmt.Errorf("unknown kind %q (valid: %s)", kind, strings.Join(fieldcheck.KindNames(), ", "))
	}

	r := validate(value, app.locale)
	out := cmd.OutOrStdout()

	if r.OK() {
		fmt.Fprintf(out, "%s %s\n", SuccessStyle.Render(successIcon), CmdStyle.Render(value))
	} else {
		fmt.Fprintf(out, "%s %s\n", ErrorStyle.Render(errorIcon), r.Error)
	}
	if r.HasHint() {
		fmt.Fprintf(out, "  %s\n", hintStyle.Render(r.Hint))
	}

	if !r.OK() {
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}
	return nil
}
