// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"

	"github.com/winepack/winepack/internal/config"
)

// outputFormat is the --format flag value.
type outputFormat enumflag.Flag

const (
	formatText outputFormat = iota
	formatJSON
	formatMarkdown
)

var outputFormatIds = map[outputFormat][]string{
	formatText:     {string(config.ReportFormatText)},
	formatJSON:     {string(config.ReportFormatJSON)},
	formatMarkdown: {string(config.ReportFormatMarkdown), "md"},
}

func addFormatFlag(cmd *cobra.Command, target *outputFormat) {
	cmd.Flags().Var(
		enumflag.New(target, "format", outputFormatIds, enumflag.EnumCaseInsensitive),
		"format",
		"output format; can be 'text', 'json' or 'markdown' (default from config)")
}

// resolveFormat returns the --format value when given, otherwise the
// configured report format.
func (a *App) resolveFormat(cmd *cobra.Command, flagValue outputFormat) outputFormat {
	if cmd.Flags().Changed("format") {
		return flagValue
	}
	switch a.cfg.Report.Format {
	case config.ReportFormatJSON:
		return formatJSON
	case config.ReportFormatMarkdown:
		return formatMarkdown
	default:
		return formatText
	}
}

// glamourStyle maps the color scheme preference onto a glamour style.
func (a *App) glamourStyle() string {
	switch a.cfg.UI.ColorScheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}
