// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/winepack/winepack/pkg/guard"
	"github.com/winepack/winepack/pkg/i18n"
)

// jsonReport is the machine-readable form of a guard run.
type jsonReport struct {
	Profile string      `json:"profile"`
	Locale  i18n.Locale `json:"locale"`
	guard.Report
}

func (a *App) writeReport(cmd *cobra.Command, format outputFormat, path string, report guard.Report) error {
	out := cmd.OutOrStdout()

	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonReport{Profile: path, Locale: a.locale, Report: report})
	case formatMarkdown:
		rendered, err := glamour.Render(markdownReport(path, report), a.glamourStyle())
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		fmt.Fprint(out, rendered)
		return nil
	default:
		fmt.Fprint(out, textReport(path, report))
		return nil
	}
}

func textReport(path string, report guard.Report) string {
	var sb strings.Builder

	if report.Ready {
		fmt.Fprintf(&sb, "%s %s is ready\n", SuccessStyle.Render(successIcon), path)
	} else {
		fmt.Fprintf(&sb, "%s %s is not ready: %d blocking issue(s)\n", ErrorStyle.Render(errorIcon), path, len(report.Errors))
		for i, msg := range report.Errors {
			fmt.Fprintf(&sb, "  %d. %s\n", i+1, msg)
		}
	}

	if len(report.Warnings) > 0 {
		fmt.Fprintf(&sb, "%s %d warning(s)\n", WarningStyle.Render(warningIcon), len(report.Warnings))
		for _, msg := range report.Warnings {
			fmt.Fprintf(&sb, "  - %s\n", msg)
		}
	}
	return sb.String()
}

func markdownReport(path string, report guard.Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", path)
	if report.Ready {
		sb.WriteString("**Ready** to create the executable.\n")
	} else {
		sb.WriteString("**Not ready** to create the executable.\n\n## Blocking\n\n")
		for i, msg := range report.Errors {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, msg)
		}
	}

	if len(report.Warnings) > 0 {
		sb.WriteString("\n## Warnings\n\n")
		for _, msg := range report.Warnings {
			fmt.Fprintf(&sb, "- %s\n", msg)
		}
	}
	return sb.String()
}
