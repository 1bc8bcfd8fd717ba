// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/winepack/winepack/pkg/i18n"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	ReportFormatText     ReportFormat = "text"
	ReportFormatJSON     ReportFormat = "json"
	ReportFormatMarkdown ReportFormat = "markdown"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidReportFormat is returned when a ReportFormat value is not recognized.
	ErrInvalidReportFormat = errors.New("invalid report format")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// ReportFormat selects how the validate command prints its report.
	ReportFormat string

	// InvalidReportFormatError is returned when a ReportFormat value is not recognized.
	InvalidReportFormatError struct {
		Value ReportFormat
	}

	// InvalidConfigError collects the field errors of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the user preferences.
	Config struct {
		// Locale is a language tag; empty means "detect from the environment".
		Locale string       `json:"locale" mapstructure:"locale"`
		UI     UIConfig     `json:"ui" mapstructure:"ui"`
		Report ReportConfig `json:"report" mapstructure:"report"`
		Runner RunnerConfig `json:"runner" mapstructure:"runner"`
	}

	UIConfig struct {
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		Verbose     bool        `json:"verbose" mapstructure:"verbose"`
	}

	ReportConfig struct {
		Format ReportFormat `json:"format" mapstructure:"format"`
	}

	// RunnerConfig seeds new profiles.
	RunnerConfig struct {
		DefaultProtonVersion string `json:"default_proton_version" mapstructure:"default_proton_version"`
	}
)

// DefaultConfig returns the preferences used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
		Report: ReportConfig{
			Format: ReportFormatText,
		},
	}
}

// ResolveLocale returns the configured locale, or the one detected through
// getenv when none is configured.
func (c *Config) ResolveLocale(getenv func(string) string) i18n.Locale {
	if strings.TrimSpace(c.Locale) != "" {
		return i18n.ParseLocale(c.Locale)
	}
	return i18n.DetectLocale(getenv)
}

// Validate checks every enumerated field of c.
func (c *Config) Validate() error {
	var errs []error
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Report.Format.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig followed by the field errors.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// ColorSchemes returns the accepted color schemes.
func ColorSchemes() []ColorScheme {
	return []ColorScheme{ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight}
}

// Validate returns an error if the ColorScheme is not recognized.
func (c ColorScheme) Validate() error {
	for _, s := range ColorSchemes() {
		if c == s {
			return nil
		}
	}
	return &InvalidColorSchemeError{Value: c}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// ReportFormats returns the accepted report formats.
func ReportFormats() []ReportFormat {
	return []ReportFormat{ReportFormatText, ReportFormatJSON, ReportFormatMarkdown}
}

// Validate returns an error if the ReportFormat is not recognized.
func (f ReportFormat) Validate() error {
	for _, s := range ReportFormats() {
		if f == s {
			return nil
		}
	}
	return &InvalidReportFormatError{Value: f}
}

// Error implements the error interface.
func (e *InvalidReportFormatError) Error() string {
	return fmt.Sprintf("invalid report format %q (valid: text, json, markdown)", e.Value)
}

// Unwrap returns ErrInvalidReportFormat for errors.Is() compatibility.
func (e *InvalidReportFormatError) Unwrap() error { return ErrInvalidReportFormat }
