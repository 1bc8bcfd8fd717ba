// SPDX-License-Identifier: MPL-2.0

package i18n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

const (
	// EnUS is American English, the fallback locale.
	EnUS Locale = "en-US"
	// PtBR is Brazilian Portuguese.
	PtBR Locale = "pt-BR"

	// DefaultLocale is used when no locale is configured or detected.
	DefaultLocale = EnUS
)

// ErrInvalidLocale is the sentinel error wrapped by InvalidLocaleError.
var ErrInvalidLocale = errors.New("invalid locale")

var (
	supported = []Locale{EnUS, PtBR}

	matcher = language.NewMatcher([]language.Tag{
		language.AmericanEnglish,
		language.BrazilianPortuguese,
	})
)

type (
	// Locale is a BCP 47 tag naming one of the shipped catalogs.
	Locale string

	// InvalidLocaleError is returned when a Locale is not one of the shipped catalogs.
	InvalidLocaleError struct {
		Value Locale
	}
)

// Error implements the error interface.
func (e *InvalidLocaleError) Error() string {
	return fmt.Sprintf("invalid locale %q (valid: %s)", e.Value, strings.Join(localeStrings(), ", "))
}

// Unwrap returns ErrInvalidLocale for errors.Is() compatibility.
func (e *InvalidLocaleError) Unwrap() error { return ErrInvalidLocale }

// String returns the string representation of the Locale.
func (l Locale) String() string { return string(l) }

// IsValid returns whether the Locale is a shipped catalog,
// and a list of validation errors if it is not.
func (l Locale) IsValid() (bool, []error) {
	for _, s := range supported {
		if l == s {
			return true, nil
		}
	}
	return false, []error{&InvalidLocaleError{Value: l}}
}

// Supported returns the shipped locales, fallback first.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// ParseLocale maps an arbitrary language tag to the closest shipped locale.
// POSIX forms such as "pt_BR.UTF-8" are accepted. Anything that does not
// match a shipped catalog yields DefaultLocale.
func ParseLocale(tag string) Locale {
	s := strings.TrimSpace(tag)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	if s == "" || strings.EqualFold(s, "C") || strings.EqualFold(s, "POSIX") {
		return DefaultLocale
	}

	parsed, err := language.Parse(s)
	if err != nil {
		return DefaultLocale
	}
	_, idx, confidence := matcher.Match(parsed)
	if confidence == language.No {
		return DefaultLocale
	}
	return supported[idx]
}

// DetectLocale resolves the locale from the usual POSIX environment
// variables, in precedence order LC_ALL, LC_MESSAGES, LANG.
func DetectLocale(getenv func(string) string) Locale {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := getenv(name); v != "" {
			return ParseLocale(v)
		}
	}
	return DefaultLocale
}

func localeStrings() []string {
	out := make([]string, len(supported))
	for i, l := range supported {
		out[i] = string(l)
	}
	return out
}
