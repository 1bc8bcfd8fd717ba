// SPDX-License-Identifier: MPL-2.0

package fieldcheck

import (
	"regexp"
	"strings"

	"github.com/winepack/winepack/pkg/i18n"
)

var (
	registryHiveRegex = regexp.MustCompile(`(?i)^(?:HKCU|HKLM|HKCR|HKU|HKCC|HKEY_CURRENT_USER|HKEY_LOCAL_MACHINE|HKEY_CLASSES_ROOT|HKEY_USERS|HKEY_CURRENT_CONFIG)(?:\\|$)`)

	// RegistryValueTypes lists the value types accepted by RegistryValueType.
	RegistryValueTypes = []string{
		"REG_SZ",
		"REG_EXPAND_SZ",
		"REG_MULTI_SZ",
		"REG_DWORD",
		"REG_QWORD",
		"REG_BINARY",
		"REG_NONE",
	}
)

// RegistryPath validates a registry key path such as `HKCU\Software\Game`.
// Forward slashes are accepted with a hint carrying the backslash form.
func RegistryPath(raw string, loc i18n.Locale) Result {
	value := strings.TrimSpace(raw)
	if value == "" {
		return fail(loc, i18n.KeyRegistryPathRequired, nil)
	}

	if LooksLikeLinuxPath(value) || LooksLikeWindowsPath(value) {
		return fail(loc, i18n.KeyRegistryPathNotFilesystem, nil)
	}

	if HasControlChars(value) {
		return fail(loc, i18n.KeyControlChars, nil)
	}

	normalized := strings.ReplaceAll(value, "/", `\`)
	if !registryHiveRegex.MatchString(normalized) {
		return fail(loc, i18n.KeyRegistryPathInvalidHive, nil)
	}

	if normalized != value {
		return withSuggestion(Result{}, loc, normalized)
	}
	return Result{}
}

// RegistryValueType validates a registry value type. Empty means unset and
// is accepted; a value differing from a known type only by case passes with
// a "did you mean" hint.
func RegistryValueType(raw string, loc i18n.Locale) Result {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Result{}
	}

	upper := strings.ToUpper(value)
	known := false
	for _, t := range RegistryValueTypes {
		if upper == t {
			known = true
			break
		}
	}
	if !known {
		return fail(loc, i18n.KeyRegistryTypeInvalid, nil)
	}

	if upper != value {
		return Result{
			Hint:      i18n.T(loc, i18n.KeyRegistryTypeDidYouMean, i18n.Params{"value": upper}),
			Suggested: upper,
		}
	}
	return Result{}
}
