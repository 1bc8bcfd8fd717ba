// SPDX-License-Identifier: MPL-2.0

package fieldcheck

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/winepack/winepack/pkg/i18n"
)

// friendlyNameForbiddenChars are invalid in Windows file and label names.
const friendlyNameForbiddenChars = `<>:"/\|?*`

var (
	envVarNameRegex  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	dllNameRegex     = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
	driveSerialRegex = regexp.MustCompile(`^(0x)?[A-Fa-f0-9]{1,16}$`)

	// ReservedEnvVars are set by the launcher itself; user values for them
	// are overridden at launch.
	ReservedEnvVars = []string{"WINEPREFIX", "PROTON_VERB"}
)

// EnvVarName validates an environment variable identifier.
func EnvVarName(raw string, loc i18n.Locale) Result {
	if strings.TrimSpace(raw) == "" {
		return fail(loc, i18n.KeyEnvNameRequired, nil)
	}
	if !envVarNameRegex.MatchString(raw) {
		return fail(loc, i18n.KeyEnvNameInvalid, nil)
	}
	return Result{}
}

// ReservedEnvVar returns a non-blocking hint when name is managed by the
// launcher. It never sets Error.
func ReservedEnvVar(name string, loc i18n.Locale) Result {
	for _, reserved := range ReservedEnvVars {
		if name == reserved {
			return Result{Hint: i18n.T(loc, i18n.KeyEnvNameReserved, i18n.Params{"name": name})}
		}
	}
	return Result{}
}

// DLLName validates a bare DLL name for a Wine override, e.g. "d3d11".
func DLLName(raw string, loc i18n.Locale) Result {
	value := strings.TrimSpace(raw)
	if value == "" {
		return fail(loc, i18n.KeyDLLRequired, nil)
	}
	if strings.ContainsAny(value, `/\`) {
		return fail(loc, i18n.KeyDLLNoPath, nil)
	}
	if !dllNameRegex.MatchString(value) {
		return fail(loc, i18n.KeyDLLInvalid, nil)
	}
	return Result{}
}

// WrapperExecutable validates the executable of a wrapper command. Wrappers
// run on the Linux side, so Windows paths are rejected. A bare command name
// containing whitespace is taken as executable and arguments typed together.
func WrapperExecutable(raw string, loc i18n.Locale) Result {
	value := strings.TrimSpace(raw)
	if value == "" {
		return fail(loc, i18n.KeyWrapperRequired, nil)
	}
	if LooksLikeWindowsPath(value) {
		return fail(loc, i18n.KeyWrapperWindowsPath, nil)
	}
	if strings.IndexFunc(value, unicode.IsSpace) >= 0 && !strings.HasPrefix(value, "/") {
		return fail(loc, i18n.KeyWrapperArgsInExecutable, nil)
	}
	return Result{}
}

// CommandToken validates a Linux-side command used by dependency checks.
// Empty is accepted.
func CommandToken(raw string, loc i18n.Locale) Result {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Result{}
	}
	if LooksLikeWindowsPath(value) {
		return fail(loc, i18n.KeyCommandWindowsPath, nil)
	}
	return Result{}
}

// WindowsFriendlyName validates a name shown inside Windows, such as a
// shortcut name or a drive label. label names the field in messages.
func WindowsFriendlyName(raw string, loc i18n.Locale, label Label) Result {
	params := i18n.Params{"label": label.For(loc)}
	if strings.TrimSpace(raw) == "" {
		return fail(loc, i18n.KeyFriendlyNameRequired, params)
	}
	if strings.ContainsAny(raw, friendlyNameForbiddenChars) || HasControlChars(raw) {
		return fail(loc, i18n.KeyFriendlyNameInvalidChars, params)
	}
	if strings.HasSuffix(raw, " ") || strings.HasSuffix(raw, ".") {
		return fail(loc, i18n.KeyFriendlyNameTrailing, params)
	}
	return Result{}
}

// DriveSerial validates a drive serial number in hexadecimal. Empty is accepted.
func DriveSerial(raw string, loc i18n.Locale) Result {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Result{}
	}
	if !driveSerialRegex.MatchString(value) {
		return fail(loc, i18n.KeyDriveSerialInvalid, nil)
	}
	return Result{}
}

// DriveLetter validates a drive letter for an extra Wine drive. C: and Z:
// belong to the prefix, so only D through Y are allowed. Case-insensitive;
// a trailing colon is tolerated.
func DriveLetter(raw string, loc i18n.Locale) Result {
	value := strings.TrimSuffix(strings.TrimSpace(raw), ":")
	if len(value) != 1 {
		return fail(loc, i18n.KeyDriveLetterInvalid, nil)
	}
	c := value[0] | 0x20
	if c < 'd' || c > 'y' {
		return fail(loc, i18n.KeyDriveLetterInvalid, nil)
	}
	return Result{}
}
