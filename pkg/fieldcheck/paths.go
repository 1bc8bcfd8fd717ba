// SPDX-License-Identifier: MPL-2.0

package fieldcheck

import (
	"regexp"
	"strings"

	"github.com/winepack/winepack/pkg/i18n"
)

const (
	// KindFile marks a relative path that must name a file.
	KindFile PathKind = "file"
	// KindFolder marks a relative path that names a folder.
	KindFolder PathKind = "folder"

	// pathForbiddenChars are invalid in Windows path segments.
	pathForbiddenChars = `<>:"|?*`
)

var (
	windowsDriveRegex = regexp.MustCompile(`^[A-Za-z]:([\\/]|$)`)
	windowsRootRegex  = regexp.MustCompile(`^(?:[A-Za-z]:\\|\\\\[^\\]+\\[^\\]+)`)
)

type (
	// PathKind selects file or folder rules for RelativeGamePath.
	PathKind string

	// RelativePathOptions configures RelativeGamePath.
	RelativePathOptions struct {
		Kind PathKind
		// AllowDot accepts "." (and "./") as the game root itself.
		AllowDot bool
		// RequireDotPrefix requires the literal "./" prefix.
		RequireDotPrefix bool
	}

	// LinuxPathOptions configures LinuxPath.
	LinuxPathOptions struct {
		Required bool
	}
)

// LooksLikeLinuxPath reports whether s is an absolute POSIX path.
func LooksLikeLinuxPath(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "/")
}

// LooksLikeWindowsPath reports whether s starts with a drive letter
// ("C:", "C:\", "C:/") or a UNC prefix ("\\").
func LooksLikeWindowsPath(s string) bool {
	v := strings.TrimSpace(s)
	return windowsDriveRegex.MatchString(v) || strings.HasPrefix(v, `\\`)
}

// LinuxToWinePath maps an absolute Linux path to its location on Wine's Z:
// drive, e.g. "/home/user/game.exe" becomes `Z:\home\user\game.exe`.
func LinuxToWinePath(s string) string {
	return "Z:" + strings.ReplaceAll(strings.TrimSpace(s), "/", `\`)
}

// HasControlChars reports whether s contains ASCII control characters
// (including NUL and DEL).
func HasControlChars(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 0x20 || c == 0x7f {
			return true
		}
	}
	return false
}

// RelativeGamePath validates a path relative to the game root, written with
// forward slashes, e.g. "./bin/game.exe".
func RelativeGamePath(raw string, loc i18n.Locale, opts RelativePathOptions) Result {
	value := strings.TrimSpace(raw)
	if value == "" {
		if opts.AllowDot {
			return Result{}
		}
		return fail(loc, i18n.KeyRelativePathRequired, nil)
	}

	if LooksLikeLinuxPath(value) || LooksLikeWindowsPath(value) {
		return fail(loc, i18n.KeyRelativePathMustBeRelative, nil)
	}

	recheck := func(v string) Result { return RelativeGamePath(v, loc, opts) }
	if strings.Contains(value, `\`) {
		normalized := strings.ReplaceAll(value, `\`, "/")
		if opts.RequireDotPrefix && !strings.HasPrefix(normalized, "./") {
			normalized = "./" + normalized
		}
		return suggestIfValid(fail(loc, i18n.KeyRelativePathForwardSlashes, nil), loc, normalized, recheck)
	}

	if opts.RequireDotPrefix && !strings.HasPrefix(value, "./") {
		return suggestIfValid(fail(loc, i18n.KeyRelativePathDotPrefix, nil), loc, "./"+value, recheck)
	}

	if strings.Contains(value, "//") {
		return fail(loc, i18n.KeyRelativePathDoubleSlash, nil)
	}

	if HasControlChars(value) {
		return fail(loc, i18n.KeyControlChars, nil)
	}

	rest := strings.TrimPrefix(value, "./")
	if rest == "" || rest == "." {
		if opts.AllowDot {
			return Result{}
		}
		return fail(loc, i18n.KeyRelativePathSpecificTarget, nil)
	}

	for _, segment := range strings.Split(strings.TrimSuffix(rest, "/"), "/") {
		if segment == "." || segment == ".." {
			return fail(loc, i18n.KeyRelativePathTraversal, nil)
		}
		if strings.ContainsAny(segment, pathForbiddenChars+"\x00") {
			return fail(loc, i18n.KeyRelativePathInvalidChars, nil)
		}
	}

	if opts.Kind == KindFile && strings.HasSuffix(rest, "/") {
		return fail(loc, i18n.KeyRelativePathFileTrailingSlash, nil)
	}

	return Result{}
}

// WindowsPath validates an absolute Windows path (drive letter or UNC).
// Forward slashes are accepted and answered with a hint carrying the
// canonical backslash form.
func WindowsPath(raw string, loc i18n.Locale) Result {
	value := strings.TrimSpace(raw)
	if value == "" {
		return fail(loc, i18n.KeyWindowsPathRequired, nil)
	}

	if HasControlChars(value) {
		return fail(loc, i18n.KeyControlChars, nil)
	}

	if LooksLikeLinuxPath(value) {
		recheck := func(v string) Result { return WindowsPath(v, loc) }
		return suggestIfValid(fail(loc, i18n.KeyWindowsPathExpectedWindows, nil), loc, LinuxToWinePath(value), recheck)
	}

	normalized := strings.ReplaceAll(value, "/", `\`)
	root := windowsRootRegex.FindString(normalized)
	if root == "" {
		return fail(loc, i18n.KeyWindowsPathInvalidFormat, nil)
	}

	if strings.ContainsAny(normalized[len(root):], pathForbiddenChars) {
		return fail(loc, i18n.KeyWindowsPathInvalidChars, nil)
	}

	if normalized != value {
		return withSuggestion(Result{}, loc, normalized)
	}
	return Result{}
}

// LinuxPath validates an absolute path on the Linux host.
func LinuxPath(raw string, loc i18n.Locale, opts LinuxPathOptions) Result {
	value := strings.TrimSpace(raw)
	if value == "" {
		if opts.Required {
			return fail(loc, i18n.KeyLinuxPathRequired, nil)
		}
		return Result{}
	}

	if HasControlChars(value) {
		return fail(loc, i18n.KeyControlChars, nil)
	}

	if LooksLikeWindowsPath(value) {
		r := fail(loc, i18n.KeyLinuxPathExpectedLinux, nil)
		r.Hint = i18n.Translate(loc, i18n.KeyLinuxPathUseHostPath)
		return r
	}

	if !strings.HasPrefix(value, "/") {
		return fail(loc, i18n.KeyLinuxPathMustBeAbsolute, nil)
	}
	return Result{}
}
