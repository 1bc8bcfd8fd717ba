// SPDX-License-Identifier: MPL-2.0

package fieldcheck

import (
	"sort"

	"github.com/winepack/winepack/pkg/i18n"
)

// Func is the common shape of a validator once its options are bound.
type Func func(raw string, loc i18n.Locale) Result

// kinds binds each validator to the options the profile editor uses for the
// matching field, keyed by the name accepted on the command line.
var kinds = map[string]Func{
	"relative-file": func(raw string, loc i18n.Locale) Result {
		return RelativeGamePath(raw, loc, RelativePathOptions{Kind: KindFile, RequireDotPrefix: true})
	},
	"relative-folder": func(raw string, loc i18n.Locale) Result {
		return RelativeGamePath(raw, loc, RelativePathOptions{Kind: KindFolder, AllowDot: true})
	},
	"windows-path": WindowsPath,
	"linux-path": func(raw string, loc i18n.Locale) Result {
		return LinuxPath(raw, loc, LinuxPathOptions{Required: true})
	},
	"registry-path": RegistryPath,
	"registry-type": RegistryValueType,
	"env-var": func(raw string, loc i18n.Locale) Result {
		r := EnvVarName(raw, loc)
		if r.OK() {
			return ReservedEnvVar(raw, loc)
		}
		return r
	},
	"dll":     DLLName,
	"wrapper": WrapperExecutable,
	"command": CommandToken,
	"shortcut-name": func(raw string, loc i18n.Locale) Result {
		return WindowsFriendlyName(raw, loc, LabelFromKey(i18n.KeyLabelShortcutName))
	},
	"drive-label": func(raw string, loc i18n.Locale) Result {
		return WindowsFriendlyName(raw, loc, LabelFromKey(i18n.KeyLabelDriveLabel))
	},
	"drive-serial": DriveSerial,
	"drive-letter": DriveLetter,
	"resolution": func(raw string, loc i18n.Locale) Result {
		return PositiveInteger(raw, loc, IntRange{Min: MinResolution, Max: MaxResolution, Label: LabelFromKey(i18n.KeyLabelWidth)})
	},
	"fps": func(raw string, loc i18n.Locale) Result {
		return PositiveInteger(raw, loc, IntRange{Min: MinFPS, Max: MaxFPS, Label: LabelFromKey(i18n.KeyLabelFPSLimiter)})
	},
}

// Lookup returns the validator registered under name.
func Lookup(name string) (Func, bool) {
	fn, ok := kinds[name]
	return fn, ok
}

// KindNames returns the registered validator names, sorted.
func KindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
