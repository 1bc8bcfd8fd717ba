// SPDX-License-Identifier: MPL-2.0

package guard

import (
	"github.com/winepack/winepack/pkg/fieldcheck"
	"github.com/winepack/winepack/pkg/i18n"
	"github.com/winepack/winepack/pkg/profile"
)

var duplicateKeys = map[profile.DuplicateKind]i18n.Key{
	profile.DuplicateIntegrityFile: i18n.KeyWarnDuplicateIntegrityFile,
	profile.DuplicateMountTarget:   i18n.KeyWarnDuplicateMountTarget,
	profile.DuplicateMountPair:     i18n.KeyWarnDuplicateMountPair,
	profile.DuplicateRegistryKey:   i18n.KeyWarnDuplicateRegistryKey,
	profile.DuplicateDependency:    i18n.KeyWarnDuplicateDependency,
	profile.DuplicateDLLOverride:   i18n.KeyWarnDuplicateDLLOverride,
	profile.DuplicateDesktopFolder: i18n.KeyWarnDuplicateDesktopFolder,
	profile.DuplicateDrive:         i18n.KeyWarnDuplicateDrive,
}

// Warnings returns non-blocking advisories for ctx: launcher-managed
// environment variables, entries repeated in the profile and drive letters
// Wine cannot assign. The result is never nil.
func Warnings(ctx Context) []string {
	c := newCollector(ctx)
	p := ctx.Profile

	for _, name := range sortedKeys(p.Environment.CustomVars) {
		if r := fieldcheck.ReservedEnvVar(name, c.loc); r.HasHint() {
			c.msgs = append(c.msgs, r.Hint)
		}
	}

	for _, dup := range p.Duplicates() {
		if dup.Kind == profile.DuplicateWrapper {
			continue // blocking, reported by CreateExecutableErrors
		}
		key, ok := duplicateKeys[dup.Kind]
		if !ok {
			c.msgs = append(c.msgs, dup.Error())
			continue
		}
		c.msgs = append(c.msgs, i18n.Format(c.tr(key), i18n.Params{"value": dup.Value}))
	}

	for i, d := range p.Winecfg.Drives {
		c.check(c.label(i18n.KeyGuardDriveLabel, i, i18n.KeyPartLetter), fieldcheck.DriveLetter(d.Letter, c.loc))
	}

	return c.msgs
}
