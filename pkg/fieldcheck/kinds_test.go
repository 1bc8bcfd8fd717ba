// SPDX-License-Identifier: MPL-2.0

package fieldcheck

import (
	"slices"
	"strings"
	"testing"

	"github.com/winepack/winepack/pkg/i18n"
)

// trickyInputs exercise boundaries shared by every validator.
var trickyInputs = []string{
	"",
	" ",
	".",
	"./",
	"..",
	"/",
	`\`,
	`\\`,
	"C:",
	`C:\`,
	"Z:/",
	"\x00",
	"\x7f",
	"\t\n",
	"a b",
	"::::",
	"<>|?*",
	"ção",
	"日本語",
	strings.Repeat("a", 4096),
	strings.Repeat("../", 64),
	"0x",
	"-0",
	"1e9",
}

func TestKindNames(t *testing.T) {
	t.Parallel()

	names := KindNames()
	if !slices.IsSorted(names) {
		t.Errorf("KindNames() not sorted: %v", names)
	}
	for _, want := range []string{"relative-file", "windows-path", "registry-type", "drive-letter", "fps"} {
		if !slices.Contains(names, want) {
			t.Errorf("KindNames() missing %q", want)
		}
	}
	if _, ok := Lookup("no-such-kind"); ok {
		t.Error("Lookup(no-such-kind) succeeded")
	}
}

func TestLookup_EnvVarAddsReservedHint(t *testing.T) {
	t.Parallel()

	fn, ok := Lookup("env-var")
	if !ok {
		t.Fatal("env-var not registered")
	}
	got := fn("WINEPREFIX", i18n.EnUS)
	if !got.OK() || !got.HasHint() {
		t.Errorf("env-var(WINEPREFIX) = %+v, want hint without error", got)
	}
}

// Validators return the same Result for the same input and locale, and only
// propose a Suggested value alongside a Hint.
func TestValidators_TotalAndDeterministic(t *testing.T) {
	t.Parallel()

	locales := []i18n.Locale{i18n.EnUS, i18n.PtBR, i18n.Locale("fr-FR")}
	for _, name := range KindNames() {
		fn, _ := Lookup(name)
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, loc := range locales {
				for _, in := range trickyInputs {
					first := fn(in, loc)
					if second := fn(in, loc); second != first {
						t.Errorf("%s(%q, %s) not deterministic: %+v vs %+v", name, in, loc, first, second)
					}
					if first.Suggested != "" && !first.HasHint() {
						t.Errorf("%s(%q, %s) has Suggested without Hint", name, in, loc)
					}
				}
			}
		})
	}
}

// Applying a suggestion must yield a value that passes without a further
// suggestion.
func TestValidators_SuggestionIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`bin\game.exe`,
		"game.exe",
		`.\saves`,
		"saves",
		"C:/Games/Game/game.exe",
		"/home/user/game/game.exe",
		"HKCU/Software/Game",
		"reg_dword",
		"Reg_Binary",
		"/home/user/a:b.exe",
		"/srv/what?.exe",
		`..\game.exe`,
		"bin//game.exe",
	}

	for _, name := range KindNames() {
		fn, _ := Lookup(name)
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, loc := range []i18n.Locale{i18n.EnUS, i18n.PtBR} {
				for _, in := range inputs {
					first := fn(in, loc)
					if first.Suggested == "" {
						continue
					}
					second := fn(first.Suggested, loc)
					if !second.OK() {
						t.Errorf("%s(%q) suggested %q which fails: %s", name, in, first.Suggested, second.Error)
					}
					if second.Suggested != "" {
						t.Errorf("%s(%q) suggested %q which suggests %q", name, in, first.Suggested, second.Suggested)
					}
				}
			}
		})
	}
}

func TestValidators_UnknownLocaleFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	got := DLLName("", i18n.Locale("fr-FR"))
	if want := i18n.Translate(i18n.EnUS, i18n.KeyDLLRequired); got.Error != want {
		t.Errorf("Error = %q, want %q", got.Error, want)
	}
}
