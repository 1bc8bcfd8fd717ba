// SPDX-License-Identifier: MPL-2.0

package i18n

import (
	"errors"
	"strings"
	"testing"
)

func TestTranslate_Fallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		loc  Locale
		key  Key
		want string
	}{
		{"exact en-US", EnUS, KeyGuardExeRequired, "Select the main executable."},
		{"exact pt-BR", PtBR, KeyGuardExeRequired, "Selecione o executável principal."},
		{"unknown locale falls back to en-US", Locale("fr-FR"), KeyGuardExeRequired, "Select the main executable."},
		{"unknown key falls back to key", PtBR, Key("does.not.exist"), "does.not.exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Translate(tt.loc, tt.key); got != tt.want {
				t.Errorf("Translate(%q, %q) = %q, want %q", tt.loc, tt.key, got, tt.want)
			}
		})
	}
}

func TestTranslate_MissingInLocaleUsesFallback(t *testing.T) {
	// Mutates the shared catalog, so not parallel.
	const key Key = "test.onlyInEnglish"
	enUS[key] = "english only"
	t.Cleanup(func() { delete(enUS, key) })

	if got := Translate(PtBR, key); got != "english only" {
		t.Errorf("Translate(pt-BR, %q) = %q, want en-US text", key, got)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		params   Params
		want     string
	}{
		{"no params", "hello", nil, "hello"},
		{"single", "Suggestion: {value}", Params{"value": `C:\Games`}, `Suggestion: C:\Games`},
		{"multiple", "{label} must be between {min} and {max}.", Params{"label": "Width", "min": "1", "max": "10"}, "Width must be between 1 and 10."},
		{"unknown placeholder kept", "{a} and {b}", Params{"a": "x"}, "x and {b}"},
		{"value containing braces not re-expanded", "{a}", Params{"a": "{a}"}, "{a}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Format(tt.template, tt.params); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestCatalogParity(t *testing.T) {
	t.Parallel()

	for _, loc := range Supported() {
		if missing := MissingKeys(loc); len(missing) > 0 {
			t.Errorf("locale %s out of parity with %s: %v", loc, DefaultLocale, missing)
		}
	}
}

func TestCatalog_NoEmptyMessages(t *testing.T) {
	t.Parallel()

	for _, loc := range Supported() {
		for _, k := range Keys(loc) {
			if strings.TrimSpace(Translate(loc, k)) == "" {
				t.Errorf("locale %s key %s has empty text", loc, k)
			}
		}
	}
}

func TestParseLocale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want Locale
	}{
		{"", EnUS},
		{"C", EnUS},
		{"POSIX", EnUS},
		{"en-US", EnUS},
		{"en_US.UTF-8", EnUS},
		{"pt-BR", PtBR},
		{"pt_BR.UTF-8", PtBR},
		{"pt_BR@euro", PtBR},
		{"not a tag!!", EnUS},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()
			if got := ParseLocale(tt.tag); got != tt.want {
				t.Errorf("ParseLocale(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func TestDetectLocale(t *testing.T) {
	t.Parallel()

	env := map[string]string{"LANG": "en_US.UTF-8", "LC_MESSAGES": "pt_BR.UTF-8"}
	if got := DetectLocale(func(k string) string { return env[k] }); got != PtBR {
		t.Errorf("DetectLocale() = %q, want LC_MESSAGES to win over LANG", got)
	}

	env["LC_ALL"] = "en_US.UTF-8"
	if got := DetectLocale(func(k string) string { return env[k] }); got != EnUS {
		t.Errorf("DetectLocale() = %q, want LC_ALL to win", got)
	}

	if got := DetectLocale(func(string) string { return "" }); got != DefaultLocale {
		t.Errorf("DetectLocale() with empty env = %q, want %q", got, DefaultLocale)
	}
}

func TestLocale_IsValid(t *testing.T) {
	t.Parallel()

	if ok, errs := PtBR.IsValid(); !ok || errs != nil {
		t.Errorf("PtBR.IsValid() = %v, %v", ok, errs)
	}

	ok, errs := Locale("de-DE").IsValid()
	if ok || len(errs) != 1 {
		t.Fatalf("Locale(de-DE).IsValid() = %v, %v", ok, errs)
	}
	if !errors.Is(errs[0], ErrInvalidLocale) {
		t.Errorf("error %v does not wrap ErrInvalidLocale", errs[0])
	}
}
