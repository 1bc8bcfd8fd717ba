// SPDX-License-Identifier: MPL-2.0

package i18n

import (
	"sort"
	"strings"
)

type (
	// Params holds placeholder values for Format, keyed by placeholder name
	// without braces.
	Params map[string]string

	// Translator looks up the template for a key in a fixed locale.
	Translator func(key Key) string
)

var catalogs = map[Locale]map[Key]string{
	EnUS: enUS,
	PtBR: ptBR,
}

// Translate returns the template for key in loc, falling back to en-US and
// then to the key itself.
func Translate(loc Locale, key Key) string {
	if msg, ok := catalogs[loc][key]; ok {
		return msg
	}
	if msg, ok := catalogs[DefaultLocale][key]; ok {
		return msg
	}
	return string(key)
}

// TranslatorFor binds Translate to a locale.
func TranslatorFor(loc Locale) Translator {
	return func(key Key) string {
		return Translate(loc, key)
	}
}

// Format replaces every {name} placeholder in template with params[name].
// Placeholders without a matching param are left untouched.
func Format(template string, params Params) string {
	if len(params) == 0 || !strings.Contains(template, "{") {
		return template
	}
	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// T translates key for loc and formats it with params.
func T(loc Locale, key Key, params Params) string {
	return Format(Translate(loc, key), params)
}

// Keys returns the sorted keys present in the catalog for loc.
func Keys(loc Locale) []Key {
	cat := catalogs[loc]
	keys := make([]Key, 0, len(cat))
	for k := range cat {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// MissingKeys returns the sorted keys present in one of loc and the fallback
// locale but not the other. An empty result means both catalogs are in parity.
func MissingKeys(loc Locale) []Key {
	var missing []Key
	for _, k := range Keys(DefaultLocale) {
		if _, ok := catalogs[loc][k]; !ok {
			missing = append(missing, k)
		}
	}
	for _, k := range Keys(loc) {
		if _, ok := catalogs[DefaultLocale][k]; !ok {
			missing = append(missing, k)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}
