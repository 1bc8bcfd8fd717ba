// SPDX-License-Identifier: MPL-2.0

package fieldcheck

import (
	"github.com/winepack/winepack/pkg/i18n"
)

type (
	// Result is the outcome of a field validation. An empty Error means the
	// value is acceptable; Hint may still carry a suggestion such as the
	// canonical form of the input.
	Result struct {
		Error string `json:"error,omitempty"`
		Hint  string `json:"hint,omitempty"`
		// Suggested is the canonical form proposed by Hint, when the hint
		// proposes one.
		Suggested string `json:"suggested,omitempty"`
	}

	// Label is a caller-supplied field label localized per locale.
	Label struct {
		PT string
		EN string
	}
)

// OK reports whether the value passed validation.
func (r Result) OK() bool { return r.Error == "" }

// HasHint reports whether a suggestion accompanies the result.
func (r Result) HasHint() bool { return r.Hint != "" }

// For returns the label text for loc. Locales other than pt-BR use EN.
func (l Label) For(loc i18n.Locale) string {
	if loc == i18n.PtBR && l.PT != "" {
		return l.PT
	}
	return l.EN
}

// LabelFromKey builds a Label from a catalog key.
func LabelFromKey(key i18n.Key) Label {
	return Label{
		PT: i18n.Translate(i18n.PtBR, key),
		EN: i18n.Translate(i18n.EnUS, key),
	}
}

func fail(loc i18n.Locale, key i18n.Key, params i18n.Params) Result {
	return Result{Error: i18n.T(loc, key, params)}
}

func withSuggestion(r Result, loc i18n.Locale, value string) Result {
	r.Hint = i18n.T(loc, i18n.KeyHintSuggestion, i18n.Params{"value": value})
	r.Suggested = value
	return r
}

// suggestIfValid attaches candidate as the suggestion only when recheck
// accepts it as-is, so a hint never proposes a value that fails again.
func suggestIfValid(r Result, loc i18n.Locale, candidate string, recheck func(string) Result) Result {
	if again := recheck(candidate); !again.OK() || again.Suggested != "" {
		return r
	}
	return withSuggestion(r, loc, candidate)
}
