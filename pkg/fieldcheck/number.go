// SPDX-License-Identifier: MPL-2.0

package fieldcheck

import (
	"strconv"
	"strings"

	"github.com/winepack/winepack/pkg/i18n"
)

type (
	// IntRange bounds PositiveInteger, inclusive on both ends.
	IntRange struct {
		Min   int
		Max   int
		Label Label
	}
)

// Resolution bounds shared by the virtual desktop and Gamescope fields.
const (
	MinResolution = 1
	MaxResolution = 16384
	MinFPS        = 1
	MaxFPS        = 1000
)

// PositiveInteger validates a decimal integer typed as text. Empty is
// accepted; callers decide whether the field is required.
func PositiveInteger(raw string, loc i18n.Locale, r IntRange) Result {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Result{}
	}

	label := r.Label.For(loc)
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return fail(loc, i18n.KeyNumberDigitsOnly, i18n.Params{"label": label})
		}
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < r.Min || n > r.Max {
		return fail(loc, i18n.KeyNumberRange, i18n.Params{
			"label": label,
			"min":   strconv.Itoa(r.Min),
			"max":   strconv.Itoa(r.Max),
		})
	}
	return Result{}
}
