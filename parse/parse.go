// Package parse converts free-form, user-typed number lists into value
// sequences for partitioning.
//
// Input may separate numbers with spaces, commas, or newlines, and may use
// integer range tokens such as "3-7", which expand in place to the inclusive
// ascending run 3, 4, 5, 6, 7.
package parse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidToken indicates a token that could not be parsed as a number or
// an integer range.
type ErrInvalidToken struct {
	Token string
}

func (e *ErrInvalidToken) Error() string {
	return fmt.Sprintf("cannot parse token %q as a number", e.Token)
}

// Values parses s into an ordered sequence of floats. Blank input yields an
// empty sequence. On the first unparseable token it returns a nil slice and
// *ErrInvalidToken naming the token; no partial result escapes.
func Values(s string) ([]float64, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))

	values := make([]float64, 0, len(fields))

	for _, tok := range fields {
		// A single interior dash may be a range token. Anything that fails
		// the range rules falls back to plain number parsing, so negative
		// numbers like "-3" parse normally.
		if strings.Count(tok, "-") == 1 {
			if expanded, ok := expandRange(tok); ok {
				values = append(values, expanded...)

				continue
			}
		}

		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &ErrInvalidToken{Token: tok}
		}

		values = append(values, v)
	}

	return values, nil
}

// expandRange expands "a-b" to the inclusive integer run a..b. It reports
// false unless both endpoints are integral and a <= b.
func expandRange(tok string) ([]float64, bool) {
	a, b, _ := strings.Cut(tok, "-")

	af, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return nil, false
	}

	bf, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return nil, false
	}

	if af != math.Trunc(af) || bf != math.Trunc(bf) || af > bf {
		return nil, false
	}

	lo, hi := int(af), int(bf)

	out := make([]float64, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, float64(i))
	}

	return out, true
}
