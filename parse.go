package latlngfmt

import (
	"math"
	"strconv"
	"strings"
)

// parseText converts text that already matched the axis pattern. Digit runs
// are consumed in mask order; a run tagged fractional is read as a fraction
// with as many digits as were written ("258" is .258, "05" is .05).
func parseText(mask []Tag, s string) float64 {
	sign := 1.0
	if strings.ContainsAny(s, "SW") {
		sign = -1
	}
	total := 0.0
	i := 0
	for _, tok := range digitRuns(s) {
		if i >= len(mask) {
			break
		}
		total += tokenDegrees(mask[i], tok)
		i++
	}
	return sign * total
}

func tokenDegrees(t Tag, tok string) float64 {
	n, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		// Unreachable for pattern-checked text: runs are at most 4 digits.
		return 0
	}
	v := float64(n)
	if t.Fractional() {
		v /= math.Pow10(len(tok))
	}
	return v * t.unit()
}

func digitRuns(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r < '0' || r > '9' })
}

// normalize upper-cases and trims input before validation and parsing.
func normalize(s string) string { return strings.TrimSpace(strings.ToUpper(s)) }
