// Package probability parses user-entered percentages into probabilities.
//
// A Probability is a fraction in [0, 1]. Text such as "50", "50%" or
// " 12.5 % " is read as a percentage and divided by 100; anything that is not
// a number, or falls outside 0..100, is rejected. ParsePercentage is the only
// way text becomes a Probability.
package probability

import (
	"strings"

	"github.com/shopspring/decimal"

	"bayes-calc/internal/errors"
)

// Probability is a fraction, normally in [0, 1].
type Probability float64

// Float64 returns the fraction as a float64.
func (p Probability) Float64() float64 {
	return float64(p)
}

var hundred = decimal.NewFromInt(100)

// Bounds on a number's order of magnitude, digits+exponent, checked before
// any arithmetic. Comparing or shifting rescales the coefficient, which for
// inputs like "1e999999999" means building a billion-digit integer.
const (
	maxMagnitude = 3    // 100 has three digits; anything larger is >= 1000
	minMagnitude = -330 // below the smallest float64 once divided by 100
)

// Parse reads a percentage. Surrounding whitespace and one trailing '%' are
// ignored. The error is a TypeInput error explaining the rejection.
func Parse(text string) (Probability, error) {
	raw := strings.TrimSpace(text)
	raw = strings.TrimSuffix(raw, "%")

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, errors.Input("not a number").WithContext("input", raw)
	}
	if value.IsNegative() {
		return 0, errors.Input("percentage must be between 0 and 100").WithContext("input", raw)
	}
	if value.IsZero() {
		return 0, nil
	}

	magnitude := value.NumDigits() + int(value.Exponent())
	if magnitude > maxMagnitude {
		return 0, errors.Input("percentage must be between 0 and 100").WithContext("input", raw)
	}
	if magnitude < minMagnitude {
		return 0, nil
	}
	if value.GreaterThan(hundred) {
		return 0, errors.Input("percentage must be between 0 and 100").WithContext("input", raw)
	}

	// Shift is exact, so "25.5" becomes the float nearest 0.255.
	return Probability(value.Shift(-2).InexactFloat64()), nil
}

// ParsePercentage is Parse without the reason: ok is false for invalid text.
func ParsePercentage(text string) (Probability, bool) {
	p, err := Parse(text)
	if err != nil {
		return 0, false
	}
	return p, true
}
