// Package bayes applies Bayes' rule to a prior, a likelihood and the evidence.
package bayes

import (
	"math"
	"strconv"

	"bayes-calc/core/probability"
)

// Posterior is the outcome of Evaluate. It is either a defined value or
// undefined, which happens when the evidence is zero.
type Posterior struct {
	value   float64
	defined bool
}

// Defined wraps a computed posterior.
func Defined(value float64) Posterior {
	return Posterior{value: value, defined: true}
}

// Undefined is the posterior for zero evidence.
var Undefined = Posterior{}

// Value returns the posterior and whether it is defined.
func (p Posterior) Value() (float64, bool) {
	return p.value, p.defined
}

// IsDefined reports whether the posterior has a value.
func (p Posterior) IsDefined() bool {
	return p.defined
}

// Float64 returns the value, or NaN when undefined.
func (p Posterior) Float64() float64 {
	if !p.defined {
		return math.NaN()
	}
	return p.value
}

func (p Posterior) String() string {
	if !p.defined {
		return "undefined"
	}
	return strconv.FormatFloat(p.value, 'g', -1, 64)
}

// Evaluate returns prior * likelihood / evidence. Inputs are not range
// checked; out-of-range values give whatever the formula gives.
func Evaluate(prior, likelihood, evidence probability.Probability) Posterior {
	if evidence == 0 {
		return Undefined
	}
	return Defined(prior.Float64() * likelihood.Float64() / evidence.Float64())
}

// CalculationResult holds one run's inputs and the derived posterior.
type CalculationResult struct {
	Description string
	Prior       probability.Probability
	Likelihood  probability.Probability
	Evidence    probability.Probability
	Posterior   Posterior
}

// Calculate evaluates the inputs and bundles them with the result.
func Calculate(description string, prior, likelihood, evidence probability.Probability) *CalculationResult {
	return &CalculationResult{
		Description: description,
		Prior:       prior,
		Likelihood:  likelihood,
		Evidence:    evidence,
		Posterior:   Evaluate(prior, likelihood, evidence),
	}
}
