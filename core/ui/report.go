package ui

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"bayes-calc/core/bayes"
)

// FormatPercent renders a fraction as a percentage with two decimals,
// e.g. 0.5 → "50.00%". NaN renders as "NaN%".
func FormatPercent(fraction float64) string {
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		return strconv.FormatFloat(fraction, 'f', 2, 64) + "%"
	}
	return decimal.NewFromFloat(fraction).Shift(2).StringFixed(2) + "%"
}

// FormatPosterior renders a posterior; an undefined one is shown as NaN%.
func FormatPosterior(p bayes.Posterior) string {
	if !p.IsDefined() {
		return FormatPercent(math.NaN())
	}
	return FormatPercent(p.Float64())
}

// Summary is the closing sentence of a report.
func Summary(result *bayes.CalculationResult) string {
	return "Based on the information provided, the probability for '" +
		result.Description + "' is " + FormatPosterior(result.Posterior)
}

// Report prints the results table followed by the summary sentence.
func (w *Writer) Report(result *bayes.CalculationResult) {
	table := w.NewTable("Probability", "Value")
	table.AddStyledRow(w.styles.Prior, "Prior", FormatPercent(result.Prior.Float64()))
	table.AddStyledRow(w.styles.Likelihood, "Likelihood", FormatPercent(result.Likelihood.Float64()))
	table.AddStyledRow(w.styles.Evidence, "Evidence", FormatPercent(result.Evidence.Float64()))
	table.AddStyledRow(w.styles.Posterior, "Posterior", FormatPosterior(result.Posterior))
	table.Render()

	w.Blank()
	w.Line(w.style(w.styles.Summary, Summary(result)))
}
