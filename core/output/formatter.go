// Package output provides output formatting for calculation results.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"bayes-calc/core/bayes"
	"bayes-calc/core/ui"
	"bayes-calc/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *bayes.CalculationResult) error
}

// Result is the JSON shape of a calculation
type Result struct {
	// Description is the scenario label
	Description string `json:"description"`

	// Prior is the prior probability as a fraction
	Prior float64 `json:"prior"`

	// Likelihood is the likelihood as a fraction
	Likelihood float64 `json:"likelihood"`

	// Evidence is the evidence as a fraction
	Evidence float64 `json:"evidence"`

	// Posterior is the posterior fraction; null when undefined or not
	// finite, since JSON has no representation for infinities
	Posterior *float64 `json:"posterior"`

	// Defined is false when the evidence was zero
	Defined bool `json:"defined"`

	// PosteriorPercent is the display form, e.g. "66.67%", "NaN%" or "+Inf%"
	PosteriorPercent string `json:"posterior_percent"`
}

// NewResult converts a calculation to its JSON shape
func NewResult(result *bayes.CalculationResult) Result {
	r := Result{
		Description:      result.Description,
		Prior:            result.Prior.Float64(),
		Likelihood:       result.Likelihood.Float64(),
		Evidence:         result.Evidence.Float64(),
		PosteriorPercent: ui.FormatPosterior(result.Posterior),
	}
	if v, ok := result.Posterior.Value(); ok {
		r.Defined = true
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			r.Posterior = &v
		}
	}
	return r
}

// CLIFormatter renders the terminal table
type CLIFormatter struct {
	NoColor bool
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format { return FormatCLI }

// Render writes the table and summary sentence
func (f *CLIFormatter) Render(w io.Writer, result *bayes.CalculationResult) error {
	ui.NewWriter(w, f.NoColor).Report(result)
	return nil
}

// JSONFormatter renders indented JSON
type JSONFormatter struct{}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes the result as JSON
func (f *JSONFormatter) Render(w io.Writer, result *bayes.CalculationResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewResult(result)); err != nil {
		return errors.Internal("encode result", err)
	}
	return nil
}

// MarkdownFormatter renders a GitHub-flavoured markdown table
type MarkdownFormatter struct{}

// Format returns FormatMarkdown
func (f *MarkdownFormatter) Format() Format { return FormatMarkdown }

// Render writes the markdown table and summary
func (f *MarkdownFormatter) Render(w io.Writer, result *bayes.CalculationResult) error {
	var b strings.Builder
	b.WriteString("| Probability | Value |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| Prior | %s |\n", ui.FormatPercent(result.Prior.Float64()))
	fmt.Fprintf(&b, "| Likelihood | %s |\n", ui.FormatPercent(result.Likelihood.Float64()))
	fmt.Fprintf(&b, "| Evidence | %s |\n", ui.FormatPercent(result.Evidence.Float64()))
	fmt.Fprintf(&b, "| Posterior | %s |\n", ui.FormatPosterior(result.Posterior))
	b.WriteString("\n")
	b.WriteString(ui.Summary(result))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Registry maps formats to formatters
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates a registry with the built-in formatters
func NewRegistry(noColor bool) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	r.Register(&CLIFormatter{NoColor: noColor})
	r.Register(&JSONFormatter{})
	r.Register(&MarkdownFormatter{})
	return r
}

// Register adds or replaces a formatter
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Format()] = formatter
}

// Get returns the formatter for name, or a config error listing valid names
func (r *Registry) Get(name string) (Formatter, error) {
	if f, ok := r.formatters[Format(strings.ToLower(name))]; ok {
		return f, nil
	}
	return nil, errors.Config(
		fmt.Sprintf("unknown output format %q (valid: %s)", name, strings.Join(r.Names(), ", ")), nil)
}

// Names lists registered formats in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.formatters))
	for f := range r.formatters {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}
