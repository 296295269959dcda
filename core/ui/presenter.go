package ui

import (
	"bayes-calc/core/bayes"
	"bayes-calc/core/session"
)

var pipelineDiagram = []struct {
	indent bool
	lines  []string
}{
	{false, []string{"+-------------+", "| Prior       | ->", "| Probability |", "+-------------+"}},
	{true, []string{"+--------------+", "| Likelihood   | ->", "|  & Evidence  |", "+--------------+"}},
	{true, []string{"+--------------+", "| Posterior    |", "| Probability  |", "+--------------+"}},
}

var explanations = map[session.State][]string{
	session.StateCollectPrior: {
		"Prior probability represents your initial belief about the probability of an event, before considering any new evidence.",
		"It is a percentage between 0% (the event is impossible) and 100% (the event is certain).",
	},
	session.StateCollectLikelihood: {
		"Likelihood represents how probable the new evidence is, assuming the event is true.",
		"It is a percentage between 0% (the evidence is impossible if the event is true) and 100% (the evidence is certain if the event is true).",
	},
	session.StateCollectEvidence: {
		"Evidence represents the probability of observing the new evidence, taking into account all possible scenarios.",
		"It is a percentage between 0% (the evidence is impossible) and 100% (the evidence is certain).",
	},
}

// Presenter renders an interactive session to a Writer.
type Presenter struct {
	w         *Writer
	showIntro bool
}

// NewPresenter creates a presenter. showIntro controls the welcome banner
// and pipeline diagram.
func NewPresenter(w *Writer, showIntro bool) *Presenter {
	return &Presenter{w: w, showIntro: showIntro}
}

// Prompt shows a question.
func (p *Presenter) Prompt(question string) { p.w.Prompt(question) }

// Invalid shows a rejection notice.
func (p *Presenter) Invalid(message string) { p.w.Invalid(message) }

// Intro prints the welcome text and the pipeline diagram.
func (p *Presenter) Intro() {
	if !p.showIntro {
		return
	}
	w := p.w
	w.Header("Welcome to the Bayesian Probability Calculator!")
	w.Blank()
	w.Prose("Bayesian probability updates a belief about an event as new evidence arrives.")
	w.Blank()

	styles := []func(string) string{
		func(s string) string { return w.style(w.styles.Prior, s) },
		func(s string) string { return w.style(w.styles.Likelihood, s) },
		func(s string) string { return w.style(w.styles.Posterior, s) },
	}
	for i, box := range pipelineDiagram {
		for _, line := range box.lines {
			if box.indent {
				line = "    " + line
			}
			w.Line(styles[i](line))
		}
	}
	w.Blank()

	w.Prose(
		"You will be asked for a description of the event, then three data points: prior probability, likelihood, and evidence.",
		"Use your own judgment, expert opinion, or available data to estimate them.",
	)
	w.Blank()
}

// Explain prints the guidance for a question.
func (p *Presenter) Explain(state session.State) {
	p.w.Blank()
	p.w.Prose(explanations[state]...)
}

// Report prints the results table, the summary, and the legend around them.
func (p *Presenter) Report(result *bayes.CalculationResult) {
	w := p.w
	w.Blank()
	w.Prose(
		"The table shows the four probabilities of this calculation:",
		"  - Prior: your belief in the event before the new evidence.",
		"  - Likelihood: how probable the evidence is if the event is true.",
		"  - Evidence: how probable the evidence is across all scenarios.",
		"  - Posterior: the updated probability of the event given the evidence.",
	)
	w.Blank()
	w.Report(result)
	w.Blank()
	w.Prose("Bayesian reasoning is iterative: update these numbers as new evidence becomes available.")
}
