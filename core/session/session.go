// Package session runs one interactive calculation from start to finish.
//
// A session moves through a fixed sequence of states:
//
//	Start → CollectDescription → CollectPrior → CollectLikelihood →
//	CollectEvidence → Compute → Render → End
//
// Each Collect state asks one question through a prompt.Loop, which retries
// internally until the answer is usable. The only way out other than End is
// a failure of the input stream.
package session

import (
	"fmt"

	"go.uber.org/zap"

	"bayes-calc/core/bayes"
	"bayes-calc/core/prompt"
	"bayes-calc/internal/logging"
)

// State is a step of the session.
type State int

const (
	StateStart State = iota
	StateCollectDescription
	StateCollectPrior
	StateCollectLikelihood
	StateCollectEvidence
	StateCompute
	StateRender
	StateEnd
)

var stateNames = [...]string{
	StateStart:              "Start",
	StateCollectDescription: "CollectDescription",
	StateCollectPrior:       "CollectPrior",
	StateCollectLikelihood:  "CollectLikelihood",
	StateCollectEvidence:    "CollectEvidence",
	StateCompute:            "Compute",
	StateRender:             "Render",
	StateEnd:                "End",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Questions asked in each Collect state.
const (
	DescriptionQuestion = "Describe the thing being calculated:"
	PriorQuestion       = "Enter the prior probability (in percentage, e.g., 50 or 50%):"
	LikelihoodQuestion  = "Enter the likelihood (in percentage, e.g., 50 or 50%):"
	EvidenceQuestion    = "Enter the evidence (in percentage, e.g., 50 or 50%):"
)

// Presenter renders everything a session shows besides the questions.
type Presenter interface {
	// Intro is shown once in the Start state.
	Intro()
	// Explain is shown on entering each Collect state.
	Explain(state State)
	// Report shows the finished calculation.
	Report(result *bayes.CalculationResult)
}

// Session drives a single calculation.
type Session struct {
	loop      *prompt.Loop
	presenter Presenter
	state     State
}

// New creates a session in the Start state.
func New(loop *prompt.Loop, presenter Presenter) *Session {
	return &Session{
		loop:      loop,
		presenter: presenter,
		state:     StateStart,
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

func (s *Session) enter(next State) {
	logging.Debug("session transition",
		zap.Stringer("from", s.state),
		zap.Stringer("to", next))
	s.state = next
}

// Run executes the session. On an input-stream failure it returns the error
// and leaves State at the Collect state that failed.
func (s *Session) Run() (*bayes.CalculationResult, error) {
	s.presenter.Intro()

	s.enter(StateCollectDescription)
	s.presenter.Explain(StateCollectDescription)
	description, err := s.loop.AskText(DescriptionQuestion)
	if err != nil {
		return nil, err
	}

	s.enter(StateCollectPrior)
	s.presenter.Explain(StateCollectPrior)
	prior, err := s.loop.Ask(PriorQuestion)
	if err != nil {
		return nil, err
	}

	s.enter(StateCollectLikelihood)
	s.presenter.Explain(StateCollectLikelihood)
	likelihood, err := s.loop.Ask(LikelihoodQuestion)
	if err != nil {
		return nil, err
	}

	s.enter(StateCollectEvidence)
	s.presenter.Explain(StateCollectEvidence)
	evidence, err := s.loop.Ask(EvidenceQuestion)
	if err != nil {
		return nil, err
	}

	s.enter(StateCompute)
	result := bayes.Calculate(description, prior, likelihood, evidence)
	logging.Debug("posterior computed",
		zap.String("description", description),
		zap.Stringer("posterior", result.Posterior))

	s.enter(StateRender)
	s.presenter.Report(result)

	s.enter(StateEnd)
	return result, nil
}
