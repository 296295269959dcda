package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"bayes-calc/core/bayes"
	"bayes-calc/core/probability"
	"bayes-calc/core/prompt"
	"bayes-calc/internal/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakePresenter struct {
	intros    int
	explained []State
	reported  *bayes.CalculationResult
}

func (p *fakePresenter) Intro()                                 { p.intros++ }
func (p *fakePresenter) Explain(state State)                    { p.explained = append(p.explained, state) }
func (p *fakePresenter) Report(result *bayes.CalculationResult) { p.reported = result }

type fakeDisplay struct {
	prompts []string
	invalid int
}

func (d *fakeDisplay) Prompt(question string) { d.prompts = append(d.prompts, question) }
func (d *fakeDisplay) Invalid(string)         { d.invalid++ }

func TestRunCompletesSession(t *testing.T) {
	display := &fakeDisplay{}
	presenter := &fakePresenter{}
	source := prompt.NewLinesSource("  coin is biased ", "50", "oops", "80%", "60")
	s := New(prompt.NewLoop(source, display), presenter)
	require.Equal(t, StateStart, s.State())

	result, err := s.Run()
	require.NoError(t, err)

	assert.Equal(t, StateEnd, s.State())
	assert.Equal(t, "coin is biased", result.Description)
	assert.Equal(t, probability.Probability(0.5), result.Prior)
	assert.Equal(t, probability.Probability(0.8), result.Likelihood)
	assert.Equal(t, probability.Probability(0.6), result.Evidence)
	assert.InDelta(t, 0.6667, result.Posterior.Float64(), 5e-5)

	assert.Equal(t, 1, presenter.intros)
	assert.Equal(t, []State{
		StateCollectDescription,
		StateCollectPrior,
		StateCollectLikelihood,
		StateCollectEvidence,
	}, presenter.explained)
	assert.Same(t, result, presenter.reported)

	assert.Equal(t, []string{
		DescriptionQuestion,
		PriorQuestion,
		LikelihoodQuestion,
		LikelihoodQuestion,
		EvidenceQuestion,
	}, display.prompts)
	assert.Equal(t, 1, display.invalid)
}

func TestRunZeroEvidenceStillRenders(t *testing.T) {
	presenter := &fakePresenter{}
	source := prompt.NewLinesSource("", "50", "70", "0%")
	s := New(prompt.NewLoop(source, &fakeDisplay{}), presenter)

	result, err := s.Run()
	require.NoError(t, err)
	assert.False(t, result.Posterior.IsDefined())
	assert.Same(t, result, presenter.reported)
}

func TestRunStopsOnInputFailure(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		state State
	}{
		{"no description", nil, StateCollectDescription},
		{"no prior", []string{"desc"}, StateCollectPrior},
		{"no likelihood", []string{"desc", "10"}, StateCollectLikelihood},
		{"no evidence", []string{"desc", "10", "20", "bad"}, StateCollectEvidence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			presenter := &fakePresenter{}
			s := New(prompt.NewLoop(prompt.NewLinesSource(tt.lines...), &fakeDisplay{}), presenter)

			result, err := s.Run()
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsType(err, errors.TypeIO))
			assert.Equal(t, tt.state, s.State())
			assert.Nil(t, presenter.reported)
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "CollectEvidence", StateCollectEvidence.String())
	assert.Equal(t, "End", StateEnd.String())
	assert.Equal(t, "State(42)", State(42).String())
}
