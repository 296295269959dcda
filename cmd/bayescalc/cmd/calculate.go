package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bayes-calc/core/prompt"
	"bayes-calc/core/session"
	"bayes-calc/core/ui"
	"bayes-calc/internal/config"
	"bayes-calc/internal/logging"
)

// calculateCmd runs the interactive session
var calculateCmd = &cobra.Command{
	Use:     "calculate",
	Aliases: []string{"calc"},
	Short:   "Interactively enter prior, likelihood and evidence",
	Long: `Ask for a description and three percentages on standard input, then print
the results table and the posterior probability.

Invalid percentages are rejected and asked for again. Closing standard input
before all answers are given aborts with exit status 1.`,
	Args: cobra.NoArgs,
	RunE: runCalculate,
}

func runCalculate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	w := ui.NewWriter(cmd.OutOrStdout(), cfg.Output.NoColor)
	if cfg.Output.Quiet {
		w.SetVerbosity(0)
	}
	presenter := ui.NewPresenter(w, cfg.Output.ShowIntro)
	loop := prompt.NewLoop(prompt.NewReaderSource(cmd.InOrStdin()), presenter)
	s := session.New(loop, presenter)

	result, err := s.Run()
	if err != nil {
		logging.Error("calculation aborted",
			zap.Stringer("state", s.State()),
			zap.Error(err))
		return err
	}

	logging.Info("calculation complete",
		zap.String("description", result.Description),
		zap.Stringer("posterior", result.Posterior))
	return nil
}
