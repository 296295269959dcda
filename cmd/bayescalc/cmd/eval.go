package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bayes-calc/core/bayes"
	"bayes-calc/core/output"
	"bayes-calc/core/probability"
	"bayes-calc/internal/config"
	"bayes-calc/internal/logging"
)

var (
	evalPrior       string
	evalLikelihood  string
	evalEvidence    string
	evalDescription string
	evalFormat      string
)

// evalCmd computes a posterior from flags without prompting
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Compute a posterior from flags",
	Long: `Compute the posterior from percentages given as flags. Values are validated
the same way as interactive answers; an invalid value is an error.

Examples:
  bayescalc eval --prior 50 --likelihood 80 --evidence 60
  bayescalc eval -p 2% -l 90% -e 10% -D "positive test" --format markdown`,
	Args: cobra.NoArgs,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVarP(&evalPrior, "prior", "p", "", "prior probability in percent")
	evalCmd.Flags().StringVarP(&evalLikelihood, "likelihood", "l", "", "likelihood in percent")
	evalCmd.Flags().StringVarP(&evalEvidence, "evidence", "e", "", "evidence in percent")
	evalCmd.Flags().StringVarP(&evalDescription, "description", "D", "", "label for the scenario")
	evalCmd.Flags().StringVarP(&evalFormat, "format", "f", "", "output format (cli, json, markdown)")
	_ = evalCmd.MarkFlagRequired("prior")
	_ = evalCmd.MarkFlagRequired("likelihood")
	_ = evalCmd.MarkFlagRequired("evidence")
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	format := evalFormat
	if format == "" {
		format = cfg.Output.Format
	}
	formatter, err := output.NewRegistry(cfg.Output.NoColor).Get(format)
	if err != nil {
		return err
	}

	result, err := evaluateFlags(evalDescription, evalPrior, evalLikelihood, evalEvidence)
	if err != nil {
		logging.Warn("rejected flag value", zap.Error(err))
		return err
	}

	logging.Debug("posterior computed", zap.Stringer("posterior", result.Posterior))
	return formatter.Render(cmd.OutOrStdout(), result)
}

// evaluateFlags parses the three percentages and computes the posterior.
func evaluateFlags(description, prior, likelihood, evidence string) (*bayes.CalculationResult, error) {
	inputs := []struct {
		flag string
		text string
	}{
		{"prior", prior},
		{"likelihood", likelihood},
		{"evidence", evidence},
	}

	values := make([]probability.Probability, len(inputs))
	for i, in := range inputs {
		p, err := probability.Parse(in.text)
		if err != nil {
			return nil, fmt.Errorf("--%s %q: %w", in.flag, in.text, err)
		}
		values[i] = p
	}

	return bayes.Calculate(strings.TrimSpace(description), values[0], values[1], values[2]), nil
}
