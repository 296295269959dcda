// Package cmd provides the CLI commands for bayescalc.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bayes-calc/internal/config"
	"bayes-calc/internal/logging"
)

// Version is the released version of bayescalc
const Version = "0.1.0"

var (
	cfgFile string
	verbose bool
	noColor bool
	noIntro bool
	quiet   bool
)

// rootCmd represents the base command; without a subcommand it runs calculate
var rootCmd = &cobra.Command{
	Use:   "bayescalc",
	Short: "Compute a posterior probability with Bayes' rule",
	Long: `bayescalc walks you through a prior probability, a likelihood and the
evidence, then computes the posterior probability with Bayes' rule:

  posterior = prior * likelihood / evidence

Percentages may be written with or without a trailing '%'.

Examples:
  bayescalc
  bayescalc calculate --no-intro
  bayescalc eval --prior 50 --likelihood 80% --evidence 60
  bayescalc eval --prior 1 --likelihood 99 --evidence 5 --format json`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runCalculate,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.json, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable terminal styling")
	rootCmd.PersistentFlags().BoolVar(&noIntro, "no-intro", false, "skip the welcome banner and diagram")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "omit explanatory text around questions and results")

	// Add subcommands
	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if noColor {
		cfg.Output.NoColor = true
	}
	if noIntro {
		cfg.Output.ShowIntro = false
	}
	if quiet {
		cfg.Output.Quiet = true
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bayescalc version %s\n", Version)
	},
}
