package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bayes-calc/internal/config"
	"bayes-calc/internal/errors"
)

// DefaultConfigFile is written by "config init" when no path is given
const DefaultConfigFile = "bayescalc.yaml"

var configForce bool

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// configInitCmd writes the effective configuration to a file
var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the current configuration to a file",
	Long: `Write the effective configuration (defaults, --config file, environment
and flags) to path, bayescalc.yaml by default. The format follows the file
extension: .yaml/.yml for YAML, anything else for JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := DefaultConfigFile
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		return errors.Config(fmt.Sprintf("%s already exists (use --force to overwrite)", path), nil)
	}

	if err := config.Get().Save(path); err != nil {
		return errors.Config("write config "+path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
