package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bayes-calc/internal/config"
	"bayes-calc/internal/errors"
)

// resetFlags restores every flag in the tree to its default so one test's
// flags never leak into the next.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { config.Set(config.Default()) })

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEvaluateFlags(t *testing.T) {
	result, err := evaluateFlags("  flu  ", "50%", "80", " 60 ")
	require.NoError(t, err)
	assert.Equal(t, "flu", result.Description)
	assert.InDelta(t, 0.6667, result.Posterior.Float64(), 5e-5)
}

func TestEvaluateFlagsRejectsInvalid(t *testing.T) {
	_, err := evaluateFlags("", "50", "101%", "60")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
	assert.Contains(t, err.Error(), "--likelihood")
}

func TestCalculateCommand(t *testing.T) {
	out, err := execute(t, "coin\nabc\n50\n80%\n60\n", "calculate", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "Invalid input: Please enter a valid percentage between 0% and 100%.")
	assert.Contains(t, out, "| Posterior   | 66.67% |")
	assert.Contains(t, out, "the probability for 'coin' is 66.67%")
}

func TestCalculateCommandInputClosed(t *testing.T) {
	_, err := execute(t, "coin\n50\n", "calculate", "--no-color")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeIO))
}

func TestEvalCommandJSON(t *testing.T) {
	out, err := execute(t, "", "eval", "-p", "50", "-l", "70", "-e", "0", "-D", "rain", "--format", "json")
	require.NoError(t, err)

	assert.Contains(t, out, `"description": "rain"`)
	assert.Contains(t, out, `"posterior": null`)
}

func TestEvalCommandUnknownFormat(t *testing.T) {
	_, err := execute(t, "", "eval", "-p", "50", "-l", "70", "-e", "10", "--format", "html")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "bayescalc version "+Version+"\n", out)
}

func TestEvalFlagsDoNotLeakBetweenRuns(t *testing.T) {
	_, err := execute(t, "", "eval", "-p", "50", "-l", "50", "-e", "50", "-D", "first", "--format", "json")
	require.NoError(t, err)

	out, err := execute(t, "", "eval", "-p", "50", "-l", "50", "-e", "50", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "| Posterior   | 50.00% |")
	assert.Contains(t, out, "the probability for '' is 50.00%")
}

func TestCalculateCommandQuiet(t *testing.T) {
	out, err := execute(t, "coin\n50\n80\n60\n", "--quiet", "--no-intro", "--no-color")
	require.NoError(t, err)

	assert.NotContains(t, out, "Welcome")
	assert.NotContains(t, out, "Prior probability represents")
	assert.NotContains(t, out, "The table shows")
	assert.Contains(t, out, "| Posterior   | 66.67% |")
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bayescalc.yaml")

	out, err := execute(t, "", "config", "init", path, "--no-color")
	require.NoError(t, err)
	assert.Equal(t, "Wrote "+path+"\n", out)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, loaded.Output.NoColor)

	_, err = execute(t, "", "config", "init", path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))

	_, err = execute(t, "", "config", "init", path, "--force")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "no_color: false")
}
