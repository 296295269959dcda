package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bayes-calc/internal/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bayescalc.yaml")
	content := "output:\n  format: json\n  no_color: true\nlogging:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.NoColor)
	assert.True(t, cfg.Output.ShowIntro, "unset fields keep defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bayescalc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output":{"format":"markdown"}}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Output.Format)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bayescalc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output":`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("BAYESCALC_FORMAT", "json")
	t.Setenv("BAYESCALC_NO_COLOR", "true")
	t.Setenv("BAYESCALC_LOG_LEVEL", "error")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.NoColor)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestSaveRoundTripYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cfg.yml")
	cfg := Default()
	cfg.Output.Format = "markdown"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
