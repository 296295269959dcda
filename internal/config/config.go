// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"bayes-calc/internal/errors"
	"bayes-calc/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version"`

	// Output contains output configuration
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the default format for non-interactive results (cli, json, markdown)
	Format string `json:"format" yaml:"format" env:"BAYESCALC_FORMAT"`

	// NoColor disables terminal styling
	NoColor bool `json:"no_color" yaml:"no_color" env:"BAYESCALC_NO_COLOR"`

	// ShowIntro prints the onboarding banner and pipeline diagram
	ShowIntro bool `json:"show_intro" yaml:"show_intro"`

	// Quiet drops the explanatory prose around questions and the report
	Quiet bool `json:"quiet" yaml:"quiet" env:"BAYESCALC_QUIET"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			Format:    "cli",
			NoColor:   false,
			ShowIntro: true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file. YAML is used for .yaml and .yml
// files, JSON otherwise. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("read config "+path, err)
	}

	config := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, errors.Config("decode config "+path, err)
	}

	return config, nil
}

// ApplyEnv overrides fields from BAYESCALC_* environment variables.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return errors.Config("parse environment", err)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
