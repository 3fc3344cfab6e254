package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// configFile is looked up in the working directory. It is optional: without
// it every setting falls back to its default and can still be overridden by
// flags.
const configFile = "stockstat.yaml"

// Config carries the CLI defaults.
type Config struct {
	Currency   string `yaml:"currency"`    // currency of all monetary columns
	TradesFile string `yaml:"trades_file"` // default trades export to read
	TradesPath string `yaml:"trades_path"` // JSONPath to the record array in JSON exports
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Currency:   "CNY",
		TradesFile: "trades.csv",
		TradesPath: "$[*]",
	}
}

// LoadConfig reads the optional config file, filling missing fields with
// defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configFile)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("cannot read %s: %w", configFile, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse %s: %w", configFile, err)
	}
	if cfg.Currency == "" {
		cfg.Currency = "CNY"
	}
	if cfg.TradesFile == "" {
		cfg.TradesFile = "trades.csv"
	}
	if cfg.TradesPath == "" {
		cfg.TradesPath = "$[*]"
	}
	return cfg, nil
}
