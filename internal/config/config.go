package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "finsum.yaml"

// Config represents the top-level finsum.yaml configuration.
type Config struct {
	Ledger string       `yaml:"ledger"`
	Budget string       `yaml:"budget"`
	Output OutputConfig `yaml:"output"`
}

// OutputConfig holds default output paths for the file-writing commands.
type OutputConfig struct {
	Summary string `yaml:"summary"`
	Export  string `yaml:"export"`
}

// Load reads a finsum.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Ledger: "transactions.csv",
		Budget: "budget.yaml",
		Output: OutputConfig{
			Summary: "financial_summary.txt",
			Export:  "grouped_transactions.csv",
		},
	}
}
