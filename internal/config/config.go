package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file commands look for in the working directory.
const FileName = "lascontrol.yaml"

// Config represents the top-level lascontrol.yaml configuration.
type Config struct {
	Budget BudgetConfig `yaml:"budget"`
	Charts ChartsConfig `yaml:"charts"`
}

// BudgetConfig controls how the spreadsheet is read.
type BudgetConfig struct {
	Sheet string `yaml:"sheet"` // sheet name inside the workbook
	Year  int    `yaml:"year"`  // year assigned to loaded records
}

// ChartsConfig controls where rendered figures go.
type ChartsConfig struct {
	OutputDir string `yaml:"output_dir"`
}

// Load reads a lascontrol.yaml file from disk.
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
func Default(year int) *Config {
	return &Config{
		Budget: BudgetConfig{
			Sheet: "ORÇAMENTO PESSOAL",
			Year:  year,
		},
		Charts: ChartsConfig{
			OutputDir: "charts",
		},
	}
}
