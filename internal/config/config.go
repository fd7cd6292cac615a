package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = "tally.yaml"

// Config represents the top-level tally.yaml configuration.
type Config struct {
	Export  ExportConfig  `yaml:"export"`
	Display DisplayConfig `yaml:"display"`
}

// ExportConfig controls where and what the export command writes.
type ExportConfig struct {
	Dir     string   `yaml:"dir"`
	Formats []string `yaml:"formats,omitempty"` // "json", "csv"
}

// DisplayConfig controls summary rendering.
type DisplayConfig struct {
	Currency string `yaml:"currency"`
	Title    string `yaml:"title"`
}

// Load reads a tally.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
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

// Validate rejects export formats other than json and csv.
func (c *Config) Validate() error {
	for _, f := range c.Export.Formats {
		if f != "json" && f != "csv" {
			return fmt.Errorf("unknown export format %q", f)
		}
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			Dir:     "exports",
			Formats: []string{"json", "csv"},
		},
		Display: DisplayConfig{
			Currency: "$",
			Title:    "Monthly Finance Tracker",
		},
	}
}
