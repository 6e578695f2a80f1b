// internal/config/config.go
package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

const DefaultPath = "pdfscale.yaml"

type Config struct {
	// DefaultFormat is used when no -format flag is given.
	DefaultFormat string `yaml:"default_format"`
	// OutputSuffix is inserted before the ".pdf" extension of the
	// derived output path.
	OutputSuffix string `yaml:"output_suffix"`
	// ThresholdPt is the per-axis slack in points below which a page
	// is considered already at target size and left untouched.
	ThresholdPt float64 `yaml:"threshold_pt"`
}

func Default() *Config {
	return &Config{
		OutputSuffix: "-scaled",
		ThresholdPt:  1.0,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.OutputSuffix == "" {
		cfg.OutputSuffix = "-scaled"
	}
	if cfg.ThresholdPt <= 0 {
		cfg.ThresholdPt = 1.0
	}

	return cfg, nil
}
