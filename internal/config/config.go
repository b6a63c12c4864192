package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Steps []*StepConfig `yaml:"steps"`
}

type StepConfig struct {
	Type   string         `yaml:"type"`
	Value  string         `yaml:"value"`
	Count  int            `yaml:"count"`
	Params map[string]any `yaml:"params"`
}

func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	for i, step := range cfg.Steps {
		if step == nil || step.Type == "" {
			return nil, fmt.Errorf("parse config: step %d has no type", i+1)
		}
	}
	return cfg, nil
}

// FromTypes builds a parameterless step list, as given by --step flags.
func FromTypes(types []string) *Config {
	cfg := &Config{}
	for _, t := range types {
		if t == "" {
			continue
		}
		cfg.Steps = append(cfg.Steps, &StepConfig{Type: t})
	}
	return cfg
}
