package config

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

const (
	DefaultMaxTokens   = 256
	DefaultTemperature = 0.0
	maxTemperature     = 2.0
)

// LoadFunctionConfig reads a function config file. A missing file yields the
// defaults so a template directory only needs prompt.tmpl.
func LoadFunctionConfig(path string) (*FunctionConfig, error) {
	var cfg FunctionConfig

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *FunctionConfig) {
	if cfg.Model == nil {
		cfg.Model = &ModelConfig{Temperature: DefaultTemperature}
	}
	if cfg.Model.MaxTokens == 0 {
		cfg.Model.MaxTokens = DefaultMaxTokens
	}
}

func (c *FunctionConfig) Validate() error {
	if c.Model == nil {
		return errors.New("missing model config")
	}
	if c.Model.MaxTokens < 0 {
		return fmt.Errorf("negative max_tokens: %d", c.Model.MaxTokens)
	}
	if c.Model.Temperature < 0 || c.Model.Temperature > maxTemperature {
		return fmt.Errorf("invalid temperature %.2f: must be within [0, %.1f]", c.Model.Temperature, maxTemperature)
	}

	seen := make(map[string]bool, len(c.InputVariables))
	for _, name := range c.InputVariables {
		if name == "" {
			return errors.New("empty input variable name")
		}
		if seen[name] {
			return fmt.Errorf("duplicate input variable: %s", name)
		}
		seen[name] = true
	}

	return nil
}
