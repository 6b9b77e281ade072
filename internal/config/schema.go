package config

// FunctionConfig describes one prompt template of the skill store (config.yaml
// next to prompt.tmpl).
type FunctionConfig struct {
	Description    string       `yaml:"description"`
	InputVariables []string     `yaml:"input_variables"`
	Model          *ModelConfig `yaml:"model"`
}

// ModelConfig holds completion parameters for a prompt template.
type ModelConfig struct {
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	Retry       bool    `yaml:"retry"`
}
