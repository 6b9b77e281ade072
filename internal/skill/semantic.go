package skill

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/povarna/generative-ai-agents/skills-agent/internal/config"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/llm"
	"github.com/rs/zerolog"
)

// ErrInvalidVariables reports variables that do not satisfy the prompt template.
var ErrInvalidVariables = errors.New("invalid variables")

// SemanticFunction renders a prompt template and sends it to the completion model.
type SemanticFunction struct {
	plugin         string
	name           string
	description    string
	inputVariables []string
	promptTemplate *template.Template
	modelConfig    config.ModelConfig
	llmClient      llm.LLMClient
	logger         *zerolog.Logger
}

func NewSemanticFunction(
	plugin string,
	name string,
	prompt string,
	fnCfg config.FunctionConfig,
	llmClient llm.LLMClient,
	logger *zerolog.Logger,
) (*SemanticFunction, error) {
	tmpl, err := template.New(QualifiedName(plugin, name)).Option("missingkey=error").Parse(prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template for %s: %w", QualifiedName(plugin, name), err)
	}

	if fnCfg.Model == nil {
		return nil, fmt.Errorf("function %s has nil model config (should be populated by config loader)", QualifiedName(plugin, name))
	}

	return &SemanticFunction{
		plugin:         plugin,
		name:           name,
		description:    fnCfg.Description,
		inputVariables: fnCfg.InputVariables,
		promptTemplate: tmpl,
		modelConfig:    *fnCfg.Model,
		llmClient:      llmClient,
		logger:         logger,
	}, nil
}

func (f *SemanticFunction) Name() string        { return f.name }
func (f *SemanticFunction) Plugin() string      { return f.plugin }
func (f *SemanticFunction) Description() string { return f.description }

// Invoke renders the prompt with vars and returns the trimmed completion text.
func (f *SemanticFunction) Invoke(ctx context.Context, vars Variables) (string, error) {
	now := time.Now()
	fn := QualifiedName(f.plugin, f.name)

	for _, name := range f.inputVariables {
		if _, ok := vars[name]; !ok {
			return "", fmt.Errorf("%s: %w: missing input variable %q", fn, ErrInvalidVariables, name)
		}
	}

	prompt, err := f.buildPrompt(vars)
	if err != nil {
		return "", fmt.Errorf("%s: %w", fn, err)
	}

	request := llm.LLMRequest{
		Prompt:      prompt,
		MaxTokens:   f.modelConfig.MaxTokens,
		Temperature: f.modelConfig.Temperature,
	}

	var resp *llm.LLMResponse
	if f.modelConfig.Retry {
		resp, err = f.llmClient.InvokeModelWithRetry(ctx, request)
	} else {
		resp, err = f.llmClient.InvokeModel(ctx, request)
	}
	if err != nil {
		f.logger.Error().
			Err(err).
			Str("function", fn).
			Msg("LLM call failed")
		return "", fmt.Errorf("%s: %w", fn, err)
	}

	f.logger.Debug().
		Str("function", fn).
		Str("stop_reason", resp.StopReason).
		Dur("duration", time.Since(now)).
		Msg("function completed")

	return strings.TrimSpace(resp.Content), nil
}

func (f *SemanticFunction) buildPrompt(vars Variables) (string, error) {
	var buf bytes.Buffer
	if err := f.promptTemplate.Execute(&buf, map[string]string(vars)); err != nil {
		return "", fmt.Errorf("%w: template execution failed: %w", ErrInvalidVariables, err)
	}
	return buf.String(), nil
}
