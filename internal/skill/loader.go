package skill

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/povarna/generative-ai-agents/skills-agent/internal/config"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/llm"
	"github.com/rs/zerolog"
)

const (
	PromptFileName = "prompt.tmpl"
	ConfigFileName = "config.yaml"
)

// PromptLoader builds semantic functions from a template directory.
type PromptLoader struct {
	llmClient llm.LLMClient
	logger    *zerolog.Logger
}

func NewPromptLoader(llmClient llm.LLMClient, logger *zerolog.Logger) *PromptLoader {
	return &PromptLoader{
		llmClient: llmClient,
		logger:    logger,
	}
}

// ImportPromptDirectory loads <root>/<plugin>/<function>/prompt.tmpl for every
// function directory of the plugin, sorted by name.
func (l *PromptLoader) ImportPromptDirectory(root, plugin string) ([]Function, error) {
	pluginDir := filepath.Join(root, plugin)
	entries, err := os.ReadDir(pluginDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read plugin directory %s: %w", pluginDir, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var functions []Function
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		fnDir := filepath.Join(pluginDir, entry.Name())
		prompt, err := os.ReadFile(filepath.Join(fnDir, PromptFileName))
		if errors.Is(err, os.ErrNotExist) {
			l.logger.Warn().
				Str("plugin", plugin).
				Str("dir", fnDir).
				Msg("no prompt template in directory, skipping")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read prompt for %s: %w", QualifiedName(plugin, entry.Name()), err)
		}

		fnCfg, err := config.LoadFunctionConfig(filepath.Join(fnDir, ConfigFileName))
		if err != nil {
			return nil, err
		}

		fn, err := NewSemanticFunction(plugin, entry.Name(), string(prompt), *fnCfg, l.llmClient, l.logger)
		if err != nil {
			return nil, err
		}

		functions = append(functions, fn)

		l.logger.Info().
			Str("function", QualifiedName(plugin, entry.Name())).
			Int("max_tokens", fnCfg.Model.MaxTokens).
			Float64("temperature", fnCfg.Model.Temperature).
			Bool("retry", fnCfg.Model.Retry).
			Msg("prompt function loaded")
	}

	if len(functions) == 0 {
		return nil, fmt.Errorf("no prompt templates found in %s", pluginDir)
	}

	return functions, nil
}
