package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/skill"
	"github.com/rs/zerolog"
)

var ErrSkillNotFound = errors.New("skill not found")

// SkillExecutor invokes a single registered function by name.
type SkillExecutor struct {
	functions FunctionRegistry
	logger    *zerolog.Logger
}

func NewSkillExecutor(functions FunctionRegistry, logger *zerolog.Logger) *SkillExecutor {
	return &SkillExecutor{
		functions: functions,
		logger:    logger,
	}
}

func (e *SkillExecutor) Invoke(ctx context.Context, name string, vars skill.Variables) (string, error) {
	fn, err := e.functions.Get(name)
	if err != nil {
		e.logger.Error().Err(err).Str("skill", name).Msg("Skill not found")
		return "", fmt.Errorf("%w: %s", ErrSkillNotFound, name)
	}

	e.logger.Info().Str("skill", name).Msg("invoking skill")
	return fn.Invoke(ctx, vars)
}

func (e *SkillExecutor) List() []models.SkillInfo {
	functions := e.functions.List()
	skills := make([]models.SkillInfo, 0, len(functions))
	for _, fn := range functions {
		skills = append(skills, models.SkillInfo{
			Name:        skill.QualifiedName(fn.Plugin(), fn.Name()),
			Description: fn.Description(),
		})
	}
	return skills
}
