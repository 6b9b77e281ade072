package solver

import (
	"context"

	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/skill"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// Pipeline produces the raw answer text of one trial.
type Pipeline interface {
	Run(ctx context.Context, vars skill.Variables) (string, error)
}

type Aggregator interface {
	Aggregate(responses []int) (models.Vote, error)
}
