package executor

import (
	"context"

	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/skill"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// Solver answers a reasoning problem by voting over several trials
type Solver interface {
	Solve(ctx context.Context, problem string, trials int) (models.SolveResult, error)
}

// Classifier labels the image behind a URL
type Classifier interface {
	Predict(ctx context.Context, url string) (models.Prediction, error)
}

// FunctionRegistry resolves registered skill functions by qualified name
type FunctionRegistry interface {
	Get(qualifiedName string) (skill.Function, error)
	List() []skill.Function
}
