// Package solver answers reasoning problems by self-consistency: several
// independent pipeline runs followed by a plurality vote.
package solver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/skill"
	"github.com/rs/zerolog"
)

const (
	DefaultTrials = 5

	// ProblemKey is the template variable carrying the problem text.
	ProblemKey = "problem"

	SolveFunction          = "prompt_engineering.solve_math_problem_v2"
	ChainOfThoughtFunction = "prompt_engineering.chain_of_thought_v2"
)

// Functions is the pipeline order used for every trial.
var Functions = []string{SolveFunction, ChainOfThoughtFunction}

var ErrInvalidTrials = errors.New("trials must be at least 1")

type Solver struct {
	pipeline   Pipeline
	aggregator Aggregator
	logger     *zerolog.Logger
}

func NewSolver(pipeline Pipeline, aggregator Aggregator, logger *zerolog.Logger) *Solver {
	return &Solver{
		pipeline:   pipeline,
		aggregator: aggregator,
		logger:     logger,
	}
}

// Solve runs trials independent pipeline invocations and votes on the integer
// answers. Any failing trial fails the whole run.
func (s *Solver) Solve(ctx context.Context, problem string, trials int) (models.SolveResult, error) {
	now := time.Now()
	result := models.SolveResult{Problem: problem}

	if trials < 1 {
		return result, ErrInvalidTrials
	}

	s.logger.Info().Int("trials", trials).Msg("starting self-consistency run")

	responses := make([]int, 0, trials)
	for trial := range trials {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		vars := skill.Variables{ProblemKey: problem}
		raw, err := s.pipeline.Run(ctx, vars)
		if err != nil {
			s.logger.Error().Err(err).Int("trial", trial).Msg("trial failed")
			return result, fmt.Errorf("trial %d: %w", trial, err)
		}

		answer, err := ParseAnswer(raw)
		if err != nil {
			s.logger.Error().Err(err).Int("trial", trial).Str("raw", raw).Msg("unparseable answer")
			return result, &models.ParseError{Trial: trial, Raw: raw, Err: err}
		}

		s.logger.Debug().Int("trial", trial).Int("answer", answer).Msg("trial completed")
		responses = append(responses, answer)
	}

	vote, err := s.aggregator.Aggregate(responses)
	if err != nil {
		return result, err
	}

	result.Responses = responses
	result.FinalAnswer = vote.Answer
	result.Votes = vote.Count
	result.Duration = time.Since(now)

	s.logger.Info().
		Ints("responses", responses).
		Int("final_answer", vote.Answer).
		Dur("duration", result.Duration).
		Msg("self-consistency run complete")
	return result, nil
}

// ParseAnswer reads a decimal integer, ignoring surrounding whitespace.
func ParseAnswer(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}
