package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
	"github.com/rs/zerolog"
)

var (
	ErrEmptyProblem   = errors.New("problem must not be empty")
	ErrEmptyURL       = errors.New("url must not be empty")
	ErrUnknownJobType = errors.New("unknown job type")
)

type Executor struct {
	solver        Solver
	classifier    Classifier
	defaultTrials int
	logger        *zerolog.Logger
}

func NewExecutor(
	solver Solver,
	classifier Classifier,
	defaultTrials int,
	logger *zerolog.Logger,
) *Executor {
	return &Executor{
		solver:        solver,
		classifier:    classifier,
		defaultTrials: defaultTrials,
		logger:        logger,
	}
}

// Solve runs the self-consistency loop. Zero trials selects the configured default.
func (e *Executor) Solve(ctx context.Context, req models.SolveRequest) (models.SolveResult, error) {
	if strings.TrimSpace(req.Problem) == "" {
		return models.SolveResult{}, ErrEmptyProblem
	}

	trials := req.Trials
	if trials == 0 {
		trials = e.defaultTrials
	}

	return e.solver.Solve(ctx, req.Problem, trials)
}

func (e *Executor) Classify(ctx context.Context, req models.ClassifyRequest) (models.Prediction, error) {
	if e.classifier == nil {
		return models.Prediction{}, &models.UpstreamError{Service: "inference", Err: errors.New("image classifier is not configured")}
	}
	if strings.TrimSpace(req.URL) == "" {
		return models.Prediction{}, ErrEmptyURL
	}
	return e.classifier.Predict(ctx, req.URL)
}

// Execute runs a queued job. Failures are reported in the result.
func (e *Executor) Execute(ctx context.Context, job models.JobRequest) models.JobResult {
	e.logger.Info().Str("eventID", job.EventID).Str("type", string(job.Type)).Msg("starting job")

	result := models.JobResult{
		EventID: job.EventID,
		Type:    job.Type,
	}

	var err error
	switch job.Type {
	case models.JobTypeSolve:
		var solved models.SolveResult
		solved, err = e.Solve(ctx, models.SolveRequest{Problem: job.Problem, Trials: job.Trials})
		if err == nil {
			result.Solve = &solved
		}
	case models.JobTypeClassify:
		var prediction models.Prediction
		prediction, err = e.Classify(ctx, models.ClassifyRequest{URL: job.URL})
		if err == nil {
			result.Prediction = &prediction
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownJobType, job.Type)
	}

	result.FinishedAt = time.Now().UTC()
	if err != nil {
		e.logger.Error().Err(err).Str("eventID", job.EventID).Msg("job failed")
		result.Status = models.JobStatusFailed
		result.Error = err.Error()
		return result
	}

	result.Status = models.JobStatusDone
	e.logger.Info().Str("eventID", job.EventID).Msg("job complete")
	return result
}
