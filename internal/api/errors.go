package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/povarna/generative-ai-agents/skills-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/skill"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/solver"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var (
		fetchErr    *models.FetchError
		decodeErr   *models.DecodeError
		parseErr    *models.ParseError
		upstreamErr *models.UpstreamError
	)

	switch {
	case errors.As(err, &fetchErr), errors.As(err, &decodeErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &parseErr), errors.As(err, &upstreamErr):
		return http.StatusBadGateway
	case errors.Is(err, solver.ErrInvalidTrials),
		errors.Is(err, executor.ErrEmptyProblem),
		errors.Is(err, executor.ErrEmptyURL),
		errors.Is(err, skill.ErrInvalidVariables):
		return http.StatusBadRequest
	case errors.Is(err, executor.ErrSkillNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
