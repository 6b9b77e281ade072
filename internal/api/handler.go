package api

import (
	"context"
	"net/http"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/skill"
	"github.com/rs/zerolog"
)

const Version = "1.0.0"

type Handler struct {
	executor       *executor.Executor
	skillExecutor  *executor.SkillExecutor
	requestTimeout time.Duration
	logger         *zerolog.Logger
}

func NewHandler(
	executor *executor.Executor,
	skillExecutor *executor.SkillExecutor,
	requestTimeout time.Duration,
	logger *zerolog.Logger,
) *Handler {
	return &Handler{
		executor:       executor,
		skillExecutor:  skillExecutor,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}

// POST /api/v1/solve
// Body: SolveRequest
// Returns: SolveResult
func (h *Handler) Solve(req *restful.Request, resp *restful.Response) {
	var solveRequest models.SolveRequest
	if err := req.ReadEntity(&solveRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(h.logger, resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Int("trials", solveRequest.Trials).
		Msg("Start solve")

	ctx, cancel := h.requestContext(req)
	defer cancel()

	result, err := h.executor.Solve(ctx, solveRequest)
	if err != nil {
		h.logger.Error().Err(err).Msg("Solve failed")
		middleware.HandleError(h.logger, resp, err, statusFor(err))
		return
	}

	h.logger.Info().
		Ints("responses", result.Responses).
		Int("final_answer", result.FinalAnswer).
		Msg("Solve complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// POST /api/v1/classify
// Body: ClassifyRequest
// Returns: Prediction
func (h *Handler) Classify(req *restful.Request, resp *restful.Response) {
	var classifyRequest models.ClassifyRequest
	if err := req.ReadEntity(&classifyRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(h.logger, resp, err, http.StatusBadRequest)
		return
	}

	ctx, cancel := h.requestContext(req)
	defer cancel()

	prediction, err := h.executor.Classify(ctx, classifyRequest)
	if err != nil {
		h.logger.Error().Err(err).Str("url", classifyRequest.URL).Msg("Classification failed")
		middleware.HandleError(h.logger, resp, err, statusFor(err))
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, prediction)
}

// GET /api/v1/skills
func (h *Handler) ListSkills(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, SkillsResponse{Skills: h.skillExecutor.List()})
}

// POST /api/v1/skills/{skill_name}/invoke
func (h *Handler) InvokeSkill(req *restful.Request, resp *restful.Response) {
	skillName := req.PathParameter("skill_name")

	var invokeRequest InvokeRequest
	if err := req.ReadEntity(&invokeRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(h.logger, resp, err, http.StatusBadRequest)
		return
	}

	ctx, cancel := h.requestContext(req)
	defer cancel()

	output, err := h.skillExecutor.Invoke(ctx, skillName, skill.Variables(invokeRequest.Variables))
	if err != nil {
		h.logger.Error().Err(err).Str("skill", skillName).Msg("Skill invocation failed")
		middleware.HandleError(h.logger, resp, err, statusFor(err))
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, InvokeResponse{Skill: skillName, Output: output})
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: Version,
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

func (h *Handler) requestContext(req *restful.Request) (context.Context, context.CancelFunc) {
	if h.requestTimeout <= 0 {
		return context.WithCancel(req.Request.Context())
	}
	return context.WithTimeout(req.Request.Context(), h.requestTimeout)
}
