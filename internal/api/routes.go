package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/solve").
			To(handler.Solve).
			Doc("Solve a reasoning problem by self-consistency voting").
			Metadata(restfulspec.KeyOpenAPITags, []string{"solve"}).
			Reads(models.SolveRequest{}).
			Writes(models.SolveResult{}).
			Returns(200, "OK", models.SolveResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(502, "Upstream Failure", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/classify").
			To(handler.Classify).
			Doc("Classify the image behind a URL").
			Metadata(restfulspec.KeyOpenAPITags, []string{"classify"}).
			Reads(models.ClassifyRequest{}).
			Writes(models.Prediction{}).
			Returns(200, "OK", models.Prediction{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(422, "Image Not Fetchable Or Decodable", middleware.ErrorResponse{}).
			Returns(502, "Upstream Failure", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/skills").
			To(handler.ListSkills).
			Doc("List registered skill functions").
			Metadata(restfulspec.KeyOpenAPITags, []string{"skills"}).
			Writes(SkillsResponse{}).
			Returns(200, "OK", SkillsResponse{}))

	ws.
		Route(ws.POST("/skills/{skill_name}/invoke").
			To(handler.InvokeSkill).
			Doc("Invoke a single skill function").
			Metadata(restfulspec.KeyOpenAPITags, []string{"skills"}).
			Param(ws.PathParameter("skill_name", "Qualified skill name (plugin.function)").DataType("string")).
			Reads(InvokeRequest{}).
			Writes(InvokeResponse{}).
			Returns(200, "OK", InvokeResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Skill Not Found", middleware.ErrorResponse{}).
			Returns(502, "Upstream Failure", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
