package api

import "github.com/povarna/generative-ai-agents/skills-agent/internal/models"

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}

type SkillsResponse struct {
	Skills []models.SkillInfo `json:"skills" description:"Registered skill functions"`
}

type InvokeRequest struct {
	Variables map[string]string `json:"variables" description:"Template variables; 'input' carries the main argument"`
}

type InvokeResponse struct {
	Skill  string `json:"skill" description:"Qualified skill name"`
	Output string `json:"output" description:"Function output"`
}
