package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/skill"
)

// SolveInput is the MCP tool input schema for self-consistency solving.
type SolveInput struct {
	Problem string `json:"problem" jsonschema:"natural-language reasoning problem with an integer answer"`
	Trials  int    `json:"trials,omitempty" jsonschema:"number of independent trials to vote over (default: 5)"`
}

// ClassifyInput is the MCP tool input schema for image classification.
type ClassifyInput struct {
	URL string `json:"url" jsonschema:"http(s) URL of the image to classify"`
}

// InvokeSkillInput is the MCP tool input schema for a single skill call.
type InvokeSkillInput struct {
	Skill     string            `json:"skill" jsonschema:"qualified skill name, e.g. prompt_engineering.solve_math_problem_v2"`
	Variables map[string]string `json:"variables,omitempty" jsonschema:"template variables; 'input' carries the main argument"`
}

type InvokeSkillOutput struct {
	Skill  string `json:"skill"`
	Output string `json:"output"`
}

// NewSolveHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewSolveHandler(exec *executor.Executor) func(context.Context, *mcp.CallToolRequest, SolveInput) (*mcp.CallToolResult, models.SolveResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SolveInput) (*mcp.CallToolResult, models.SolveResult, error) {
		result, err := exec.Solve(ctx, models.SolveRequest{Problem: input.Problem, Trials: input.Trials})
		return nil, result, err
	}
}

// NewClassifyHandler returns a tool handler that classifies one image URL.
func NewClassifyHandler(exec *executor.Executor) func(context.Context, *mcp.CallToolRequest, ClassifyInput) (*mcp.CallToolResult, models.Prediction, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ClassifyInput) (*mcp.CallToolResult, models.Prediction, error) {
		prediction, err := exec.Classify(ctx, models.ClassifyRequest{URL: input.URL})
		return nil, prediction, err
	}
}

// NewInvokeSkillHandler returns a tool handler for any registered function.
func NewInvokeSkillHandler(skillExec *executor.SkillExecutor) func(context.Context, *mcp.CallToolRequest, InvokeSkillInput) (*mcp.CallToolResult, InvokeSkillOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input InvokeSkillInput) (*mcp.CallToolResult, InvokeSkillOutput, error) {
		output, err := skillExec.Invoke(ctx, input.Skill, skill.Variables(input.Variables))
		return nil, InvokeSkillOutput{Skill: input.Skill, Output: output}, err
	}
}
