package mcpadapter

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/executor"
)

const (
	ServerName    = "skills-agent"
	ServerVersion = "1.0.0"
)

func NewServer(exec *executor.Executor, skillExec *executor.SkillExecutor) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "solve_problem",
		Description: "Solve a reasoning problem with an integer answer by running several chain-of-thought trials and taking the plurality vote",
	}, NewSolveHandler(exec))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "classify_image",
		Description: "Takes a url as an input and classifies the image",
	}, NewClassifyHandler(exec))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "invoke_skill",
		Description: "Invoke a single registered skill function by qualified name",
	}, NewInvokeSkillHandler(skillExec))

	return server
}
