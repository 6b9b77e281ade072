package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/setup/logger"
	"github.com/rs/zerolog/log"
)

const problem = "When I was 6 my sister was half my age. Now I'm 70. How old is my sister?"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	cfg := setup.LoadConfig()
	appLogger := logger.New(cfg.LogLevel, true)
	log.Logger = appLogger

	ctx := context.Background()
	deps, err := setup.Wire(ctx, cfg, &appLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to load dependencies")
	}

	result, err := deps.Solver.Solve(ctx, problem, cfg.Trials)
	if err != nil {
		log.Error().Err(err).Msg("Solve failed")
		os.Exit(1)
	}

	fmt.Println("Responses:")
	fmt.Println(result.Responses)
	fmt.Printf("Final answer: %d\n", result.FinalAnswer)
}
