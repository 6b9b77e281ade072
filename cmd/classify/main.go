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

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: classify <image url>...")
		os.Exit(1)
	}

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
	if deps.Classifier == nil {
		log.Fatal().Msg("INFERENCE_URL is required for classification")
	}

	failed := false
	for _, url := range os.Args[1:] {
		label, err := deps.Classifier.Classify(ctx, url)
		if err != nil {
			log.Error().Err(err).Str("url", url).Msg("Classification failed")
			failed = true
			continue
		}
		fmt.Printf("%s: %s\n", url, label)
	}
	if failed {
		os.Exit(1)
	}
}
