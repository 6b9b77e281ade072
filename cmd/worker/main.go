package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/setup/logger"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/stream"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	cfg := setup.LoadConfig()
	appLogger := logger.New(cfg.LogLevel, true)
	log.Logger = appLogger

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	deps, err := setup.Wire(ctx, cfg, &appLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to load dependencies")
	}

	consumerName, _ := os.Hostname()
	if consumerName == "" {
		consumerName = "skills-worker"
	}
	streamCfg := stream.NewStreamConfig(cfg.RedisAddr, cfg.RedisPassword, consumerName)

	consumer, err := stream.NewStreamConsumer(ctx, streamCfg, deps.Executor, &appLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create stream consumer")
	}

	if err := consumer.Setup(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to setup consumer")
	}

	// Start blocks until ctx is cancelled
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("Consumer stopped with error")
	}

	if err := consumer.Stop(); err != nil {
		log.Error().Err(err).Msg("Failed to stop consumer")
	}
	log.Info().Msg("Skills worker stopped")
}
