package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/setup/logger"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/stream"
	red "github.com/povarna/generative-ai-agents/skills-agent/internal/stream/redis"
	"github.com/rs/zerolog/log"
)

func main() {
	data := flag.String("d", "", "Inline JSON JobRequest")
	problem := flag.String("problem", "", "Enqueue a solve job for this problem")
	url := flag.String("url", "", "Enqueue a classify job for this image URL")
	trials := flag.Int("trials", 0, "Trials for a solve job (0 uses the worker default)")
	streamName := flag.String("stream", stream.DefaultRequestStream, "Stream name")
	flag.Parse()

	log.Logger = logger.New("info", true)

	job, err := buildJob(*data, *problem, *url, *trials)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Usage: producer -d '<json>' | -problem '<text>' | -url '<image url>'")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(job, *streamName); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

func buildJob(data, problem, url string, trials int) (models.JobRequest, error) {
	switch {
	case data != "":
		var job models.JobRequest
		if err := json.Unmarshal([]byte(data), &job); err != nil {
			return models.JobRequest{}, err
		}
		return job, nil
	case problem != "":
		return models.JobRequest{Type: models.JobTypeSolve, Problem: problem, Trials: trials}, nil
	case url != "":
		return models.JobRequest{Type: models.JobTypeClassify, URL: url}, nil
	default:
		return models.JobRequest{}, fmt.Errorf("no job given")
	}
}

func run(job models.JobRequest, streamName string) error {
	_ = godotenv.Load()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	ctx := context.Background()
	client, err := red.ConnectRedis(ctx, addr, os.Getenv("REDIS_PASSWORD"), 3, &log.Logger)
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := red.NewPublisher(client, streamName).PublishJob(ctx, job)
	if err != nil {
		return err
	}

	log.Info().Str("stream", streamName).Str("id", id).Str("type", string(job.Type)).Msg("Published successfully!")
	return nil
}
