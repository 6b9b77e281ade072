package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
	"github.com/redis/go-redis/v9"
)

// Publisher appends JSON payloads to a stream.
type Publisher struct {
	client StreamClient
	stream string
}

func NewPublisher(client StreamClient, stream string) *Publisher {
	return &Publisher{
		client: client,
		stream: stream,
	}
}

// PublishJob enqueues job, assigning an event id when it has none.
func (p *Publisher) PublishJob(ctx context.Context, job models.JobRequest) (string, error) {
	if job.EventID == "" {
		job.EventID = uuid.NewString()
	}
	return p.publish(ctx, job)
}

func (p *Publisher) PublishResult(ctx context.Context, result models.JobResult) (string, error) {
	return p.publish(ctx, result)
}

func (p *Publisher) publish(ctx context.Context, v any) (string, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{PayloadField: string(payload)},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("failed to add to stream %s: %w", p.stream, err)
	}
	return id, nil
}
