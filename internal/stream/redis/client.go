package redis

import (
	"context"

	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
	"github.com/redis/go-redis/v9"
)

// PayloadField is the stream entry field holding the JSON document.
const PayloadField = "payload"

// StreamClient is the subset of *redis.Client used by the worker.
type StreamClient interface {
	XGroupCreateMkStream(ctx context.Context, stream, group, start string) *redis.StatusCmd
	XReadGroup(ctx context.Context, a *redis.XReadGroupArgs) *redis.XStreamSliceCmd
	XAck(ctx context.Context, stream, group string, ids ...string) *redis.IntCmd
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

type JobExecutor interface {
	Execute(ctx context.Context, job models.JobRequest) models.JobResult
}
