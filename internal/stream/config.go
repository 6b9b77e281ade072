package stream

import "github.com/povarna/generative-ai-agents/skills-agent/internal/stream/redis"

const (
	DefaultRequestStream = "skill-requests"
	DefaultResultStream  = "skill-results"
	DefaultGroup         = "skill-workers"
)

type StreamConfig struct {
	Provider    string // redis is the only provider
	RedisConfig *redis.RedisStreamConfig
}

func NewStreamConfig(redisAddr, redisPassword, consumerName string) *StreamConfig {
	return &StreamConfig{
		Provider: "redis",
		RedisConfig: &redis.RedisStreamConfig{
			RedisAddr:     redisAddr,
			RedisPassword: redisPassword,
			Stream:        DefaultRequestStream,
			ResultStream:  DefaultResultStream,
			Group:         DefaultGroup,
			ConsumerName:  consumerName,
		},
	}
}
