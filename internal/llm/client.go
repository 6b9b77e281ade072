package llm

import (
	"context"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

// LLMClient is an interface for invoking chat-completion models.
// Implementations wrap every failure in *models.UpstreamError.
type LLMClient interface {
	InvokeModel(ctx context.Context, request LLMRequest) (*LLMResponse, error)
	InvokeModelWithRetry(ctx context.Context, request LLMRequest) (*LLMResponse, error)
}
