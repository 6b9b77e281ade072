package llm

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// RetryPolicy drives InvokeModelWithRetry implementations.
type RetryPolicy struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Retryable    func(error) bool
}

// Retry calls invoke until it succeeds, returns a non-retryable error, the
// attempts are exhausted or ctx is done.
func Retry(ctx context.Context, policy RetryPolicy, invoke func(context.Context) (*LLMResponse, error)) (*LLMResponse, error) {
	attempts := policy.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		response, err := invoke(ctx)
		if err == nil {
			return response, nil
		}
		lastErr = err

		if policy.Retryable != nil && !policy.Retryable(err) {
			return nil, fmt.Errorf("non-retryable error: %w", err)
		}
		if attempt == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(Backoff(attempt, policy.InitialDelay, policy.MaxDelay)):
		}
	}

	return nil, fmt.Errorf("max retries %d exceeded: %w", attempts, lastErr)
}

// Backoff returns initialDelay*2^attempt capped at maxDelay, with +/-20% jitter.
func Backoff(attempt int, initialDelay, maxDelay time.Duration) time.Duration {
	backoff := float64(initialDelay) * math.Pow(2, float64(attempt))

	if backoff > float64(maxDelay) {
		backoff = float64(maxDelay)
	}

	jitter := backoff * 0.2 * (2*rand.Float64() - 1)
	backoff += jitter

	return time.Duration(backoff)
}
