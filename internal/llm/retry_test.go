package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBackoff_GrowsAndCaps(t *testing.T) {
	initial := 100 * time.Millisecond
	maxDelay := time.Second

	for attempt, base := range []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond, time.Second, time.Second} {
		got := Backoff(attempt, initial, maxDelay)
		low := time.Duration(float64(base) * 0.8)
		high := time.Duration(float64(base) * 1.2)
		if got < low || got > high {
			t.Errorf("attempt %d: backoff %v outside [%v, %v]", attempt, got, low, high)
		}
	}
}

func TestRetry_StopsOnNonRetryable(t *testing.T) {
	calls := 0
	policy := RetryPolicy{
		MaxRetries:   5,
		InitialDelay: time.Millisecond,
		MaxDelay:     time.Millisecond,
		Retryable:    func(error) bool { return false },
	}

	_, err := Retry(context.Background(), policy, func(context.Context) (*LLMResponse, error) {
		calls++
		return nil, errors.New("bad request")
	})
	if err == nil {
		t.Fatal("Expected error")
	}
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	calls := 0
	policy := RetryPolicy{
		MaxRetries:   3,
		InitialDelay: time.Millisecond,
		MaxDelay:     time.Millisecond,
		Retryable:    func(error) bool { return true },
	}

	_, err := Retry(context.Background(), policy, func(context.Context) (*LLMResponse, error) {
		calls++
		return nil, errors.New("unavailable")
	})
	if err == nil {
		t.Fatal("Expected error")
	}
	if calls != 3 {
		t.Errorf("Expected 3 calls, got %d", calls)
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	policy := RetryPolicy{
		MaxRetries:   3,
		InitialDelay: time.Hour,
		MaxDelay:     time.Hour,
		Retryable:    func(error) bool { return true },
	}

	_, err := Retry(ctx, policy, func(context.Context) (*LLMResponse, error) {
		cancel()
		return nil, errors.New("unavailable")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
