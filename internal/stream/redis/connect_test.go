package redis

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestConnectRedis_CancelledContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client, err := ConnectRedis(ctx, "127.0.0.1:1", "", 3, &logger)
	if err == nil {
		t.Fatal("expected error")
	}
	if client != nil {
		t.Error("expected no client on failure")
	}
	if !strings.Contains(buf.String(), "Connecting to Redis") {
		t.Errorf("expected connection attempts on injected logger, got %q", buf.String())
	}
}
