package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type fakeStreamClient struct {
	mu        sync.Mutex
	createErr error
	reads     [][]redis.XStream
	onDrained func()
	acked     []string
	added     []*redis.XAddArgs
}

func (f *fakeStreamClient) XGroupCreateMkStream(ctx context.Context, stream, group, start string) *redis.StatusCmd {
	if f.createErr != nil {
		return redis.NewStatusResult("", f.createErr)
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeStreamClient) XReadGroup(ctx context.Context, a *redis.XReadGroupArgs) *redis.XStreamSliceCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.reads) == 0 {
		if f.onDrained != nil {
			f.onDrained()
		}
		return redis.NewXStreamSliceCmdResult(nil, redis.Nil)
	}
	next := f.reads[0]
	f.reads = f.reads[1:]
	return redis.NewXStreamSliceCmdResult(next, nil)
}

func (f *fakeStreamClient) XAck(ctx context.Context, stream, group string, ids ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acked = append(f.acked, ids...)
	return redis.NewIntResult(int64(len(ids)), nil)
}

func (f *fakeStreamClient) XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, a)
	return redis.NewStringResult("1-0", nil)
}

type fakeExecutor struct {
	jobs []models.JobRequest
}

func (e *fakeExecutor) Execute(ctx context.Context, job models.JobRequest) models.JobResult {
	e.jobs = append(e.jobs, job)
	return models.JobResult{EventID: job.EventID, Type: job.Type, Status: models.JobStatusDone, Solve: &models.SolveResult{FinalAnswer: 35}}
}

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func testConfig() RedisStreamConfig {
	return RedisStreamConfig{
		Stream:       "skill-requests",
		ResultStream: "skill-results",
		Group:        "skill-workers",
		ConsumerName: "worker-1",
	}
}

func jobMessage(t *testing.T, id string, job models.JobRequest) redis.XMessage {
	t.Helper()
	payload, err := json.Marshal(job)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	return redis.XMessage{ID: id, Values: map[string]any{PayloadField: string(payload)}}
}

func TestConsumer_Process_PublishesResultAndAcks(t *testing.T) {
	client := &fakeStreamClient{}
	exec := &fakeExecutor{}
	consumer := NewConsumer(client, testConfig(), exec, testLogger())

	consumer.process(context.Background(), jobMessage(t, "1-1", models.JobRequest{EventID: "evt-1", Type: models.JobTypeSolve, Problem: "q"}))

	if len(exec.jobs) != 1 || exec.jobs[0].Problem != "q" {
		t.Fatalf("unexpected executed jobs %+v", exec.jobs)
	}
	if len(client.acked) != 1 || client.acked[0] != "1-1" {
		t.Errorf("expected ack of 1-1, got %v", client.acked)
	}
	if len(client.added) != 1 || client.added[0].Stream != "skill-results" {
		t.Fatalf("expected one result published to skill-results, got %+v", client.added)
	}

	values := client.added[0].Values.(map[string]any)
	var result models.JobResult
	if err := json.Unmarshal([]byte(values[PayloadField].(string)), &result); err != nil {
		t.Fatalf("unmarshal result failed: %v", err)
	}
	if result.EventID != "evt-1" || result.Solve == nil || result.Solve.FinalAnswer != 35 {
		t.Errorf("unexpected published result %+v", result)
	}
}

func TestConsumer_Process_DefaultsEventIDToMessageID(t *testing.T) {
	client := &fakeStreamClient{}
	exec := &fakeExecutor{}
	consumer := NewConsumer(client, testConfig(), exec, testLogger())

	consumer.process(context.Background(), jobMessage(t, "7-0", models.JobRequest{Type: models.JobTypeClassify, URL: "http://x/y.png"}))

	if len(exec.jobs) != 1 || exec.jobs[0].EventID != "7-0" {
		t.Errorf("expected event id from message id, got %+v", exec.jobs)
	}
}

func TestConsumer_Process_SkipsMalformed(t *testing.T) {
	tests := []struct {
		name string
		msg  redis.XMessage
	}{
		{"missing payload", redis.XMessage{ID: "2-0", Values: map[string]any{"other": "x"}}},
		{"invalid json", redis.XMessage{ID: "2-0", Values: map[string]any{PayloadField: "{not json"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeStreamClient{}
			exec := &fakeExecutor{}
			consumer := NewConsumer(client, testConfig(), exec, testLogger())

			consumer.process(context.Background(), tt.msg)

			if len(exec.jobs) != 0 {
				t.Error("malformed message should not be executed")
			}
			if len(client.acked) != 1 {
				t.Errorf("malformed message should be acked, got %v", client.acked)
			}
			if len(client.added) != 0 {
				t.Error("malformed message should not publish a result")
			}
		})
	}
}

func TestConsumer_Setup(t *testing.T) {
	busy := &fakeStreamClient{createErr: errors.New("BUSYGROUP Consumer Group name already exists")}
	if err := NewConsumer(busy, testConfig(), &fakeExecutor{}, testLogger()).Setup(context.Background()); err != nil {
		t.Errorf("BUSYGROUP should be ignored, got %v", err)
	}

	broken := &fakeStreamClient{createErr: errors.New("connection refused")}
	if err := NewConsumer(broken, testConfig(), &fakeExecutor{}, testLogger()).Setup(context.Background()); err == nil {
		t.Error("expected setup error")
	}
}

func TestConsumer_Start_ProcessesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := &fakeStreamClient{
		reads: [][]redis.XStream{{{
			Stream: "skill-requests",
			Messages: []redis.XMessage{
				jobMessage(t, "3-0", models.JobRequest{EventID: "a", Type: models.JobTypeSolve, Problem: "q"}),
				jobMessage(t, "3-1", models.JobRequest{EventID: "b", Type: models.JobTypeSolve, Problem: "q"}),
			},
		}}},
		onDrained: cancel,
	}
	exec := &fakeExecutor{}

	err := NewConsumer(client, testConfig(), exec, testLogger()).Start(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(exec.jobs) != 2 || exec.jobs[0].EventID != "a" || exec.jobs[1].EventID != "b" {
		t.Errorf("expected jobs processed in order, got %+v", exec.jobs)
	}
	if len(client.acked) != 2 {
		t.Errorf("expected 2 acks, got %v", client.acked)
	}
}

func TestPublisher_PublishJob_AssignsEventID(t *testing.T) {
	client := &fakeStreamClient{}
	publisher := NewPublisher(client, "skill-requests")

	if _, err := publisher.PublishJob(context.Background(), models.JobRequest{Type: models.JobTypeSolve, Problem: "q"}); err != nil {
		t.Fatalf("PublishJob failed: %v", err)
	}

	values := client.added[0].Values.(map[string]any)
	var job models.JobRequest
	if err := json.Unmarshal([]byte(values[PayloadField].(string)), &job); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if job.EventID == "" {
		t.Error("expected generated event id")
	}
}
