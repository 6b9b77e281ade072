package skill

import (
	"context"
	"errors"
	"testing"
)

func TestPipeline_ChainsOutputs(t *testing.T) {
	var seen []Variables
	record := func(name, out string) *NativeFunction {
		return NewNativeFunction("p", name, "", func(ctx context.Context, vars Variables) (string, error) {
			seen = append(seen, vars.Clone())
			return out, nil
		})
	}

	registry := NewRegistry()
	if err := registry.Register(record("solve", "reasoning"), record("cot", "35")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	pipeline, err := NewPipeline(registry, "p.solve", "p.cot")
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}

	vars := Variables{"problem": "How old is my sister?"}
	out, err := pipeline.Run(context.Background(), vars)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if out != "35" {
		t.Errorf("Expected final output '35', got '%s'", out)
	}
	if seen[0]["problem"] != "How old is my sister?" || seen[0].Input() != "" {
		t.Errorf("Unexpected vars for first stage: %v", seen[0])
	}
	if seen[1].Input() != "reasoning" || seen[1]["problem"] != "How old is my sister?" {
		t.Errorf("Unexpected vars for second stage: %v", seen[1])
	}
	if _, mutated := vars[InputKey]; mutated {
		t.Error("Run mutated the caller's variables")
	}
}

func TestPipeline_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	called := false

	registry := NewRegistry()
	err := registry.Register(
		NewNativeFunction("p", "fail", "", func(ctx context.Context, vars Variables) (string, error) {
			return "", boom
		}),
		NewNativeFunction("p", "after", "", func(ctx context.Context, vars Variables) (string, error) {
			called = true
			return "", nil
		}),
	)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	pipeline, err := NewPipeline(registry, "p.fail", "p.after")
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}

	if _, err := pipeline.Run(context.Background(), nil); !errors.Is(err, boom) {
		t.Errorf("Expected boom, got %v", err)
	}
	if called {
		t.Error("Function after failure should not run")
	}
}

func TestNewPipeline_ValidatesNames(t *testing.T) {
	if _, err := NewPipeline(NewRegistry(), "p.missing"); !errors.Is(err, ErrFunctionNotFound) {
		t.Errorf("Expected ErrFunctionNotFound, got %v", err)
	}
	if _, err := NewPipeline(NewRegistry()); err == nil {
		t.Error("Expected error for empty pipeline")
	}
}

func TestPipeline_CancelledContext(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(echoFunction("p", "echo")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	pipeline, err := NewPipeline(registry, "p.echo")
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := pipeline.Run(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
