package classifier

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/color/palette"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/skill"
	"github.com/rs/zerolog"
)

type fakeModel struct {
	logits []float32
	err    error
	calls  int
	input  Tensor
}

func (m *fakeModel) Infer(ctx context.Context, input Tensor) ([]float32, error) {
	m.calls++
	m.input = input
	return m.logits, m.err
}

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func logitsWithPeak(index int) []float32 {
	logits := make([]float32, NumClasses)
	logits[index] = 9.5
	return logits
}

func newImageServer(t *testing.T) *httptest.Server {
	t.Helper()
	body := encodePNG(t, uniformImage(64, 48, color.NRGBA{R: 90, G: 120, B: 200, A: 255}))
	empty := encodeGIF(t, image.NewPaletted(image.Rect(0, 0, 0, 1), palette.Plan9))
	strip := encodePNG(t, image.NewGray(image.Rect(0, 0, 1, 20000)))
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dog.jpg":
			w.Header().Set("Content-Type", "image/png")
			w.Write(body)
		case "/empty.gif":
			w.Header().Set("Content-Type", "image/gif")
			w.Write(empty)
		case "/strip.png":
			w.Header().Set("Content-Type", "image/png")
			w.Write(strip)
		case "/garbage.jpg":
			w.Header().Set("Content-Type", "image/jpeg")
			w.Write([]byte("definitely not a jpeg"))
		default:
			http.NotFound(w, r)
		}
	}))
}

func newTestClassifier(t *testing.T, server *httptest.Server, model Model) *Classifier {
	t.Helper()
	labels, err := DefaultLabels()
	if err != nil {
		t.Fatalf("DefaultLabels failed: %v", err)
	}
	return New(NewHTTPFetcher(server.Client()), model, labels, ConvNeXtTinyConfig, testLogger())
}

func TestClassifier_Classify(t *testing.T) {
	server := newImageServer(t)
	defer server.Close()

	model := &fakeModel{logits: logitsWithPeak(2)}
	c := newTestClassifier(t, server, model)

	label, err := c.Classify(context.Background(), server.URL+"/dog.jpg")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if label != "great white shark" {
		t.Errorf("expected 'great white shark', got %q", label)
	}
	if strings.Contains(label, ",") {
		t.Errorf("label contains a comma: %q", label)
	}
	if len(model.input.Data) != 3*224*224 {
		t.Errorf("model received %d values", len(model.input.Data))
	}
}

func TestClassifier_Predict(t *testing.T) {
	server := newImageServer(t)
	defer server.Close()

	c := newTestClassifier(t, server, &fakeModel{logits: logitsWithPeak(207)})

	prediction, err := c.Predict(context.Background(), server.URL+"/dog.jpg")
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if prediction.Index != 207 || prediction.Label != "golden retriever" || prediction.Score != 9.5 {
		t.Errorf("unexpected prediction %+v", prediction)
	}
	if prediction.Description != "golden retriever" {
		t.Errorf("unexpected description %q", prediction.Description)
	}
}

func TestClassifier_Classify_NotFound(t *testing.T) {
	server := newImageServer(t)
	defer server.Close()

	model := &fakeModel{logits: logitsWithPeak(0)}
	c := newTestClassifier(t, server, model)

	label, err := c.Classify(context.Background(), server.URL+"/missing.jpg")
	var fetchErr *models.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if label != "" {
		t.Errorf("expected no label on failure, got %q", label)
	}
	if model.calls != 0 {
		t.Error("model should not run when fetch fails")
	}
}

func TestClassifier_Classify_DecodeError(t *testing.T) {
	server := newImageServer(t)
	defer server.Close()

	for _, path := range []string{"/garbage.jpg", "/empty.gif", "/strip.png"} {
		t.Run(path, func(t *testing.T) {
			model := &fakeModel{logits: logitsWithPeak(0)}
			c := newTestClassifier(t, server, model)

			_, err := c.Classify(context.Background(), server.URL+path)
			var decodeErr *models.DecodeError
			if !errors.As(err, &decodeErr) {
				t.Errorf("expected DecodeError, got %v", err)
			}
			if model.calls != 0 {
				t.Error("model should not be called for undecodable images")
			}
		})
	}
}

func TestClassifier_Classify_InferenceError(t *testing.T) {
	server := newImageServer(t)
	defer server.Close()

	upstream := &models.UpstreamError{Service: "inference", Err: errors.New("unavailable")}
	c := newTestClassifier(t, server, &fakeModel{err: upstream})

	_, err := c.Classify(context.Background(), server.URL+"/dog.jpg")
	var upstreamErr *models.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Errorf("expected UpstreamError, got %v", err)
	}
}

func TestClassifier_NativeFunction(t *testing.T) {
	server := newImageServer(t)
	defer server.Close()

	c := newTestClassifier(t, server, &fakeModel{logits: logitsWithPeak(6)})

	registry := skill.NewRegistry()
	if err := registry.Register(c.NativeFunction()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	fn, err := registry.Get("image_classifier.classify_image")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	out, err := fn.Invoke(context.Background(), skill.NewVariables(server.URL+"/dog.jpg"))
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if out != "stingray" {
		t.Errorf("expected 'stingray', got %q", out)
	}

	if _, err := fn.Invoke(context.Background(), skill.Variables{}); err == nil {
		t.Error("expected error without url")
	}
}
