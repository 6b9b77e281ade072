package classifier

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/png"
	"math"
	"testing"

	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
)

func uniformImage(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	return buf.Bytes()
}

func TestDataConfig_ResizeSize(t *testing.T) {
	if got := ConvNeXtTinyConfig.ResizeSize(); got != 235 {
		t.Errorf("expected resize size 235, got %d", got)
	}
}

func TestPreprocess_ShapeAndNormalization(t *testing.T) {
	cfg := ConvNeXtTinyConfig
	tensor := Preprocess(uniformImage(320, 240, color.NRGBA{R: 255, G: 128, B: 0, A: 255}), cfg)

	want := []int{1, 3, 224, 224}
	if len(tensor.Shape) != 4 {
		t.Fatalf("expected 4-d shape, got %v", tensor.Shape)
	}
	for i := range want {
		if tensor.Shape[i] != want[i] {
			t.Fatalf("expected shape %v, got %v", want, tensor.Shape)
		}
	}
	if len(tensor.Data) != 3*224*224 {
		t.Fatalf("expected %d values, got %d", 3*224*224, len(tensor.Data))
	}

	plane := 224 * 224
	channels := [3]uint8{255, 128, 0}
	for c := range 3 {
		expected := (float32(channels[c])/255 - cfg.Mean[c]) / cfg.Std[c]
		for _, idx := range []int{0, plane / 2, plane - 1} {
			got := tensor.Data[c*plane+idx]
			if math.Abs(float64(got-expected)) > 0.02 {
				t.Errorf("channel %d at %d: expected %.4f, got %.4f", c, idx, expected, got)
			}
		}
	}
}

func TestPreprocess_DropsAlphaWithoutPremultiplying(t *testing.T) {
	cfg := ConvNeXtTinyConfig
	tensor := Preprocess(uniformImage(10, 10, color.NRGBA{R: 255, G: 0, B: 0, A: 0}), cfg)

	expected := (1 - cfg.Mean[0]) / cfg.Std[0]
	if math.Abs(float64(tensor.Data[0]-expected)) > 0.02 {
		t.Errorf("expected red channel %.4f for transparent red pixel, got %.4f", expected, tensor.Data[0])
	}
}

func TestDecode(t *testing.T) {
	img, err := Decode("http://example.com/a.png", encodePNG(t, uniformImage(4, 3, color.White)))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("unexpected bounds %v", img.Bounds())
	}

	_, err = Decode("http://example.com/a.png", []byte("not an image"))
	var decodeErr *models.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("expected DecodeError, got %v", err)
	}
}

func encodeGIF(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		t.Fatalf("gif encode failed: %v", err)
	}
	return buf.Bytes()
}

func TestDecode_RejectsDegenerateDimensions(t *testing.T) {
	tests := []struct {
		name string
		data func(t *testing.T) []byte
	}{
		{"zero width gif", func(t *testing.T) []byte {
			return encodeGIF(t, image.NewPaletted(image.Rect(0, 0, 0, 1), palette.Plan9))
		}},
		{"extreme aspect ratio png", func(t *testing.T) []byte {
			return encodePNG(t, image.NewGray(image.Rect(0, 0, 1, 20000)))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode("http://example.com/bad", tt.data(t))
			var decodeErr *models.DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("expected DecodeError, got %v", err)
			}
			if img != nil {
				t.Error("expected no image")
			}
		})
	}
}

func TestCheckDimensions(t *testing.T) {
	tests := []struct {
		w, h    int
		wantErr bool
	}{
		{1, 1, false},
		{640, 480, false},
		{50, 1, false},
		{0, 1, true},
		{1, 0, true},
		{51, 1, true},
		{8000, 5000, true},
	}

	for _, tt := range tests {
		err := checkDimensions(tt.w, tt.h)
		if (err != nil) != tt.wantErr {
			t.Errorf("checkDimensions(%d, %d) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
		}
	}
}

func TestCheckDimensions_AcceptsOrdinaryImages(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {640, 480}, {4000, 3000}, {50, 1}} {
		if err := checkDimensions(dims[0], dims[1]); err != nil {
			t.Errorf("%dx%d rejected: %v", dims[0], dims[1], err)
		}
	}
}
