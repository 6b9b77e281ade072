package classifier

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DataConfig describes the eval transform of the model.
type DataConfig struct {
	InputSize int
	CropPct   float64
	Mean      [3]float32
	Std       [3]float32
}

// ConvNeXtTinyConfig is the data config of convnext_tiny.in12k_ft_in1k.
var ConvNeXtTinyConfig = DataConfig{
	InputSize: 224,
	CropPct:   0.95,
	Mean:      [3]float32{0.485, 0.456, 0.406},
	Std:       [3]float32{0.229, 0.224, 0.225},
}

// ResizeSize is the shorter-side length before the center crop.
func (c DataConfig) ResizeSize() int {
	return int(math.Floor(float64(c.InputSize) / c.CropPct))
}

const (
	// MaxImagePixels bounds the decoded pixel count.
	MaxImagePixels = 1 << 25

	// MaxAspectRatio bounds longer/shorter side so the shorter-side resize
	// stays small.
	MaxAspectRatio = 50
)

// Decode parses an image in any registered format. The header is checked
// against the size limits before pixels are decoded.
func Decode(url string, data []byte) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &models.DecodeError{URL: url, Err: err}
	}
	if err := checkDimensions(cfg.Width, cfg.Height); err != nil {
		return nil, &models.DecodeError{URL: url, Err: err}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &models.DecodeError{URL: url, Err: err}
	}
	b := img.Bounds()
	if err := checkDimensions(b.Dx(), b.Dy()); err != nil {
		return nil, &models.DecodeError{URL: url, Err: err}
	}
	return img, nil
}

func checkDimensions(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("empty image %dx%d", w, h)
	}
	if int64(w)*int64(h) > MaxImagePixels {
		return fmt.Errorf("image %dx%d exceeds %d pixels", w, h, MaxImagePixels)
	}
	if max(w, h) > MaxAspectRatio*min(w, h) {
		return fmt.Errorf("image %dx%d exceeds aspect ratio %d:1", w, h, MaxAspectRatio)
	}
	return nil
}

// Preprocess converts img to a normalized [1,3,H,W] tensor.
func Preprocess(img image.Image, cfg DataConfig) Tensor {
	resized := resizeShorterSide(toRGB(img), cfg.ResizeSize())
	cropped := centerCrop(resized, cfg.InputSize)

	size := cfg.InputSize
	plane := size * size
	data := make([]float32, 3*plane)
	for y := range size {
		for x := range size {
			off := cropped.PixOffset(x, y)
			for c := range 3 {
				v := float32(cropped.Pix[off+c]) / 255
				data[c*plane+y*size+x] = (v - cfg.Mean[c]) / cfg.Std[c]
			}
		}
	}

	return Tensor{Shape: []int{1, 3, size, size}, Data: data}
}

// toRGB flattens img onto opaque RGBA using straight (non-premultiplied)
// channel values, so transparent pixels keep their colour and alpha is dropped.
func toRGB(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			dst.SetRGBA(x-b.Min.X, y-b.Min.Y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return dst
}

func resizeShorterSide(img *image.RGBA, shorter int) *image.RGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	var nw, nh int
	if w <= h {
		nw = shorter
		nh = int(math.Round(float64(h) * float64(shorter) / float64(w)))
	} else {
		nh = shorter
		nw = int(math.Round(float64(w) * float64(shorter) / float64(h)))
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

func centerCrop(img *image.RGBA, size int) *image.RGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	left := int(math.Round(float64(w-size) / 2))
	top := int(math.Round(float64(h-size) / 2))

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), img, image.Pt(left, top), draw.Src)
	return dst
}
