package classifier

import (
	"context"
	"errors"
)

// Tensor is a dense float32 array in row-major order.
type Tensor struct {
	Shape []int
	Data  []float32
}

// Model runs one forward pass and returns the class logits.
type Model interface {
	Infer(ctx context.Context, input Tensor) ([]float32, error)
}

var errEmptyLogits = errors.New("empty logits")

// Argmax returns the index of the largest value; the first index wins ties.
func Argmax(values []float32) (int, error) {
	if len(values) == 0 {
		return 0, errEmptyLogits
	}
	best := 0
	for i, v := range values[1:] {
		if v > values[best] {
			best = i + 1
		}
	}
	return best, nil
}
