package classifier

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
)

// NumClasses is the size of the ImageNet-1k label space.
const NumClasses = 1000

//go:embed labels/imagenet1k.txt
var imagenet1k []byte

// Labels maps class indices to their descriptions.
type Labels struct {
	descriptions []string
}

// DefaultLabels returns the embedded ImageNet-1k table.
func DefaultLabels() (*Labels, error) {
	return ParseLabels(imagenet1k, NumClasses)
}

// LoadLabels reads a table with one description per line.
func LoadLabels(path string, numClasses int) (*Labels, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read labels file: %w", err)
	}
	return ParseLabels(data, numClasses)
}

func ParseLabels(data []byte, numClasses int) (*Labels, error) {
	var descriptions []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		descriptions = append(descriptions, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan labels: %w", err)
	}

	if len(descriptions) != numClasses {
		return nil, fmt.Errorf("expected %d labels, got %d", numClasses, len(descriptions))
	}

	return &Labels{descriptions: descriptions}, nil
}

func (l *Labels) Len() int {
	return len(l.descriptions)
}

// Description returns the full comma-separated synonym list of a class.
func (l *Labels) Description(index int) (string, error) {
	if index < 0 || index >= len(l.descriptions) {
		return "", fmt.Errorf("class index %d out of range [0,%d)", index, len(l.descriptions))
	}
	return l.descriptions[index], nil
}

// ShortLabel keeps the text before the first comma.
func ShortLabel(description string) string {
	head, _, _ := strings.Cut(description, ",")
	return strings.TrimSpace(head)
}
