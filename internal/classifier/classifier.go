// Package classifier labels images fetched by URL with a pretrained
// ImageNet-1k model served behind an inference endpoint.
package classifier

import (
	"context"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/skill"
	"github.com/rs/zerolog"
)

const (
	PluginName   = "image_classifier"
	FunctionName = "classify_image"
)

// Classifier is immutable after New and safe for concurrent use.
type Classifier struct {
	fetcher Fetcher
	model   Model
	labels  *Labels
	config  DataConfig
	logger  *zerolog.Logger
}

func New(fetcher Fetcher, model Model, labels *Labels, config DataConfig, logger *zerolog.Logger) *Classifier {
	return &Classifier{
		fetcher: fetcher,
		model:   model,
		labels:  labels,
		config:  config,
		logger:  logger,
	}
}

// Classify returns the short label of the image at url.
func (c *Classifier) Classify(ctx context.Context, url string) (string, error) {
	prediction, err := c.Predict(ctx, url)
	if err != nil {
		return "", err
	}
	return prediction.Label, nil
}

func (c *Classifier) Predict(ctx context.Context, url string) (models.Prediction, error) {
	now := time.Now()
	prediction := models.Prediction{URL: url}

	data, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		c.logger.Error().Err(err).Str("url", url).Msg("image fetch failed")
		return prediction, err
	}

	img, err := Decode(url, data)
	if err != nil {
		c.logger.Error().Err(err).Str("url", url).Msg("image decode failed")
		return prediction, err
	}

	logits, err := c.model.Infer(ctx, Preprocess(img, c.config))
	if err != nil {
		c.logger.Error().Err(err).Str("url", url).Msg("inference failed")
		return prediction, err
	}

	index, err := Argmax(logits)
	if err != nil {
		return prediction, &models.UpstreamError{Service: inferenceService, Err: err}
	}

	description, err := c.labels.Description(index)
	if err != nil {
		return prediction, &models.UpstreamError{Service: inferenceService, Err: err}
	}

	prediction.Index = index
	prediction.Score = logits[index]
	prediction.Description = description
	prediction.Label = ShortLabel(description)

	c.logger.Info().
		Str("url", url).
		Int("index", index).
		Str("label", prediction.Label).
		Dur("duration", time.Since(now)).
		Msg("image classified")
	return prediction, nil
}

// NativeFunction exposes Classify as image_classifier.classify_image; the URL
// is read from the input variable.
func (c *Classifier) NativeFunction() *skill.NativeFunction {
	return skill.NewNativeFunction(
		PluginName,
		FunctionName,
		"Takes a url as an input and classifies the image",
		func(ctx context.Context, vars skill.Variables) (string, error) {
			url := vars.Input()
			if url == "" {
				return "", fmt.Errorf("%s: missing image url in %q", skill.QualifiedName(PluginName, FunctionName), skill.InputKey)
			}
			return c.Classify(ctx, url)
		},
	)
}
