package gpt

import (
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
)

const serviceName = "openai"

type Client struct {
	Client       openai.Client
	ModelID      string
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

type Options struct {
	APIKey         string
	OrganizationID string
	ModelID        string
	BaseURL        string
	Timeout        time.Duration
}

// NewClient builds an OpenAI chat client. SDK level retries are disabled so a
// single InvokeModel call maps to exactly one HTTP request.
func NewClient(opts Options, extra ...option.RequestOption) (*Client, error) {
	if opts.APIKey == "" {
		return nil, &models.UpstreamError{Service: serviceName, Err: errors.New("OpenAI API key is required")}
	}
	if opts.ModelID == "" {
		return nil, fmt.Errorf("OpenAI model ID is required")
	}

	requestOptions := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.OrganizationID != "" {
		requestOptions = append(requestOptions, option.WithOrganization(opts.OrganizationID))
	}
	if opts.BaseURL != "" {
		requestOptions = append(requestOptions, option.WithBaseURL(opts.BaseURL))
	}
	if opts.Timeout > 0 {
		requestOptions = append(requestOptions, option.WithRequestTimeout(opts.Timeout))
	}
	requestOptions = append(requestOptions, extra...)

	return &Client{
		Client:       openai.NewClient(requestOptions...),
		ModelID:      opts.ModelID,
		MaxRetries:   3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     12 * time.Second,
	}, nil
}
