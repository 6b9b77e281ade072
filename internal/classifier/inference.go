package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
)

const (
	inferenceService = "inference"
	inputTensorName  = "input"
	datatypeFP32     = "FP32"
)

type inferTensor struct {
	Name     string    `json:"name"`
	Shape    []int     `json:"shape"`
	Datatype string    `json:"datatype"`
	Data     []float32 `json:"data"`
}

type inferRequest struct {
	Inputs []inferTensor `json:"inputs"`
}

type inferResponse struct {
	ModelName string        `json:"model_name"`
	Outputs   []inferTensor `json:"outputs"`
}

// InferenceClient calls a model served over the Open Inference Protocol (v2) REST API.
type InferenceClient struct {
	client     *http.Client
	baseURL    string
	modelName  string
	numClasses int
}

func NewInferenceClient(client *http.Client, baseURL, modelName string, numClasses int) *InferenceClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &InferenceClient{
		client:     client,
		baseURL:    strings.TrimRight(baseURL, "/"),
		modelName:  modelName,
		numClasses: numClasses,
	}
}

func (c *InferenceClient) Infer(ctx context.Context, input Tensor) ([]float32, error) {
	body, err := json.Marshal(inferRequest{
		Inputs: []inferTensor{{
			Name:     inputTensorName,
			Shape:    input.Shape,
			Datatype: datatypeFP32,
			Data:     input.Data,
		}},
	})
	if err != nil {
		return nil, &models.UpstreamError{Service: inferenceService, Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	url := fmt.Sprintf("%s/v2/models/%s/infer", c.baseURL, c.modelName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &models.UpstreamError{Service: inferenceService, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &models.UpstreamError{Service: inferenceService, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &models.UpstreamError{
			Service: inferenceService,
			Err:     fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))),
		}
	}

	var parsed inferResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &models.UpstreamError{Service: inferenceService, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if len(parsed.Outputs) == 0 {
		return nil, &models.UpstreamError{Service: inferenceService, Err: fmt.Errorf("response has no outputs")}
	}

	logits := parsed.Outputs[0].Data
	if c.numClasses > 0 && len(logits) != c.numClasses {
		return nil, &models.UpstreamError{
			Service: inferenceService,
			Err:     fmt.Errorf("expected %d logits, got %d", c.numClasses, len(logits)),
		}
	}

	return logits, nil
}
