package llm

// LLMRequest is a single-turn completion request.
type LLMRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

type LLMResponse struct {
	Content    string
	StopReason string
	Model      string
}
