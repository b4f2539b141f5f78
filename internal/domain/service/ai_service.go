package service

import "context"

// ChatMessage is a single turn in a chat-completion conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is a provider-neutral chat-completion request.
type ChatRequest struct {
	Messages    []ChatMessage
	MaxTokens   int
	Temperature float64
}

// ChatResponse carries the assistant reply from a completion call.
type ChatResponse struct {
	Content      string
	Model        string
	FinishReason string
}

// ChatCompletionService calls an upstream LLM provider. Implementations
// classify upstream failures into the domain error taxonomy so callers
// can distinguish retryable outages from rejected requests.
type ChatCompletionService interface {
	Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}
