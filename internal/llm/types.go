package llm

import "context"

// generates text from a conversation
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error)
	Model() string
}

// represents a single conversation turn
type Message struct {
	Role    string `json:"role"`    // "user" or "assistant"
	Content string `json:"content"` // message content
}

// contains the inputs for one text generation call
type TextGenerationRequest struct {
	SystemPrompt string
	Messages     []Message
	MaxTokens    int
}

// contains the model's text output and usage accounting
type TextGenerationResponse struct {
	Text  string
	Model string // the candidate model that actually served the request
	Usage Usage
}

// token usage reported by the backend
type Usage struct {
	InputTokens  int
	OutputTokens int
}
