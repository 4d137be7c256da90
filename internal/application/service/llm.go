package service

import (
	"context"
)

// CompletionRequest carries one prompt to the completion API.
type CompletionRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
}

type LLMService interface {
	GenerateCompletion(ctx context.Context, req CompletionRequest) (string, error)
}
