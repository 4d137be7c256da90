package service

import (
	"context"

	"github.com/khoahotran/inkwell/internal/domain/history"
)

// CompletionEvent describes one successful completion for async consumers.
type CompletionEvent struct {
	Kind          history.Kind `json:"kind"`
	Model         string       `json:"model"`
	PromptChars   int          `json:"prompt_chars"`
	ResponseChars int          `json:"response_chars"`
	CacheHit      bool         `json:"cache_hit"`
}

type EventPublisher interface {
	PublishCompletion(ctx context.Context, ev CompletionEvent) error
}
