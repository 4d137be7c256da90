package http

import (
	"time"

	"github.com/khoahotran/inkwell/internal/domain/history"
)

// Assist DTOs

type AssistRequest struct {
	Text string `json:"text" binding:"required"`
	// Context carries an optional system prompt from the plot page.
	Context string `json:"context"`
	// Type selects surname or given_name on the name generator.
	Type string `json:"type"`
}

type AssistResponse struct {
	Message       string `json:"message"`
	ProcessedText string `json:"processed_text"`
}

// History DTOs

type HistoryEntryDTO struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	User      string    `json:"user"`
	AI        string    `json:"ai"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
}

func ToHistoryEntryDTO(e *history.Entry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:        e.ID.String(),
		Kind:      string(e.Kind),
		User:      e.UserText,
		AI:        e.AIText,
		Model:     e.Model,
		CreatedAt: e.CreatedAt,
	}
}
