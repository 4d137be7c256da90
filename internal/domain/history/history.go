package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Kind labels which assistant produced an entry.
type Kind string

const (
	KindPlot      Kind = "plot"
	KindName      Kind = "name"
	KindProofread Kind = "proofread"
	KindThesaurus Kind = "thesaurus"
)

type Entry struct {
	ID        uuid.UUID
	Kind      Kind
	UserText  string
	AIText    string
	Model     string
	CreatedAt time.Time
}

type Repository interface {
	Append(ctx context.Context, entry *Entry) error
	List(ctx context.Context, limit int) ([]*Entry, error)
	Clear(ctx context.Context) error
}
