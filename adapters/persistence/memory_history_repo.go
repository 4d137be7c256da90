package persistence

import (
	"context"
	"sync"

	"github.com/khoahotran/inkwell/internal/domain/history"
)

// memoryHistoryRepo keeps entries in process memory, matching the behavior
// of running without a database: history is lost on restart.
type memoryHistoryRepo struct {
	mu      sync.Mutex
	entries []*history.Entry
}

func NewMemoryHistoryRepo() history.Repository {
	return &memoryHistoryRepo{}
}

func (r *memoryHistoryRepo) Append(_ context.Context, entry *history.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *entry
	r.entries = append(r.entries, &copied)
	return nil
}

func (r *memoryHistoryRepo) List(_ context.Context, limit int) ([]*history.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// The cap keeps the newest entries; older ones fall off the front.
	start := 0
	if limit > 0 && limit < len(r.entries) {
		start = len(r.entries) - limit
	}

	src := r.entries[start:]
	out := make([]*history.Entry, len(src))
	for i, entry := range src {
		copied := *entry
		out[i] = &copied
	}
	return out, nil
}

func (r *memoryHistoryRepo) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	return nil
}
