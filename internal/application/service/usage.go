package service

import "context"

// UsageStore accumulates completion usage counters for the stats worker.
type UsageStore interface {
	RecordCompletion(ctx context.Context, ev CompletionEvent) error
}
