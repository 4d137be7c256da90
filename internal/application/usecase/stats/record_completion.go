package stats

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/inkwell/internal/application/service"
	"github.com/khoahotran/inkwell/pkg/logger"
)

// RecordCompletionUseCase folds one completion event into the usage counters.
type RecordCompletionUseCase struct {
	usageStore service.UsageStore
	logger     logger.Logger
}

func NewRecordCompletionUseCase(store service.UsageStore, log logger.Logger) *RecordCompletionUseCase {
	return &RecordCompletionUseCase{usageStore: store, logger: log}
}

func (uc *RecordCompletionUseCase) Execute(ctx context.Context, ev service.CompletionEvent) error {
	if err := uc.usageStore.RecordCompletion(ctx, ev); err != nil {
		return err
	}

	uc.logger.Info("Recorded completion usage",
		zap.String("kind", string(ev.Kind)),
		zap.String("model", ev.Model),
		zap.Bool("cache_hit", ev.CacheHit),
	)
	return nil
}
