package assist

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/inkwell/internal/domain/history"
	"github.com/khoahotran/inkwell/pkg/apperror"
	"github.com/khoahotran/inkwell/pkg/logger"
)

const defaultHistoryLimit = 100

type HistoryUseCase struct {
	historyRepo history.Repository
	logger      logger.Logger
}

func NewHistoryUseCase(repo history.Repository, log logger.Logger) *HistoryUseCase {
	return &HistoryUseCase{historyRepo: repo, logger: log}
}

func (uc *HistoryUseCase) List(ctx context.Context, limit int) ([]*history.Entry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := uc.historyRepo.List(ctx, limit)
	if err != nil {
		uc.logger.Error("Failed to list history", err)
		return nil, apperror.NewInternal("failed to list history", err)
	}
	return entries, nil
}

func (uc *HistoryUseCase) Clear(ctx context.Context) error {
	if err := uc.historyRepo.Clear(ctx); err != nil {
		uc.logger.Error("Failed to clear history", err)
		return apperror.NewInternal("failed to clear history", err)
	}
	uc.logger.Info("History cleared", zap.String("action", "clear"))
	return nil
}
