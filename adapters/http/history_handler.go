package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/inkwell/internal/application/usecase/assist"
	"github.com/khoahotran/inkwell/pkg/apperror"
	"github.com/khoahotran/inkwell/pkg/logger"
)

type HistoryHandler struct {
	historyUseCase *assist.HistoryUseCase
	logger         logger.Logger
}

func NewHistoryHandler(uc *assist.HistoryUseCase, log logger.Logger) *HistoryHandler {
	return &HistoryHandler{
		historyUseCase: uc,
		logger:         log,
	}
}

func (h *HistoryHandler) ListHistory(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		c.Error(apperror.NewInvalidInput("limit must be a non-negative integer", err))
		return
	}

	entries, err := h.historyUseCase.List(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]HistoryEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = ToHistoryEntryDTO(e)
	}

	c.JSON(http.StatusOK, dtos)
}

func (h *HistoryHandler) ClearHistory(c *gin.Context) {
	if _, ok := GetOwnerIDFromGinContext(c); !ok {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "ownerID not found in context"})
		return
	}

	if err := h.historyUseCase.Clear(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "History cleared."})
}
