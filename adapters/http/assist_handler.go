package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/inkwell/internal/application/usecase/assist"
	"github.com/khoahotran/inkwell/pkg/apperror"
	"github.com/khoahotran/inkwell/pkg/logger"
)

type AssistHandler struct {
	plotUseCase      *assist.PlotUseCase
	nameUseCase      *assist.NameUseCase
	proofreadUseCase *assist.ProofreadUseCase
	thesaurusUseCase *assist.ThesaurusUseCase
	logger           logger.Logger
}

func NewAssistHandler(
	plotUC *assist.PlotUseCase,
	nameUC *assist.NameUseCase,
	proofreadUC *assist.ProofreadUseCase,
	thesaurusUC *assist.ThesaurusUseCase,
	log logger.Logger,
) *AssistHandler {
	return &AssistHandler{
		plotUseCase:      plotUC,
		nameUseCase:      nameUC,
		proofreadUseCase: proofreadUC,
		thesaurusUseCase: thesaurusUC,
		logger:           log,
	}
}

func (h *AssistHandler) GeneratePlot(c *gin.Context) {
	var req AssistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("missing 'text' in request body", err))
		return
	}

	output, err := h.plotUseCase.Execute(c.Request.Context(), assist.PlotInput{
		Keywords: req.Text,
		Context:  req.Context,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, AssistResponse{
		Message:       "Plot ideas generated.",
		ProcessedText: output,
	})
}

func (h *AssistHandler) GenerateName(c *gin.Context) {
	var req AssistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("missing 'text' in request body", err))
		return
	}

	output, err := h.nameUseCase.Execute(c.Request.Context(), assist.NameInput{
		Keyword: req.Text,
		Type:    assist.NameType(req.Type),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, AssistResponse{
		Message:       "Names generated.",
		ProcessedText: output,
	})
}

func (h *AssistHandler) Proofread(c *gin.Context) {
	var req AssistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("missing 'text' in request body", err))
		return
	}

	output, err := h.proofreadUseCase.Execute(c.Request.Context(), assist.ProofreadInput{
		Text: req.Text,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, AssistResponse{
		Message:       "Text proofread.",
		ProcessedText: output,
	})
}

func (h *AssistHandler) Thesaurus(c *gin.Context) {
	var req AssistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("missing 'text' in request body", err))
		return
	}

	output, err := h.thesaurusUseCase.Execute(c.Request.Context(), assist.ThesaurusInput{
		Keyword: req.Text,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, AssistResponse{
		Message:       "Synonyms generated.",
		ProcessedText: output,
	})
}
