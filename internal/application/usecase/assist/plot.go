package assist

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/inkwell/internal/application/service"
	"github.com/khoahotran/inkwell/internal/domain/history"
	"github.com/khoahotran/inkwell/pkg/apperror"
	"github.com/khoahotran/inkwell/pkg/logger"
)

// maxPlotKeywords caps the keyword list so the input stays a keyword set,
// not free-form prose.
const maxPlotKeywords = 10

type PlotUseCase struct {
	runner completionRunner
	model  string
}

func NewPlotUseCase(
	llm service.LLMService,
	cache service.CompletionCache,
	repo history.Repository,
	pub service.EventPublisher,
	log logger.Logger,
	model string,
) *PlotUseCase {
	return &PlotUseCase{
		runner: completionRunner{
			llm:         llm,
			cache:       cache,
			historyRepo: repo,
			publisher:   pub,
			logger:      log,
		},
		model: model,
	}
}

type PlotInput struct {
	Keywords string
	// Context overrides the system prompt when the frontend supplies one.
	Context string
}

func (uc *PlotUseCase) Execute(ctx context.Context, input PlotInput) (string, error) {
	ctx, span := tracer.Start(ctx, "GeneratePlot")
	defer span.End()

	if strings.TrimSpace(input.Keywords) == "" {
		return "", apperror.NewInvalidInput("input text cannot be empty", nil)
	}

	count := keywordCount(input.Keywords)
	span.SetAttributes(attribute.Int("keyword_count", count))
	if count > maxPlotKeywords {
		return "", apperror.NewInvalidInput("please enter at most 10 keywords separated by commas or spaces", nil)
	}

	systemPrompt := strings.TrimSpace(input.Context)
	if systemPrompt == "" {
		systemPrompt = defaultPlotPrompt
	}

	response, err := uc.runner.run(ctx, history.KindPlot, input.Keywords, service.CompletionRequest{
		Model:        uc.model,
		SystemPrompt: systemPrompt,
		UserPrompt:   input.Keywords,
	})
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	return response, nil
}
