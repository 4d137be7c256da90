package assist

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/inkwell/internal/application/service"
	"github.com/khoahotran/inkwell/internal/domain/history"
	"github.com/khoahotran/inkwell/pkg/apperror"
	"github.com/khoahotran/inkwell/pkg/logger"
)

// maxProofreadRunes limits submissions; counted in runes since most input
// is CJK text.
const maxProofreadRunes = 500

type ProofreadUseCase struct {
	runner completionRunner
	model  string
}

func NewProofreadUseCase(
	llm service.LLMService,
	cache service.CompletionCache,
	repo history.Repository,
	pub service.EventPublisher,
	log logger.Logger,
	model string,
) *ProofreadUseCase {
	return &ProofreadUseCase{
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

type ProofreadInput struct {
	Text string
}

func (uc *ProofreadUseCase) Execute(ctx context.Context, input ProofreadInput) (string, error) {
	ctx, span := tracer.Start(ctx, "ProofreadText")
	defer span.End()

	if strings.TrimSpace(input.Text) == "" {
		return "", apperror.NewInvalidInput("proofread text cannot be empty", nil)
	}

	length := utf8.RuneCountInString(input.Text)
	span.SetAttributes(attribute.Int("text_runes", length))
	if length > maxProofreadRunes {
		return "", apperror.NewInvalidInput("proofread text is limited to 500 characters", nil)
	}

	response, err := uc.runner.run(ctx, history.KindProofread, input.Text, service.CompletionRequest{
		Model:        uc.model,
		SystemPrompt: proofreadPrompt,
		UserPrompt:   input.Text,
	})
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	return response, nil
}
