package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/khoahotran/inkwell/internal/application/service"
	"github.com/khoahotran/inkwell/internal/domain/history"
	"github.com/khoahotran/inkwell/pkg/apperror"
	"github.com/khoahotran/inkwell/pkg/logger"
)

type ThesaurusUseCase struct {
	runner completionRunner
	model  string
}

func NewThesaurusUseCase(
	llm service.LLMService,
	cache service.CompletionCache,
	repo history.Repository,
	pub service.EventPublisher,
	log logger.Logger,
	model string,
) *ThesaurusUseCase {
	return &ThesaurusUseCase{
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

type ThesaurusInput struct {
	Keyword string
}

func (uc *ThesaurusUseCase) Execute(ctx context.Context, input ThesaurusInput) (string, error) {
	ctx, span := tracer.Start(ctx, "SuggestSynonyms")
	defer span.End()

	if strings.TrimSpace(input.Keyword) == "" {
		return "", apperror.NewInvalidInput("keyword cannot be empty", nil)
	}

	if keywordCount(input.Keyword) > 1 {
		return "", apperror.NewInvalidInput("please enter exactly one keyword", nil)
	}

	response, err := uc.runner.run(ctx, history.KindThesaurus, input.Keyword, service.CompletionRequest{
		Model:        uc.model,
		SystemPrompt: thesaurusPrompt(input.Keyword),
		UserPrompt:   fmt.Sprintf("Please explain synonyms for %q.", input.Keyword),
	})
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	return response, nil
}
