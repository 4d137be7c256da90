package assist

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/inkwell/internal/application/service"
	"github.com/khoahotran/inkwell/internal/domain/history"
	"github.com/khoahotran/inkwell/pkg/apperror"
	"github.com/khoahotran/inkwell/pkg/logger"
)

type NameType string

const (
	NameTypeSurname   NameType = "surname"
	NameTypeGivenName NameType = "given_name"
)

type NameUseCase struct {
	runner completionRunner
	model  string
}

func NewNameUseCase(
	llm service.LLMService,
	cache service.CompletionCache,
	repo history.Repository,
	pub service.EventPublisher,
	log logger.Logger,
	model string,
) *NameUseCase {
	return &NameUseCase{
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

type NameInput struct {
	Keyword string
	Type    NameType
}

func (uc *NameUseCase) Execute(ctx context.Context, input NameInput) (string, error) {
	ctx, span := tracer.Start(ctx, "GenerateName")
	defer span.End()

	if strings.TrimSpace(input.Keyword) == "" {
		return "", apperror.NewInvalidInput("input text cannot be empty", nil)
	}

	if keywordCount(input.Keyword) > 1 {
		return "", apperror.NewInvalidInput("please enter exactly one keyword", nil)
	}

	nameType := input.Type
	if nameType == "" {
		nameType = NameTypeSurname
	}
	span.SetAttributes(attribute.String("name_type", string(nameType)))

	var systemPrompt, historyText string
	switch nameType {
	case NameTypeGivenName:
		systemPrompt = givenNamePrompt(input.Keyword)
		historyText = fmt.Sprintf("names with %q in the given name", input.Keyword)
	case NameTypeSurname:
		systemPrompt = surnamePrompt(input.Keyword)
		historyText = fmt.Sprintf("names with %q in the surname", input.Keyword)
	default:
		return "", apperror.NewInvalidInput("type must be 'surname' or 'given_name'", nil)
	}

	response, err := uc.runner.run(ctx, history.KindName, historyText, service.CompletionRequest{
		Model:        uc.model,
		SystemPrompt: systemPrompt,
		UserPrompt:   fmt.Sprintf("Please propose names containing %q.", input.Keyword),
	})
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	return response, nil
}
