package assist

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/khoahotran/inkwell/internal/application/service"
	"github.com/khoahotran/inkwell/internal/domain/history"
	"github.com/khoahotran/inkwell/pkg/apperror"
	"github.com/khoahotran/inkwell/pkg/logger"
)

var tracer = otel.Tracer("assist_usecase")

// completionRunner is the shared pipeline behind every assistant:
// cache lookup, completion call, history append, event publish.
// Cache and publisher are optional; only the completion call is fatal.
type completionRunner struct {
	llm         service.LLMService
	cache       service.CompletionCache
	historyRepo history.Repository
	publisher   service.EventPublisher
	logger      logger.Logger
}

func (r *completionRunner) run(ctx context.Context, kind history.Kind, historyText string, req service.CompletionRequest) (string, error) {
	l := r.logger.With(zap.String("kind", string(kind)), zap.String("model", req.Model))

	if r.llm == nil {
		l.Error("Completion requested but API key is not configured", nil)
		return "", apperror.NewInternal("completion API key is not configured on the server", nil)
	}

	cacheHit := false
	if r.cache != nil {
		cached, ok, err := r.cache.Get(ctx, req)
		if err != nil {
			l.Warn("Completion cache lookup failed", zap.Error(err))
		} else if ok {
			l.Info("Completion served from cache")
			cacheHit = true
			r.record(ctx, l, kind, historyText, cached, req, cacheHit)
			return cached, nil
		}
	}

	response, err := r.llm.GenerateCompletion(ctx, req)
	if err != nil {
		l.Error("Completion API call failed", err)
		return "", apperror.NewUpstream("completion request failed", err)
	}
	l.Info("Completion generated", zap.Int("response_chars", len(response)))

	if r.cache != nil {
		if err := r.cache.Set(ctx, req, response); err != nil {
			l.Warn("Failed to store completion in cache", zap.Error(err))
		}
	}

	r.record(ctx, l, kind, historyText, response, req, cacheHit)
	return response, nil
}

// record appends the history entry and publishes the completion event.
// Both are best-effort; the completion already succeeded.
func (r *completionRunner) record(ctx context.Context, l logger.Logger, kind history.Kind, userText, aiText string, req service.CompletionRequest, cacheHit bool) {
	entry := &history.Entry{
		ID:        uuid.New(),
		Kind:      kind,
		UserText:  userText,
		AIText:    aiText,
		Model:     req.Model,
		CreatedAt: time.Now(),
	}
	if err := r.historyRepo.Append(ctx, entry); err != nil {
		l.Warn("Failed to append history entry", zap.Error(err))
	}

	if r.publisher == nil {
		return
	}
	ev := service.CompletionEvent{
		Kind:          kind,
		Model:         req.Model,
		PromptChars:   len(req.UserPrompt),
		ResponseChars: len(aiText),
		CacheHit:      cacheHit,
	}
	if err := r.publisher.PublishCompletion(ctx, ev); err != nil {
		l.Warn("Failed to publish completion event", zap.Error(err))
	}
}
