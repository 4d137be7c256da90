package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/khoahotran/inkwell/internal/application/service"
	"github.com/khoahotran/inkwell/internal/config"
	"github.com/khoahotran/inkwell/pkg/logger"
	"github.com/sashabaranov/go-openai"
)

type openRouterAdapter struct {
	client *openai.Client
	log    logger.Logger
}

// attributionTransport injects the HTTP-Referer and X-Title headers
// OpenRouter asks clients to send.
type attributionTransport struct {
	base    http.RoundTripper
	siteURL string
	appName string
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("HTTP-Referer", t.siteURL)
	req.Header.Set("X-Title", t.appName)
	return t.base.RoundTrip(req)
}

// NewOpenRouterAdapter là constructor
func NewOpenRouterAdapter(cfg config.Config, log logger.Logger) (service.LLMService, error) {
	if cfg.OpenRouter.APIKey == "" {
		return nil, fmt.Errorf("openRouter API key is not configured")
	}

	clientConfig := openai.DefaultConfig(cfg.OpenRouter.APIKey)
	clientConfig.BaseURL = cfg.OpenRouter.BaseURL
	clientConfig.HTTPClient = &http.Client{
		Timeout: cfg.OpenRouter.Timeout,
		Transport: &attributionTransport{
			base:    http.DefaultTransport,
			siteURL: cfg.App.SiteURL,
			appName: cfg.App.Name,
		},
	}

	client := openai.NewClientWithConfig(clientConfig)

	log.Info("OpenRouter (LLM) Adapter initialized")
	return &openRouterAdapter{client: client, log: log}, nil
}

func (a *openRouterAdapter) GenerateCompletion(ctx context.Context, req service.CompletionRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.UserPrompt,
	})

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    req.Model,
		Messages: messages,
		Stream:   false,
	})
	if err != nil {
		return "", fmt.Errorf("openrouter chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openrouter returned no chat choices")
	}

	return resp.Choices[0].Message.Content, nil
}
