package service

import "context"

// CompletionCache stores completion results keyed by request content so
// repeated prompts skip the upstream call. A miss is (value="", ok=false, nil).
type CompletionCache interface {
	Get(ctx context.Context, req CompletionRequest) (string, bool, error)
	Set(ctx context.Context, req CompletionRequest, response string) error
}
