package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/inkwell/internal/application/service"
)

const usageKeyTTL = 30 * 24 * time.Hour

// redisUsageStore keeps one hash per UTC day with per-model counters.
type redisUsageStore struct {
	rdb *redis.Client
}

func NewRedisUsageStore(rdb *redis.Client) service.UsageStore {
	return &redisUsageStore{rdb: rdb}
}

func usageKey(day time.Time) string {
	return "usage:" + day.UTC().Format("2006-01-02")
}

func (s *redisUsageStore) RecordCompletion(ctx context.Context, ev service.CompletionEvent) error {
	key := usageKey(time.Now())

	pipe := s.rdb.Pipeline()
	pipe.HIncrBy(ctx, key, "completions:"+ev.Model, 1)
	pipe.HIncrBy(ctx, key, "kind:"+string(ev.Kind), 1)
	pipe.HIncrBy(ctx, key, "prompt_chars", int64(ev.PromptChars))
	pipe.HIncrBy(ctx, key, "response_chars", int64(ev.ResponseChars))
	if ev.CacheHit {
		pipe.HIncrBy(ctx, key, "cache_hits", 1)
	}
	pipe.Expire(ctx, key, usageKeyTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record usage counters: %w", err)
	}
	return nil
}
