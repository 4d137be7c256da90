package persistence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/inkwell/internal/application/service"
	"github.com/khoahotran/inkwell/pkg/logger"
)

type redisCompletionCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisCompletionCache(rdb *redis.Client, ttl time.Duration, log logger.Logger) service.CompletionCache {
	return &redisCompletionCache{rdb: rdb, ttl: ttl, logger: log}
}

// cacheKey hashes the full request content so distinct system prompts or
// models never collide.
func cacheKey(req service.CompletionRequest) string {
	h := sha256.New()
	h.Write([]byte(req.Model))
	h.Write([]byte{0})
	h.Write([]byte(req.SystemPrompt))
	h.Write([]byte{0})
	h.Write([]byte(req.UserPrompt))
	return "completion:" + hex.EncodeToString(h.Sum(nil))
}

func (c *redisCompletionCache) Get(ctx context.Context, req service.CompletionRequest) (string, bool, error) {
	value, err := c.rdb.Get(ctx, cacheKey(req)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("completion cache get failed: %w", err)
	}
	return value, true, nil
}

func (c *redisCompletionCache) Set(ctx context.Context, req service.CompletionRequest, response string) error {
	if err := c.rdb.Set(ctx, cacheKey(req), response, c.ttl).Err(); err != nil {
		return fmt.Errorf("completion cache set failed: %w", err)
	}
	return nil
}
