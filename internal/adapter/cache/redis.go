package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/solanera/ventaflow/internal/domain/model"
)

const defaultTTL = 30 * time.Second

// RedisCache caches step listings in Redis with a short TTL. Cache failures
// degrade to a miss, never to a request failure.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCache constructs RedisCache for the given address.
func NewRedisCache(addr string, ttl time.Duration, logger *slog.Logger) *RedisCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

// Close releases the underlying Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func documentsKey(stepID int64) string {
	return fmt.Sprintf("step:%d:documents", stepID)
}

func commentsKey(stepID int64) string {
	return fmt.Sprintf("step:%d:comments", stepID)
}

func (c *RedisCache) GetDocuments(ctx context.Context, stepID int64) ([]model.Document, bool) {
	var docs []model.Document
	if !c.get(ctx, documentsKey(stepID), &docs) {
		return nil, false
	}
	return docs, true
}

func (c *RedisCache) SetDocuments(ctx context.Context, stepID int64, docs []model.Document) {
	c.set(ctx, documentsKey(stepID), docs)
}

func (c *RedisCache) GetComments(ctx context.Context, stepID int64) ([]model.Comment, bool) {
	var comments []model.Comment
	if !c.get(ctx, commentsKey(stepID), &comments) {
		return nil, false
	}
	return comments, true
}

func (c *RedisCache) SetComments(ctx context.Context, stepID int64, comments []model.Comment) {
	c.set(ctx, commentsKey(stepID), comments)
}

func (c *RedisCache) InvalidateStep(ctx context.Context, stepID int64) {
	if err := c.client.Del(ctx, documentsKey(stepID), commentsKey(stepID)).Err(); err != nil {
		c.logger.Warn("cache invalidate failed", slog.Int64("step_id", stepID), slog.String("error", err.Error()))
	}
}

func (c *RedisCache) get(ctx context.Context, key string, dest any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Warn("cache decode failed", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}

func (c *RedisCache) set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
