package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/door2door/taskmarket-api/internal/api/metrics"
	"github.com/door2door/taskmarket-api/internal/core/domain"
)

const taskCacheTTL = 5 * time.Minute

// TaskCache caches task views backed by Redis.
// Key format: task:<id>
type TaskCache struct {
	client *redis.Client
}

// NewTaskCache creates a TaskCache wrapping the given Redis client.
func NewTaskCache(client *redis.Client) *TaskCache {
	return &TaskCache{client: client}
}

// Find returns the cached task, or (nil, nil) when the key is absent.
func (c *TaskCache) Find(ctx context.Context, id int64) (*domain.Task, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.TaskCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("task cache get: %w", err)
	}

	var t domain.Task
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("task cache decode: %w", err)
	}
	metrics.TaskCacheTotal.WithLabelValues("hit").Inc()
	return &t, nil
}

// Store caches the task view (expires after taskCacheTTL).
func (c *TaskCache) Store(ctx context.Context, t *domain.Task) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("task cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(t.ID), raw, taskCacheTTL).Err()
}

// Invalidate drops the cached view after a mutation.
func (c *TaskCache) Invalidate(ctx context.Context, id int64) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *TaskCache) key(id int64) string {
	return fmt.Sprintf("task:%d", id)
}
