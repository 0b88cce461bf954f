package cache

import (
	"context"
	"fmt"
	"time"

	"agent-portal/internal/pkg/config"
	"agent-portal/internal/pkg/errs"
	"agent-portal/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// RedisCache implements the shared.Cache port: per-agent, per-topic entries
// that mutations invalidate rather than overwrite.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisCache{
		client: client,
		ttl:    cfg.CacheTTL,
	}
}

var _ shared.Cache = (*RedisCache)(nil)

func Key(agentKey, topic string) string {
	return fmt.Sprintf("cache:%s:%s", topic, agentKey)
}

func (c *RedisCache) Get(ctx context.Context, agentKey, topic string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, Key(agentKey, topic)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrap(err, "redis get failed")
	}
	return payload, true, nil
}

func (c *RedisCache) Set(ctx context.Context, agentKey, topic string, payload []byte) error {
	if err := c.client.Set(ctx, Key(agentKey, topic), payload, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "redis set failed")
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, agentKey string, topics ...string) error {
	keys := make([]string, 0, len(topics))
	for _, topic := range topics {
		keys = append(keys, Key(agentKey, topic))
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errs.Wrap(err, "redis del failed")
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
