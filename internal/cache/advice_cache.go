// backend-go/internal/cache/advice_cache.go
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lpgflow/backend-go/internal/config"
)

const adviceKeyPrefix = "advice"

// AdviceCache stores generated advisory texts keyed by the request payload,
// so repeated dashboard loads don't re-issue identical collaborator calls.
// A manual recalculate bypasses the cache but stays idempotent.
type AdviceCache interface {
	Get(ctx context.Context, kind, payload string) (string, bool, error)
	Set(ctx context.Context, kind, payload, advice string) error
	Invalidate(ctx context.Context, kind, payload string) error
}

type redisAdviceCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopAdviceCache struct{}

func NewAdviceCache(cfg config.CacheConfig) (AdviceCache, error) {
	if !cfg.Enabled {
		return &noopAdviceCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisAdviceCache{client: client, ttl: ttl}, nil
}

func NewNoopAdviceCache() AdviceCache {
	return &noopAdviceCache{}
}

func (c *redisAdviceCache) Get(ctx context.Context, kind, payload string) (string, bool, error) {
	advice, err := c.client.Get(ctx, buildAdviceKey(kind, payload)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get failed: %w", err)
	}
	return advice, true, nil
}

func (c *redisAdviceCache) Set(ctx context.Context, kind, payload, advice string) error {
	if err := c.client.Set(ctx, buildAdviceKey(kind, payload), advice, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisAdviceCache) Invalidate(ctx context.Context, kind, payload string) error {
	return c.client.Del(ctx, buildAdviceKey(kind, payload)).Err()
}

func (n *noopAdviceCache) Get(ctx context.Context, kind, payload string) (string, bool, error) {
	return "", false, nil
}

func (n *noopAdviceCache) Set(ctx context.Context, kind, payload, advice string) error {
	return nil
}

func (n *noopAdviceCache) Invalidate(ctx context.Context, kind, payload string) error {
	return nil
}

func buildAdviceKey(kind, payload string) string {
	sum := sha1.Sum([]byte(payload))
	return fmt.Sprintf("%s:%s:%s", adviceKeyPrefix, kind, hex.EncodeToString(sum[:]))
}
