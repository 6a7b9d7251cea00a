package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// AIResponseCache stores upstream AI responses keyed by a digest of the
// request signature. Entries expire by TTL, which bounds the cache; an
// unbounded in-process map is not an acceptable substitute.
type AIResponseCache interface {
	Get(ctx context.Context, signature string) (string, bool, error)
	Set(ctx context.Context, signature, response string) error
}

type aiResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAIResponseCache(client *redis.Client, ttl time.Duration) AIResponseCache {
	return &aiResponseCache{client: client, ttl: ttl}
}

func aiKey(signature string) string {
	sum := sha256.Sum256([]byte(signature))
	return "ai:resp:" + hex.EncodeToString(sum[:])
}

func (c *aiResponseCache) Get(ctx context.Context, signature string) (string, bool, error) {
	data, err := c.client.Get(ctx, aiKey(signature)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return data, true, nil
}

func (c *aiResponseCache) Set(ctx context.Context, signature, response string) error {
	return c.client.Set(ctx, aiKey(signature), response, c.ttl).Err()
}
