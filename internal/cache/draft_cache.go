package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"careercompass/internal/session"
)

// DraftCache checkpoints in-progress assessment snapshots so a session can
// resume after interruption. A draft that fails to parse is treated as no
// draft: the session starts fresh rather than erroring.
type DraftCache interface {
	Set(ctx context.Context, userID string, snap session.Snapshot) error
	Get(ctx context.Context, userID string) (*session.Snapshot, error)
	Delete(ctx context.Context, userID string) error
}

type draftCache struct {
	client *redis.Client
	logger *zap.Logger
	ttl    time.Duration
}

func NewDraftCache(client *redis.Client, logger *zap.Logger) DraftCache {
	return &draftCache{
		client: client,
		logger: logger,
		ttl:    7 * 24 * time.Hour,
	}
}

func draftKey(userID string) string {
	return "draft:" + userID
}

func (c *draftCache) Set(ctx context.Context, userID string, snap session.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, draftKey(userID), data, c.ttl).Err()
}

func (c *draftCache) Get(ctx context.Context, userID string) (*session.Snapshot, error) {
	data, err := c.client.Get(ctx, draftKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap session.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		c.logger.Warn("discarding unparseable draft",
			zap.String("userId", userID),
			zap.Error(err))
		return nil, nil
	}
	return &snap, nil
}

func (c *draftCache) Delete(ctx context.Context, userID string) error {
	return c.client.Del(ctx, draftKey(userID)).Err()
}
