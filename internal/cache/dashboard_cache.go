package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"careercompass/internal/model"
)

// DashboardCache stores computed dashboard views per (user, mode) with a
// short TTL. Submitting or deleting an assessment invalidates all modes.
type DashboardCache interface {
	Get(ctx context.Context, userID string, mode model.ViewMode) (*model.Dashboard, error)
	Set(ctx context.Context, userID string, dashboard *model.Dashboard) error
	Invalidate(ctx context.Context, userID string) error
}

type dashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDashboardCache(client *redis.Client) DashboardCache {
	return &dashboardCache{
		client: client,
		ttl:    5 * time.Minute,
	}
}

func dashboardKey(userID string, mode model.ViewMode) string {
	return fmt.Sprintf("dashboard:%s:%s", userID, mode)
}

func (c *dashboardCache) Get(ctx context.Context, userID string, mode model.ViewMode) (*model.Dashboard, error) {
	data, err := c.client.Get(ctx, dashboardKey(userID, mode)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var dashboard model.Dashboard
	if err := json.Unmarshal([]byte(data), &dashboard); err != nil {
		return nil, nil
	}
	return &dashboard, nil
}

func (c *dashboardCache) Set(ctx context.Context, userID string, dashboard *model.Dashboard) error {
	data, err := json.Marshal(dashboard)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, dashboardKey(userID, dashboard.Mode), data, c.ttl).Err()
}

func (c *dashboardCache) Invalidate(ctx context.Context, userID string) error {
	keys := []string{
		dashboardKey(userID, model.ViewModeLatest),
		dashboardKey(userID, model.ViewModeTrend),
		dashboardKey(userID, model.ViewModeOverall),
	}
	return c.client.Del(ctx, keys...).Err()
}
