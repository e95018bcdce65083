package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// CachedSnapshot is a widget payload as last fetched successfully.
type CachedSnapshot struct {
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type SnapshotCache interface {
	Set(ctx context.Context, widget string, snap CachedSnapshot) error
	Get(ctx context.Context, widget string) (CachedSnapshot, bool, error)
}

// NopCache stores nothing.
type NopCache struct{}

func (NopCache) Set(ctx context.Context, widget string, snap CachedSnapshot) error { return nil }

func (NopCache) Get(ctx context.Context, widget string) (CachedSnapshot, bool, error) {
	return CachedSnapshot{}, false, nil
}

const snapshotKeyPrefix = "dashboard:widget:"

func snapshotKey(widget string) string {
	return fmt.Sprintf("%s%s", snapshotKeyPrefix, widget)
}

type RedisSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSnapshotCache(client *redis.Client, ttl time.Duration) *RedisSnapshotCache {
	return &RedisSnapshotCache{client: client, ttl: ttl}
}

func (c *RedisSnapshotCache) Set(ctx context.Context, widget string, snap CachedSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, snapshotKey(widget), data, c.ttl).Err()
}

func (c *RedisSnapshotCache) Get(ctx context.Context, widget string) (CachedSnapshot, bool, error) {
	val, err := c.client.Get(ctx, snapshotKey(widget)).Bytes()
	if err == redis.Nil {
		return CachedSnapshot{}, false, nil
	}
	if err != nil {
		return CachedSnapshot{}, false, err
	}

	var snap CachedSnapshot
	if err := json.Unmarshal(val, &snap); err != nil {
		return CachedSnapshot{}, false, err
	}
	return snap, true, nil
}
