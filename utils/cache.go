package utils

import (
	"context"
	"fmt"
	"time"

	"dashboard/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient holds widget snapshots.
var CacheClient *redis.Client

// InitCache connects the snapshot cache client and checks it answers.
func InitCache() error {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := CacheClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connect to redis (cache): %w", err)
	}
	return nil
}

// GetCacheClient returns the snapshot cache client.
func GetCacheClient() *redis.Client {
	return CacheClient
}
