package config

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
)

// Redis is the shared Redis client, nil when REDIS_ADDR is unset
var Redis *redis.Client

// Ctx is the background context used for cache calls
var Ctx = context.Background()

// InitRedis connects to Redis. The cache is optional: without REDIS_ADDR
// the client stays nil and callers skip caching.
func InitRedis() error {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := client.Ping(Ctx).Err(); err != nil {
		return err
	}

	Redis = client
	return nil
}
