package config

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
)

var Redis *redis.Client

// InitRedis connects the client used for revoked-session tracking.
func InitRedis() error {
	db, _ := strconv.Atoi(Getenv("REDIS_DB", "0"))

	Redis = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", Getenv("REDIS_HOST", "localhost"), Getenv("REDIS_PORT", "6379")),
		Password: Getenv("REDIS_PASSWORD", ""),
		DB:       db,
	})

	if _, err := Redis.Ping(context.Background()).Result(); err != nil {
		return fmt.Errorf("redis ping failed: %v", err)
	}
	return nil
}
