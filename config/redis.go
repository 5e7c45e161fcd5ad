package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

// InitRedis initializes the Redis client used for driver location tracking
func InitRedis() error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	RDB = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := RDB.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %v", err)
	}
	return nil
}

// CloseRedis closes the Redis client on shutdown
func CloseRedis() {
	if RDB != nil {
		_ = RDB.Close()
	}
}
