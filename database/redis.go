package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/straddleshift/configapi/config"
	"github.com/straddleshift/configapi/shared/zaplogger"
)

func ConnectRedis(cfg *config.Config) (*redis.Client, error) {

	zaplogger.Info(config.SingleLine)
	zaplogger.Info("Connecting to Redis")

	// Setup Redis
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	redisClient := redis.NewClient(redisOpts)

	// Check Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = redisClient.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}

	zaplogger.Info("  * connected")

	return redisClient, nil

}
