package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

func LoadRedisConfig() (*redis.Options, error) {
	redisURL := Config.RedisUri
	if redisURL == "" {
		return nil, errors.New("REDIS_URL environment variable not set")
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.PoolSize = 10
	opts.MinIdleConns = 5
	opts.PoolTimeout = 4 * time.Second

	return opts, nil
}
