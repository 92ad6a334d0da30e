package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient pings the server and returns nil when it is unreachable.
// Callers degrade by disabling caching and rate limiting.
func NewRedisClient(cfg RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis_unavailable addr=%s error=%q", cfg.Addr, err.Error())
		_ = client.Close()
		return nil
	}

	log.Printf("redis_connected addr=%s db=%d", cfg.Addr, cfg.DB)
	return client
}
