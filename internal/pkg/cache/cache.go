package cache

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores JSON values in Redis. A nil *Cache is a valid, disabled cache.
type Cache struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

func New(rdb *redis.Client, prefix string, ttl time.Duration) *Cache {
	if rdb == nil || ttl <= 0 {
		return nil
	}
	return &Cache{rdb: rdb, ttl: ttl, prefix: prefix}
}

// Key builds a stable key from its parts.
func (c *Cache) Key(namespace string, parts ...any) string {
	raw := make([]string, 0, len(parts))
	for _, p := range parts {
		raw = append(raw, fmt.Sprint(p))
	}
	sum := sha1.Sum([]byte(strings.Join(raw, "|")))
	prefix := "jobconnect"
	if c != nil && c.prefix != "" {
		prefix = c.prefix
	}
	return fmt.Sprintf("%s:%s:%x", prefix, namespace, sum[:])
}

// GetJSON reports whether key was found and decoded into dst.
func (c *Cache) GetJSON(ctx context.Context, key string, dst any) bool {
	if c == nil {
		return false
	}
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("cache_get_failed key=%s error=%q", key, err.Error())
		}
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		log.Printf("cache_decode_failed key=%s error=%q", key, err.Error())
		return false
	}
	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		log.Printf("cache_set_failed key=%s error=%q", key, err.Error())
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache_delete_failed keys=%v error=%q", keys, err.Error())
	}
}
