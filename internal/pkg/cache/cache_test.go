package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_DisabledWithoutClient(t *testing.T) {
	assert.Nil(t, New(nil, "jc", time.Minute))
}

func TestNilCache_IsNoop(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	var dst map[string]int
	assert.False(t, c.GetJSON(ctx, "k", &dst))
	c.SetJSON(ctx, "k", map[string]int{"a": 1})
	c.Delete(ctx, "k")
}

func TestKey_StableAndDistinct(t *testing.T) {
	var c *Cache
	a := c.Key("search", "nearby", 10.0, 0, 100)
	b := c.Key("search", "nearby", 10.0, 0, 100)
	d := c.Key("search", "nearby", 5.0, 0, 100)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, d)
	assert.Contains(t, a, "jobconnect:search:")
}

func TestNewRedisClient_EmptyAddr(t *testing.T) {
	assert.Nil(t, NewRedisClient(RedisConfig{}))
}
