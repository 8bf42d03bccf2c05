package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"ahlan_office/internal/ports"
)

// PageCache caches rendered listing pages in redis for a short TTL so two
// operators refreshing the same table do not hammer the CRM API.
type PageCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewPageCache(cli *redis.Client, ttl time.Duration) *PageCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &PageCache{Client: cli, TTL: ttl}
}

var _ ports.PageCache = (*PageCache)(nil)

func (c *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}
	val, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *PageCache) Set(ctx context.Context, key string, value []byte) error {
	if c == nil || c.Client == nil {
		return nil
	}
	if err := c.Client.Set(ctx, key, value, c.TTL).Err(); err != nil {
		log.Printf("[CACHE][WARN] set %q: %v", key, err)
		return err
	}
	return nil
}
