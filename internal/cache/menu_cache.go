package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/hasnainyaqub/Microservice-App/internal/menu"

	"github.com/redis/go-redis/v9"
)

// MenuCache memoizes branch menus in Redis under "menu:<branch>" with a
// fixed TTL. Every operation is best-effort: a read error is a miss and a
// write error is logged and dropped, so a dead Redis never fails a request.
type MenuCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewMenuCache() *MenuCache {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}

	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	ttl := 300
	if v := os.Getenv("REDIS_TTL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = n
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	return &MenuCache{
		rdb: rdb,
		ttl: time.Duration(ttl) * time.Second,
	}
}

func menuKey(branch int) string {
	return fmt.Sprintf("menu:%d", branch)
}

// --------------------------------------------------
// Get menu from cache (absent or broken = miss)
// --------------------------------------------------
func (c *MenuCache) Get(ctx context.Context, branch int) ([]menu.Item, bool) {
	data, err := c.rdb.Get(ctx, menuKey(branch)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("menu cache read failed for branch %d: %v", branch, err)
		}
		return nil, false
	}

	var items []menu.Item
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, false
	}

	return items, true
}

// --------------------------------------------------
// Write-through (non-fatal on failure)
// --------------------------------------------------
func (c *MenuCache) Set(ctx context.Context, branch int, items []menu.Item) {
	data, err := json.Marshal(items)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, menuKey(branch), data, c.ttl).Err(); err != nil {
		log.Printf("menu cache write failed for branch %d: %v", branch, err)
	}
}

// --------------------------------------------------
// Ops surface (admin routes)
// --------------------------------------------------

// Evict removes a branch menu so the next request re-reads the store.
func (c *MenuCache) Evict(ctx context.Context, branch int) error {
	return c.rdb.Del(ctx, menuKey(branch)).Err()
}

// Status reports whether a branch menu is cached and its remaining TTL.
func (c *MenuCache) Status(ctx context.Context, branch int) (bool, time.Duration, error) {
	ttl, err := c.rdb.TTL(ctx, menuKey(branch)).Result()
	if err != nil {
		return false, 0, err
	}

	// go-redis returns -2 for a missing key, -1 for no expiry
	if ttl < 0 {
		return ttl == -1, 0, nil
	}

	return true, ttl, nil
}

func (c *MenuCache) Close() error {
	return c.rdb.Close()
}
