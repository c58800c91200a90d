package cache

import (
	"context"
	"time"
)

// LayeredStore is a two-level cache: L1 in-memory for hot entries, L2 Redis
// shared across instances. Writes go through both; reads prefer L1.
type LayeredStore struct {
	mem   *MemoryStore
	redis *RedisStore
	l1TTL time.Duration
}

// NewLayeredStore creates a layered cache over an existing Redis store.
func NewLayeredStore(redisStore *RedisStore, opts ...LayeredOption) *LayeredStore {
	cfg := &LayeredConfig{
		MemoryMaxSize: 1000,
		L1TTL:         10 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &LayeredStore{
		mem:   NewMemoryStore(WithMemoryMaxSize(cfg.MemoryMaxSize)),
		redis: redisStore,
		l1TTL: cfg.L1TTL,
	}
}

func (ls *LayeredStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if err := ls.redis.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	l1 := ttl
	if l1 > ls.l1TTL {
		l1 = ls.l1TTL
	}
	_ = ls.mem.Set(ctx, key, value, l1)
	return nil
}

func (ls *LayeredStore) Get(ctx context.Context, key string, dest interface{}) error {
	if err := ls.mem.Get(ctx, key, dest); err == nil {
		return nil
	}
	if err := ls.redis.Get(ctx, key, dest); err != nil {
		return err
	}
	// L1 TTL is capped so a shared invalidation propagates quickly.
	_ = ls.mem.Set(ctx, key, dest, ls.l1TTL)
	return nil
}

func (ls *LayeredStore) Delete(ctx context.Context, keys ...string) error {
	_ = ls.mem.Delete(ctx, keys...)
	return ls.redis.Delete(ctx, keys...)
}

func (ls *LayeredStore) Reset(ctx context.Context) error {
	_ = ls.mem.Reset(ctx)
	return ls.redis.Reset(ctx)
}

// Close closes both layers.
func (ls *LayeredStore) Close() error {
	_ = ls.mem.Close()
	return ls.redis.Close()
}
