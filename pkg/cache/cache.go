package cache

import (
	"context"
	"errors"
	"time"
)

var (
	ErrCacheMiss = errors.New("cache: key not found")
)

// Store is a time-bounded key/value cache. Values are serialized to JSON so
// in-memory and Redis backends behave identically. Staleness up to the entry
// TTL is acceptable by design; the cache is a latency optimization, never a
// correctness mechanism.
type Store interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	Reset(ctx context.Context) error
	Close() error
}
