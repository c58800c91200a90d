package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type memoryItem struct {
	data     []byte
	expireAt time.Time
}

func (m *memoryItem) expired(now time.Time) bool {
	return !m.expireAt.IsZero() && now.After(m.expireAt)
}

// MemoryStore implements Store with bounded in-memory storage. When capacity
// is reached the least recently used key is evicted; a background sweep drops
// expired entries so abandoned keys do not accumulate.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]*memoryItem
	access map[string]time.Time

	maxSize int
	sweep   *time.Ticker
	done    chan struct{}

	now func() time.Time // overridable for tests
}

// NewMemoryStore creates a bounded in-memory cache.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	cfg := &MemoryConfig{
		MaxSize:         1000,
		CleanupInterval: 5 * time.Minute,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	ms := &MemoryStore{
		data:    make(map[string]*memoryItem),
		access:  make(map[string]time.Time),
		maxSize: cfg.MaxSize,
		sweep:   time.NewTicker(cfg.CleanupInterval),
		done:    make(chan struct{}),
		now:     time.Now,
	}

	go ms.sweepExpired()
	return ms
}

func (ms *MemoryStore) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, exists := ms.data[key]; !exists && len(ms.data) >= ms.maxSize {
		ms.evictLRU()
	}

	var expireAt time.Time
	if ttl > 0 {
		expireAt = ms.now().Add(ttl)
	}
	ms.data[key] = &memoryItem{data: data, expireAt: expireAt}
	ms.access[key] = ms.now()
	return nil
}

func (ms *MemoryStore) Get(_ context.Context, key string, dest interface{}) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	item, exists := ms.data[key]
	if !exists || item.expired(ms.now()) {
		if exists {
			delete(ms.data, key)
			delete(ms.access, key)
		}
		return ErrCacheMiss
	}

	ms.access[key] = ms.now()
	return json.Unmarshal(item.data, dest)
}

func (ms *MemoryStore) Delete(_ context.Context, keys ...string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, key := range keys {
		delete(ms.data, key)
		delete(ms.access, key)
	}
	return nil
}

// Reset drops all entries.
func (ms *MemoryStore) Reset(_ context.Context) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.data = make(map[string]*memoryItem)
	ms.access = make(map[string]time.Time)
	return nil
}

// Len reports the number of stored entries, expired or not.
func (ms *MemoryStore) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.data)
}

func (ms *MemoryStore) evictLRU() {
	var oldestKey string
	var oldestTime time.Time

	for key, accessTime := range ms.access {
		if oldestKey == "" || accessTime.Before(oldestTime) {
			oldestTime = accessTime
			oldestKey = key
		}
	}
	if oldestKey != "" {
		delete(ms.data, oldestKey)
		delete(ms.access, oldestKey)
	}
}

func (ms *MemoryStore) sweepExpired() {
	for {
		select {
		case <-ms.done:
			return
		case <-ms.sweep.C:
			ms.mu.Lock()
			now := ms.now()
			for key, item := range ms.data {
				if item.expired(now) {
					delete(ms.data, key)
					delete(ms.access, key)
				}
			}
			ms.mu.Unlock()
		}
	}
}

// Close stops the background sweep.
func (ms *MemoryStore) Close() error {
	ms.sweep.Stop()
	select {
	case <-ms.done:
	default:
		close(ms.done)
	}
	return nil
}
