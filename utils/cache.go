package utils

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/mechriz/zen-fit/config"

	"github.com/go-redis/redis/v8"
)

// TokenCache remembers portal token hashes that were already validated.
// Entries slide by AuthCacheTTL on every hit but never outlive the
// expiresAt given to Put.
type TokenCache interface {
	Has(ctx context.Context, key string) (bool, error)
	Put(ctx context.Context, key string, expiresAt time.Time) error
	Drop(ctx context.Context, key string) error
}

// slidingTTL is how long an entry may live from now, capped at expiresAt.
func slidingTTL(now, expiresAt time.Time) time.Duration {
	return min(AuthCacheTTL, expiresAt.Sub(now))
}

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache connects the Redis client used for authorization caching.
func InitAuthCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis (Auth Cache): %w", err)
	}
	AuthCacheClient = client
	return nil
}

// RedisTokenCache stores validated token hashes in Redis with a sliding TTL.
type RedisTokenCache struct {
	client *redis.Client
}

func NewRedisTokenCache(client *redis.Client) *RedisTokenCache {
	return &RedisTokenCache{client: client}
}

func (r *RedisTokenCache) Has(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Get(ctx, AuthCachePrefix+key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	unix, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, r.Drop(ctx, key)
	}
	ttl := slidingTTL(time.Now(), time.Unix(unix, 0))
	if ttl <= 0 {
		return false, r.Drop(ctx, key)
	}
	if err := r.client.Expire(ctx, AuthCachePrefix+key, ttl).Err(); err != nil {
		return true, fmt.Errorf("failed to refresh auth cache TTL: %w", err)
	}
	return true, nil
}

// Put stores the token's expiry as the value so hits can enforce it.
func (r *RedisTokenCache) Put(ctx context.Context, key string, expiresAt time.Time) error {
	ttl := slidingTTL(time.Now(), expiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, AuthCachePrefix+key, strconv.FormatInt(expiresAt.Unix(), 10), ttl).Err()
}

func (r *RedisTokenCache) Drop(ctx context.Context, key string) error {
	return r.client.Del(ctx, AuthCachePrefix+key).Err()
}

// MemoryTokenCache is the in-process fallback used when Redis is not configured.
type MemoryTokenCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	until     time.Time
	expiresAt time.Time
}

func NewMemoryTokenCache() *MemoryTokenCache {
	return &MemoryTokenCache{entries: make(map[string]memoryEntry), now: time.Now}
}

func (m *MemoryTokenCache) Has(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	now := m.now()
	if !now.Before(e.until) || !now.Before(e.expiresAt) {
		delete(m.entries, key)
		return false, nil
	}
	e.until = now.Add(slidingTTL(now, e.expiresAt))
	m.entries[key] = e
	return true, nil
}

func (m *MemoryTokenCache) Put(_ context.Context, key string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.entries[key] = memoryEntry{until: now.Add(slidingTTL(now, expiresAt)), expiresAt: expiresAt}
	return nil
}

func (m *MemoryTokenCache) Drop(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
