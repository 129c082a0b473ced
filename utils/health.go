package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is a snapshot of the optional backing services. A nil field
// means the service is not configured.
type HealthStatus struct {
	Mongo     *bool     `json:"mongo,omitempty"`
	Redis     *bool     `json:"redis,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Healthy reports whether every configured service answered its last ping.
func (h HealthStatus) Healthy() bool {
	return (h.Mongo == nil || *h.Mongo) && (h.Redis == nil || *h.Redis)
}

// HealthMonitor pings Redis and MongoDB and keeps the latest result.
type HealthMonitor struct {
	redis *redis.Client
	mongo *mongo.Client

	mu      sync.RWMutex
	current HealthStatus
}

// NewHealthMonitor watches the given clients; either may be nil.
func NewHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client) *HealthMonitor {
	return &HealthMonitor{redis: redisClient, mongo: mongoClient, current: HealthStatus{CheckedAt: time.Now()}}
}

func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check pings every configured service once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	status := HealthStatus{CheckedAt: time.Now()}
	if m.redis != nil {
		ok := m.redis.Ping(ctx).Err() == nil
		status.Redis = &ok
	}
	if m.mongo != nil {
		ok := m.mongo.Ping(ctx, nil) == nil
		status.Mongo = &ok
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start re-checks every interval until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	go func() {
		m.Check(ctx)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
