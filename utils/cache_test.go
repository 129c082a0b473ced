package utils

import (
	"context"
	"testing"
	"time"
)

func TestMemoryTokenCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	c := NewMemoryTokenCache()
	c.now = func() time.Time { return now }

	if ok, _ := c.Has(ctx, "k"); ok {
		t.Fatalf("empty cache reported a hit")
	}
	c.Put(ctx, "k", now.Add(time.Minute))
	if ok, _ := c.Has(ctx, "k"); !ok {
		t.Fatalf("expected hit after Put")
	}

	now = now.Add(5 * time.Minute)
	if ok, _ := c.Has(ctx, "k"); ok {
		t.Fatalf("entry should have expired with its token")
	}

	// A hit slides the idle window by AuthCacheTTL.
	c.Put(ctx, "k", now.Add(time.Hour))
	now = now.Add(30 * time.Second)
	c.Has(ctx, "k")
	now = now.Add(AuthCacheTTL - time.Second)
	if ok, _ := c.Has(ctx, "k"); !ok {
		t.Fatalf("expected sliding refresh to keep the entry")
	}

	c.Drop(ctx, "k")
	if ok, _ := c.Has(ctx, "k"); ok {
		t.Fatalf("expected miss after Drop")
	}
}

func TestMemoryTokenCacheStopsAtTokenExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	c := NewMemoryTokenCache()
	c.now = func() time.Time { return now }

	expiresAt := now.Add(3 * time.Minute)
	c.Put(ctx, "k", expiresAt)
	for now.Add(time.Minute).Before(expiresAt) {
		now = now.Add(time.Minute)
		if ok, _ := c.Has(ctx, "k"); !ok {
			t.Fatalf("miss at %v before token expiry", now)
		}
	}
	now = expiresAt
	if ok, _ := c.Has(ctx, "k"); ok {
		t.Fatalf("hits must not extend an entry past its token expiry")
	}

	c.Put(ctx, "stale", now.Add(-time.Second))
	if ok, _ := c.Has(ctx, "stale"); ok {
		t.Fatalf("entry put with a past expiry reported a hit")
	}
}

func TestHealthMonitorWithoutServices(t *testing.T) {
	m := NewHealthMonitor(nil, nil)
	status := m.Check(context.Background())
	if !status.Healthy() || status.Mongo != nil || status.Redis != nil {
		t.Fatalf("unexpected status %+v", status)
	}
	if m.Status().CheckedAt != status.CheckedAt {
		t.Fatalf("status not stored")
	}
}
