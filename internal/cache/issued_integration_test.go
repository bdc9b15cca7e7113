//go:build integration

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/keymint/keymint/internal/testutil"
)

func newCacheTestEnv(t *testing.T) (context.Context, *Cache) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	redisURL := testutil.RequireEnv(t, "REDIS_URL")

	c, err := New(ctx, redisURL)
	if err != nil {
		t.Fatalf("connect redis: %v", err)
	}
	t.Cleanup(func() {
		_ = c.Close()
	})

	if err := testutil.FlushRedis(ctx, c.Client()); err != nil {
		t.Fatalf("flush redis: %v", err)
	}

	return ctx, c
}

func TestIntegrationLastIssuedKey(t *testing.T) {
	ctx, c := newCacheTestEnv(t)

	// Empty slot reports a miss.
	if _, err := c.GetLastIssuedKey(ctx); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss on empty slot, got: %v", err)
	}

	const key = "sk-sm-v1-4F8D2E1B9C7A5F3D2E1B9C7A5F3D2E1B"
	if err := c.SetLastIssuedKey(ctx, key, time.Minute); err != nil {
		t.Fatalf("SetLastIssuedKey failed: %v", err)
	}

	got, err := c.GetLastIssuedKey(ctx)
	if err != nil {
		t.Fatalf("GetLastIssuedKey failed: %v", err)
	}
	if got != key {
		t.Errorf("GetLastIssuedKey = %q, want %q", got, key)
	}

	// The slot is transient: overwriting replaces it entirely.
	const newer = "sk-sm-v1-AAAA2E1B9C7A5F3D2E1B9C7A5F3D2E1B"
	if err := c.SetLastIssuedKey(ctx, newer, time.Minute); err != nil {
		t.Fatalf("SetLastIssuedKey failed: %v", err)
	}
	got, err = c.GetLastIssuedKey(ctx)
	if err != nil {
		t.Fatalf("GetLastIssuedKey failed: %v", err)
	}
	if got != newer {
		t.Errorf("GetLastIssuedKey = %q, want %q", got, newer)
	}
}
