package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// lastIssuedKeySlot holds the most recently issued API key.
// It is a convenience slot only: never authoritative, never a substitute
// for the persisted apikey rows, and it expires on its own.
const lastIssuedKeySlot = "keymint:last_issued_key"

// SetLastIssuedKey records the most recently issued key with a TTL.
func (c *Cache) SetLastIssuedKey(ctx context.Context, key string, ttl time.Duration) error {
	if err := c.client.Set(ctx, lastIssuedKeySlot, key, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set last issued key: %w", err)
	}
	return nil
}

// GetLastIssuedKey returns the most recently issued key, or ErrCacheMiss
// if none was recorded or the slot has expired.
func (c *Cache) GetLastIssuedKey(ctx context.Context) (string, error) {
	key, err := c.client.Get(ctx, lastIssuedKeySlot).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get last issued key: %w", err)
	}
	return key, nil
}
