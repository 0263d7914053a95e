package cache

import (
	"context"
	"time"
)

// Cache is the contract for the cache layer. Implementations live in
// internal/infrastructure/cache so the swap (Redis, in-memory) stays invisible
// to repositories.
type Cache interface {
	// Get reads key into dest. found=false means cache miss; dest is untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
