package cache

import (
	"context"
	"errors"
	"time"
)

// ErrClosed is returned by implementations used after Close.
var ErrClosed = errors.New("cache: closed")

// Cache is the contract for the cache layer, so the backend (Redis, in-memory)
// can be swapped by configuration.
type Cache interface {
	// Get reads key and unmarshals it into dest.
	// found = false on a miss, in which case dest is untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value (JSON encoded) under key for ttl. ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys; missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the backend is reachable.
	Ping(ctx context.Context) error

	Close() error
}
