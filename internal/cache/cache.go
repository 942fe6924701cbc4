// Package cache provides the response cache used by GET endpoints. The Redis
// implementation is shared across instances; the memory implementation is
// process-local and only suitable for single-instance deployments and tests.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned when a key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache is a best-effort byte store with TTL and prefix invalidation.
// Failures must never fail the request path; callers log and move on.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	InvalidatePrefix(ctx context.Context, prefix string) error
}
