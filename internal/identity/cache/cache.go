package cache

import (
	"context"
	"time"
)

// Cache is a TTL'd byte cache with tag-based invalidation. Entries may
// carry tags; InvalidateTag drops every entry tagged with the value.
// A miss is (nil, nil). Cached values are never authoritative for
// security decisions; callers re-validate every hit.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...string) error
	Invalidate(ctx context.Context, key string) error
	InvalidateTag(ctx context.Context, tag string) error
}
