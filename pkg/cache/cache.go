// Package cache stores rendered artifacts so unchanged diagrams skip
// Graphviz on the next render.
//
// Entries are keyed by [ArtifactKey]: a hash of the DOT source and the
// output format. Any change to the diagram or its options changes the DOT
// source and therefore the key, so entries never need invalidation; they
// only expire.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long rendered artifacts are kept.
const DefaultTTL = 30 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the entry for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key; a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources.
	Close() error
}

// schema is bumped whenever the rendering of identical DOT source changes.
const schema = "v1"

// ArtifactKey returns the cache key for dot rendered as format.
func ArtifactKey(dot, format string) string {
	return hashKey("artifact", schema, format, dot)
}
