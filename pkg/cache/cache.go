// Package cache stores rendered histogram scenes and artifacts.
//
// Rendering is deterministic, so a scene or an artifact is fully identified
// by the hash of its input plus the options that shaped it. The [Keyer]
// derives those keys; a [Cache] backend stores the bytes.
//
// # Backends
//
//   - [NullCache]: stores nothing (caching disabled)
//   - [FileCache]: one file per entry under a local directory (CLI)
//   - [RedisCache]: shared cache for server deployments
//   - [MongoCache]: shared cache with a TTL index on expiry
//
// Use [Open] to build a backend from a [Config].
//
// # Keys
//
//	keyer := cache.NewDefaultKeyer()
//	sceneKey := keyer.SceneKey(specHash, cache.SceneKeyOpts{Ticks: "linear"})
//	svgKey := keyer.ArtifactKey(sceneHash, cache.ArtifactKeyOpts{Format: "svg"})
//
// A cache failure never fails a render: callers treat errors from Get as a
// miss and ignore errors from Set.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Entry lifetimes.
const (
	TTLScene    = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Key types reported to cache hooks.
const (
	KeyTypeScene    = "scene"
	KeyTypeArtifact = "artifact"
)
