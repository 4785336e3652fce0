// Package cache stores rendered charts and loaded catalogs.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [MemoryCache]: an in-process map, the server default
//   - [RedisCache]: shared across server replicas
//   - [NullCache]: caching disabled
//
// [Open] picks a backend by name. [Instrument] wraps any backend so hits,
// misses and writes are reported through the observability cache hooks.
//
// # Keys
//
// A [Keyer] derives keys from the inputs of a cached value. Artifact keys
// hash every option that changes the output, so two requests share an entry
// only if they would render identical bytes.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the backend.
	Close() error
}

// Default lifetimes.
const (
	TTLCatalog  = 10 * time.Minute
	TTLArtifact = 24 * time.Hour
	TTLHTTP     = time.Hour
)

// Key prefixes, also used as the keyType of cache hooks.
const (
	KeyTypeHTTP     = "http"
	KeyTypeCatalog  = "catalog"
	KeyTypeArtifact = "artifact"
)

// Keyer generates cache keys.
type Keyer interface {
	// HTTPKey keys a raw HTTP response.
	HTTPKey(namespace, key string) string
	// CatalogKey keys a loaded catalog by source description.
	CatalogKey(source string) string
	// ArtifactKey keys a rendered output by catalog content hash and options.
	ArtifactKey(catalogHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts lists every option that changes a rendered output.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	VizType  string  `json:"viz_type"`
	Focus    string  `json:"focus,omitempty"`
	Tool     string  `json:"tool,omitempty"`
	AtMS     int64   `json:"at_ms"`
	Theme    string  `json:"theme"`
	Radius   float64 `json:"radius"`
	Duration int64   `json:"duration_ms,omitempty"`
	Detailed bool    `json:"detailed,omitempty"`
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) HTTPKey(namespace, key string) string {
	return KeyTypeHTTP + ":" + namespace + ":" + key
}

func (DefaultKeyer) CatalogKey(source string) string {
	return hashKey(KeyTypeCatalog, source)
}

func (DefaultKeyer) ArtifactKey(catalogHash string, opts ArtifactKeyOpts) string {
	return hashKey(KeyTypeArtifact, catalogHash, opts)
}
