package cache

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/toolverse/pkg/observability"
)

// Instrumented reports cache traffic through observability.Cache().
type Instrumented struct {
	Cache
}

// Instrument wraps c. Wrapping twice is a no-op.
func Instrument(c Cache) Cache {
	if _, ok := c.(*Instrumented); ok {
		return c
	}
	return &Instrumented{Cache: c}
}

// Get retrieves a value and records a hit or miss.
func (c *Instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, hit, err := c.Cache.Get(ctx, key)
	if err == nil {
		if hit {
			observability.Cache().OnCacheHit(ctx, keyType(key))
		} else {
			observability.Cache().OnCacheMiss(ctx, keyType(key))
		}
	}
	return data, hit, err
}

// Set stores a value and records the write.
func (c *Instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.Cache.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, keyType(key), len(data))
	return nil
}

// Unwrap returns the wrapped backend.
func (c *Instrumented) Unwrap() Cache { return c.Cache }

// keyType returns the prefix of a key, skipping any scope.
func keyType(key string) string {
	for _, t := range []string{KeyTypeArtifact, KeyTypeCatalog, KeyTypeHTTP} {
		if strings.HasPrefix(key, t+":") || strings.Contains(key, ":"+t+":") {
			return t
		}
	}
	return "other"
}
