package cache

import (
	"errors"
	"strings"

	tverrors "github.com/matzehuels/toolverse/pkg/errors"
)

// ErrClosed is returned by operations on a closed MemoryCache.
var ErrClosed = errors.New("cache closed")

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// Backends lists the accepted backend names.
var Backends = []string{BackendMemory, BackendFile, BackendRedis, BackendNone}

// ValidateBackend checks a backend name.
func ValidateBackend(name string) error {
	for _, b := range Backends {
		if name == b {
			return nil
		}
	}
	return tverrors.New(tverrors.ErrCodeInvalidConfig,
		"unknown cache backend %q (must be one of: %s)", name, strings.Join(Backends, ", "))
}
