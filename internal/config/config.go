// Package config loads the toolverse server configuration.
//
// Values are layered: defaults, then an optional YAML file, then
// TOOLVERSE_* environment variables. Command-line flags are applied by the
// caller on top of the loaded value.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/matzehuels/toolverse/pkg/cache"
	"github.com/matzehuels/toolverse/pkg/catalog"
	"github.com/matzehuels/toolverse/pkg/errors"
	"github.com/matzehuels/toolverse/pkg/pipeline"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "TOOLVERSE_"

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "toolverse.yml"

// Config is the top-level server configuration.
type Config struct {
	Addr    string      `yaml:"addr" koanf:"addr"`
	Catalog string      `yaml:"catalog" koanf:"catalog"`
	Cache   CacheConfig `yaml:"cache" koanf:"cache"`
	CORS    CORSConfig  `yaml:"cors" koanf:"cors"`
	Metrics bool        `yaml:"metrics" koanf:"metrics"`
	Chart   ChartConfig `yaml:"chart" koanf:"chart"`
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	Backend    string `yaml:"backend" koanf:"backend"`
	Dir        string `yaml:"dir,omitempty" koanf:"dir"`
	RedisURL   string `yaml:"redis_url,omitempty" koanf:"redis_url"`
	TTL        string `yaml:"ttl" koanf:"ttl"` // catalog TTL, Go duration syntax
	MaxEntries int    `yaml:"max_entries,omitempty" koanf:"max_entries"`
}

// CORSConfig controls cross-origin access to the API.
type CORSConfig struct {
	AllowAll bool     `yaml:"allow_all" koanf:"allow_all"`
	Origins  []string `yaml:"origins,omitempty" koanf:"origins"`
}

// ChartConfig holds chart defaults for the chart endpoints.
type ChartConfig struct {
	Radius     float64 `yaml:"radius" koanf:"radius"`
	DurationMS int64   `yaml:"duration_ms" koanf:"duration_ms"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Addr:    ":8080",
		Catalog: catalog.BuiltinURI,
		Cache: CacheConfig{
			Backend: cache.BackendMemory,
			TTL:     cache.TTLCatalog.String(),
		},
		CORS:    CORSConfig{AllowAll: true},
		Metrics: true,
		Chart: ChartConfig{
			Radius:     pipeline.DefaultRadius,
			DurationMS: 750,
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (TOOLVERSE_*). A missing file is not an
// error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading config %s", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "unmarshalling config")
	}
	return cfg, nil
}

// envKey maps TOOLVERSE_CACHE_REDIS_URL to cache.redis_url.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range []string{"cache", "cors", "chart"} {
		if strings.HasPrefix(key, section+"_") {
			return section + "." + strings.TrimPrefix(key, section+"_")
		}
	}
	return key
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "addr is required")
	}
	if err := cache.ValidateBackend(c.Cache.Backend); err != nil {
		return err
	}
	if c.Cache.Backend == cache.BackendRedis && c.Cache.RedisURL == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_url is required for the redis backend")
	}
	if _, err := c.CatalogTTL(); err != nil {
		return err
	}
	if c.Cache.MaxEntries < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.max_entries must be non-negative")
	}
	if c.Chart.Radius <= 0 || c.Chart.Radius > pipeline.MaxRadius {
		return errors.New(errors.ErrCodeInvalidConfig, "chart.radius must be in (0, %g]", pipeline.MaxRadius)
	}
	if c.Chart.DurationMS < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "chart.duration_ms must be non-negative")
	}
	if _, err := catalog.Open(c.Catalog); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "catalog")
	}
	return nil
}

// CatalogTTL parses cache.ttl. An empty value selects the default.
func (c *Config) CatalogTTL() (time.Duration, error) {
	if c.Cache.TTL == "" {
		return cache.TTLCatalog, nil
	}
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil || d <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "cache.ttl %q is not a positive duration", c.Cache.TTL)
	}
	return d, nil
}

// CacheOpenConfig converts the cache section for cache.Open. The file
// backend defaults to [CacheDir].
func (c *Config) CacheOpenConfig() cache.Config {
	dir := c.Cache.Dir
	if dir == "" && c.Cache.Backend == cache.BackendFile {
		dir, _ = CacheDir()
	}
	return cache.Config{
		Backend:    c.Cache.Backend,
		Dir:        dir,
		RedisURL:   c.Cache.RedisURL,
		MaxEntries: c.Cache.MaxEntries,
	}
}

// CacheKeyer returns the keyer for the configured backend. A Redis cache
// may be shared by servers pointed at different catalogs, so its keys are
// scoped by a hash of the catalog source (the URI may carry credentials).
func (c *Config) CacheKeyer() cache.Keyer {
	if c.Cache.Backend != cache.BackendRedis {
		return cache.NewDefaultKeyer()
	}
	return cache.NewScopedKeyer(nil, "src-"+cache.Hash([]byte(c.Catalog))[:12]+":")
}

// CacheDir returns the cache directory using XDG standard (~/.cache/toolverse/).
func CacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, "toolverse"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "toolverse"), nil
}
