package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/toolverse/pkg/cache"
	"github.com/matzehuels/toolverse/pkg/catalog"
	"github.com/matzehuels/toolverse/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// CatalogTTL overrides cache.TTLCatalog when positive.
	CatalogTTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → chart → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	c, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Catalog = c
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Categories, result.Stats.Tools = c.Counts()
	result.CacheInfo.LoadHit = loadHit
	if data, err := json.Marshal(c); err == nil {
		result.CatalogHash = cache.Hash(data)
	}

	r.Logger.Info("loaded catalog",
		"categories", result.Stats.Categories,
		"tools", result.Stats.Tools,
		"cached", loadHit,
		"duration", result.Stats.LoadTime)

	// Stage 2: Chart
	chartStart := time.Now()
	ch, err := BuildChart(c, opts)
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	result.Frame = ch.Frame
	result.Events = ch.Events
	result.Stats.ChartTime = time.Since(chartStart)

	r.Logger.Debug("built chart",
		"focus", ch.Frame.Focus,
		"at_ms", opts.AtMS,
		"events", len(ch.Events))

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, ch, result.CatalogHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load is a convenience wrapper that calls LoadWithCacheInfo and discards the cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) (*catalog.Catalog, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	c, _, err := r.LoadWithCacheInfo(ctx, opts)
	return c, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// An empty catalogHash disables caching.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, ch *Chart, catalogHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	if catalogHash != "" {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(catalogHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := Render(ctx, ch, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if catalogHash != "" {
		for format, data := range rendered {
			key := r.Keyer.ArtifactKey(catalogHash, opts.ArtifactKeyOpts(format))
			_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
		}
	}
	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) catalogTTL() time.Duration {
	if r.CatalogTTL > 0 {
		return r.CatalogTTL
	}
	return cache.TTLCatalog
}
