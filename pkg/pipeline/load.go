package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/matzehuels/toolverse/pkg/catalog"
	"github.com/matzehuels/toolverse/pkg/observability"
)

// Load fetches a catalog from its source, reporting through the pipeline
// hooks.
func Load(ctx context.Context, src catalog.Source) (*catalog.Catalog, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, src.String())
	start := time.Now()

	c, err := src.Load(ctx)
	tools := 0
	if err == nil {
		_, tools = c.Counts()
	}
	hooks.OnLoadComplete(ctx, src.String(), tools, time.Since(start), err)
	return c, err
}

// source resolves the catalog source of opts. Remote sources opened from a
// URI share the runner's cache for their raw responses unless the load is
// a refresh.
func (r *Runner) source(opts Options) (catalog.Source, error) {
	if opts.Source != nil {
		return opts.Source, nil
	}
	src, err := catalog.Open(opts.Catalog)
	if err != nil {
		return nil, err
	}
	if rs, ok := src.(*catalog.RemoteSource); ok && !opts.Refresh {
		rs.Cache, rs.Keyer = r.Cache, r.Keyer
	}
	return src, nil
}

// LoadWithCacheInfo loads the catalog with caching and returns cache hit info.
// The built-in catalog is never cached since loading it costs nothing.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (*catalog.Catalog, bool, error) {
	src, err := r.source(opts)
	if err != nil {
		return nil, false, err
	}
	_, static := src.(*catalog.Static)
	key := r.Keyer.CatalogKey(src.String())

	if !static && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var c catalog.Catalog
			if err := json.Unmarshal(data, &c); err == nil && c.Validate() == nil {
				return &c, true, nil
			}
		}
	}

	c, err := Load(ctx, src)
	if err != nil {
		return nil, false, err
	}

	if !static {
		if data, err := json.Marshal(c); err == nil {
			_ = r.Cache.Set(ctx, key, data, r.catalogTTL())
		}
	}
	return c, false, nil
}
