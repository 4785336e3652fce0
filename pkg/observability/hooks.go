// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies to the core packages. Consumers register hooks at startup to
// receive events about chart navigation, pipeline execution, cache
// operations and served HTTP requests.
//
// # Architecture
//
// Each event category has an interface and a no-op default. Hooks are
// installed once at startup and read on every event.
//
// [Prometheus] implements every hook interface on top of a prometheus
// registry and is what `toolverse serve` installs.
//
// # Usage
//
// Register hooks at application startup:
//
//	observability.NewPrometheus(prometheus.NewRegistry()).Install()
//
// or install single categories with SetChartHooks, SetCacheHooks, ...
//
// Libraries call hooks to emit events:
//
//	observability.Chart().OnFocus("", "text-generation")
//	observability.Pipeline().OnRenderComplete(ctx, formats, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Chart Hooks
// =============================================================================

// ChartHooks receives navigation events from sunburst engines. Calls are
// synchronous and must not block.
type ChartHooks interface {
	// OnFocus records a focus change. Keys are category ids, "" for the root.
	OnFocus(from, to string)
	// OnTransitionDone records a finished transition.
	OnTransitionDone(focus string, duration time.Duration)
	// OnToolActivated records a tool click.
	OnToolActivated(toolID, categoryID string)
	// OnSearchMiss records a tool search that matched nothing.
	OnSearchMiss()
}

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the render pipeline.
type PipelineHooks interface {
	// Load events
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, source string, tools int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	// OnRequest records a served request. Route is the matched pattern
	// (e.g. "/api/categories/{id}"), not the raw path.
	OnRequest(ctx context.Context, method, route string, statusCode int, duration time.Duration)

	// OnStreamOpen and OnStreamClose bracket websocket frame streams.
	OnStreamOpen(ctx context.Context)
	OnStreamClose(ctx context.Context, frames int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopChartHooks is a no-op implementation of ChartHooks.
type NoopChartHooks struct{}

func (NoopChartHooks) OnFocus(string, string)                 {}
func (NoopChartHooks) OnTransitionDone(string, time.Duration) {}
func (NoopChartHooks) OnToolActivated(string, string)         {}
func (NoopChartHooks) OnSearchMiss()                          {}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                           {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)  {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnStreamOpen(context.Context)                                  {}
func (NoopHTTPHooks) OnStreamClose(context.Context, int)                            {}

// =============================================================================
// Registry
// =============================================================================

// registry holds the installed hooks. Reads vastly outnumber writes: hooks
// are installed once at startup and read on every event.
type registry struct {
	mu       sync.RWMutex
	chart    ChartHooks
	pipeline PipelineHooks
	cache    CacheHooks
	http     HTTPHooks
}

func (r *registry) reset() {
	r.chart = NoopChartHooks{}
	r.pipeline = NoopPipelineHooks{}
	r.cache = NoopCacheHooks{}
	r.http = NoopHTTPHooks{}
}

var hooks = func() *registry {
	r := &registry{}
	r.reset()
	return r
}()

// install stores h in slot unless h is nil.
func install[T any](slot *T, h T) {
	if any(h) == nil {
		return
	}
	hooks.mu.Lock()
	*slot = h
	hooks.mu.Unlock()
}

func load[T any](slot *T) T {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return *slot
}

// SetChartHooks installs chart hooks. A nil h is ignored.
func SetChartHooks(h ChartHooks) { install(&hooks.chart, h) }

// SetPipelineHooks installs pipeline hooks. Call it at startup, before any
// runner executes.
func SetPipelineHooks(h PipelineHooks) { install(&hooks.pipeline, h) }

// SetCacheHooks installs cache hooks. Only caches wrapped by
// cache.Instrument report to them.
func SetCacheHooks(h CacheHooks) { install(&hooks.cache, h) }

// SetHTTPHooks installs HTTP hooks.
func SetHTTPHooks(h HTTPHooks) { install(&hooks.http, h) }

// Chart returns the installed chart hooks.
func Chart() ChartHooks { return load(&hooks.chart) }

// Pipeline returns the installed pipeline hooks.
func Pipeline() PipelineHooks { return load(&hooks.pipeline) }

// Cache returns the installed cache hooks.
func Cache() CacheHooks { return load(&hooks.cache) }

// HTTP returns the installed HTTP hooks.
func HTTP() HTTPHooks { return load(&hooks.http) }

// Reset restores the no-op hooks. Tests that install hooks call it in
// t.Cleanup.
func Reset() {
	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	hooks.reset()
}
