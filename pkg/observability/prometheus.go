package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus implements every hook interface with prometheus collectors.
type Prometheus struct {
	focusTotal       *prometheus.CounterVec
	transitionTime   prometheus.Histogram
	toolActivations  *prometheus.CounterVec
	searchMisses     prometheus.Counter
	loadDuration     *prometheus.HistogramVec
	loadErrors       prometheus.Counter
	renderDuration   *prometheus.HistogramVec
	cacheTotal       *prometheus.CounterVec
	cacheBytes       *prometheus.CounterVec
	requestTotal     *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	streamsOpen      prometheus.Gauge
	streamFrameTotal prometheus.Counter
}

var (
	_ ChartHooks    = (*Prometheus)(nil)
	_ PipelineHooks = (*Prometheus)(nil)
	_ CacheHooks    = (*Prometheus)(nil)
	_ HTTPHooks     = (*Prometheus)(nil)
)

// NewPrometheus registers the toolverse collectors with reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	f := promauto.With(reg)
	return &Prometheus{
		focusTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "toolverse_chart_focus_total",
			Help: "Focus changes by target kind",
		}, []string{"target"}),
		transitionTime: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "toolverse_chart_transition_seconds",
			Help:    "Length of completed focus transitions",
			Buckets: []float64{0.1, 0.25, 0.5, 0.75, 1, 2},
		}),
		toolActivations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "toolverse_chart_tool_activations_total",
			Help: "Tool activations by category",
		}, []string{"category"}),
		searchMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "toolverse_chart_search_misses_total",
			Help: "Tool searches that matched nothing",
		}),
		loadDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "toolverse_catalog_load_seconds",
			Help:    "Catalog load duration by source kind",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"source"}),
		loadErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "toolverse_catalog_load_errors_total",
			Help: "Failed catalog loads",
		}),
		renderDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "toolverse_render_seconds",
			Help:    "Render duration by result",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"result"}),
		cacheTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "toolverse_cache_operations_total",
			Help: "Cache operations by key type and result",
		}, []string{"key_type", "result"}),
		cacheBytes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "toolverse_cache_written_bytes_total",
			Help: "Bytes written to the cache by key type",
		}, []string{"key_type"}),
		requestTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "toolverse_http_requests_total",
			Help: "Served HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "toolverse_http_request_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		streamsOpen: f.NewGauge(prometheus.GaugeOpts{
			Name: "toolverse_stream_connections",
			Help: "Open websocket frame streams",
		}),
		streamFrameTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "toolverse_stream_frames_total",
			Help: "Frames sent over websocket streams",
		}),
	}
}

func (p *Prometheus) OnFocus(from, to string) {
	target := "category"
	if to == "" {
		target = "root"
	}
	p.focusTotal.WithLabelValues(target).Inc()
}

func (p *Prometheus) OnTransitionDone(focus string, d time.Duration) {
	p.transitionTime.Observe(d.Seconds())
}

func (p *Prometheus) OnToolActivated(toolID, categoryID string) {
	p.toolActivations.WithLabelValues(categoryID).Inc()
}

func (p *Prometheus) OnSearchMiss() { p.searchMisses.Inc() }

func (p *Prometheus) OnLoadStart(context.Context, string) {}

func (p *Prometheus) OnLoadComplete(_ context.Context, source string, _ int, d time.Duration, err error) {
	p.loadDuration.WithLabelValues(sourceKind(source)).Observe(d.Seconds())
	if err != nil {
		p.loadErrors.Inc()
	}
}

func (p *Prometheus) OnRenderStart(context.Context, []string) {}

func (p *Prometheus) OnRenderComplete(_ context.Context, _ []string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	p.renderDuration.WithLabelValues(result).Observe(d.Seconds())
}

func (p *Prometheus) OnCacheHit(_ context.Context, keyType string) {
	p.cacheTotal.WithLabelValues(keyType, "hit").Inc()
}

func (p *Prometheus) OnCacheMiss(_ context.Context, keyType string) {
	p.cacheTotal.WithLabelValues(keyType, "miss").Inc()
}

func (p *Prometheus) OnCacheSet(_ context.Context, keyType string, size int) {
	p.cacheTotal.WithLabelValues(keyType, "set").Inc()
	p.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

func (p *Prometheus) OnRequest(_ context.Context, method, route string, status int, d time.Duration) {
	p.requestTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}

func (p *Prometheus) OnStreamOpen(context.Context) { p.streamsOpen.Inc() }

func (p *Prometheus) OnStreamClose(_ context.Context, frames int) {
	p.streamsOpen.Dec()
	p.streamFrameTotal.Add(float64(frames))
}

// sourceKind reduces a source description to a low-cardinality label.
func sourceKind(source string) string {
	for _, prefix := range []string{"file", "mongodb", "https", "http"} {
		if len(source) >= len(prefix) && source[:len(prefix)] == prefix {
			if prefix == "https" {
				return "http"
			}
			return prefix
		}
	}
	return "builtin"
}

// Install sets p as the chart, pipeline, cache and HTTP hooks.
func (p *Prometheus) Install() {
	SetChartHooks(p)
	SetPipelineHooks(p)
	SetCacheHooks(p)
	SetHTTPHooks(p)
}
