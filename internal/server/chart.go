package server

import (
	"net/http"
	"strconv"

	"github.com/matzehuels/toolverse/pkg/errors"
	"github.com/matzehuels/toolverse/pkg/pipeline"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
}

// chartOptions reads focus, tool, t, theme and radius from the query.
func (s *Server) chartOptions(r *http.Request, format string) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Catalog:  s.cfg.Catalog,
		Focus:    q.Get("focus"),
		Tool:     q.Get("tool"),
		Theme:    q.Get("theme"),
		Radius:   s.cfg.Chart.Radius,
		Duration: s.cfg.Chart.DurationMS,
		Formats:  []string{format},
	}
	if v := q.Get("t"); v != "" {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid t: %q", v)
		}
		opts.AtMS = ms
	}
	if v := q.Get("radius"); v != "" {
		radius, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid radius: %q", v)
		}
		opts.Radius = radius
	}
	return opts, opts.ValidateAndSetDefaults()
}

// handleChart renders a stateless chart: a fresh engine, the focus command
// of the query, ticked to t.
func (s *Server) handleChart(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := s.chartOptions(r, format)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		res, err := s.runner.Execute(r.Context(), opts)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", contentTypes[format])
		if res.CacheInfo.RenderHit {
			w.Header().Set("X-Cache", "HIT")
		} else {
			w.Header().Set("X-Cache", "MISS")
		}
		_, _ = w.Write(res.Artifacts[format])
	}
}
