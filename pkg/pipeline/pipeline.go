// Package pipeline provides the chart rendering pipeline for toolverse.
//
// This package implements the complete load → chart → render pipeline used
// by the CLI and the HTTP server. By centralizing this logic, both entry
// points cache and validate the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Fetch the catalog from its source (built-in, file, HTTP, MongoDB)
//  2. Chart: Build the hierarchy, apply focus commands and tick the animation
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Catalog: "builtin",
//	    Focus:   "code-generation",
//	    Formats: []string{"svg"},
//	})
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/toolverse/pkg/cache"
	"github.com/matzehuels/toolverse/pkg/catalog"
	"github.com/matzehuels/toolverse/pkg/errors"
	"github.com/matzehuels/toolverse/pkg/sunburst"
	"github.com/matzehuels/toolverse/pkg/sunburst/styles"
	"github.com/matzehuels/toolverse/pkg/tree"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultRadius is the outer chart radius in pixels.
	DefaultRadius = sunburst.DefaultRadius

	// MaxRadius bounds the radius accepted from users.
	MaxRadius = 4000.0

	// DefaultVizType is the default visualization type.
	DefaultVizType = tree.VizTypeSunburst

	// DefaultTheme is the default colour theme.
	DefaultTheme = tree.ThemeLight

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	tree.VizTypeSunburst: true,
	tree.VizTypeNodelink: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Catalog string `json:"catalog,omitempty"` // source URI, see catalog.Open
	Refresh bool   `json:"refresh,omitempty"` // bypass the catalog cache

	// Chart options
	VizType  string `json:"viz_type,omitempty"`
	Focus    string `json:"focus,omitempty"` // category id
	Tool     string `json:"tool,omitempty"`  // tool name, focuses its category
	AtMS     int64  `json:"at_ms,omitempty"` // time since the focus change; 0 renders the settled chart
	Duration int64  `json:"duration_ms,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Theme    string   `json:"theme,omitempty"`
	Radius   float64  `json:"radius,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // node-link labels with scores

	// Runtime options (not serialized)
	Source catalog.Source `json:"-"` // overrides Catalog
	Logger *log.Logger    `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Catalog is the loaded catalog.
	Catalog *catalog.Catalog

	// CatalogHash is the content hash of the catalog.
	CatalogHash string

	// Frame is the chart as rendered.
	Frame tree.Frame

	// Events are the engine events emitted by the focus commands.
	Events []sunburst.Event

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Categories int
	Tools      int
	LoadTime   time.Duration
	ChartTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // Whether the catalog came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid viz_type: %q (must be one of: sunburst, nodelink)", vizType)
	}
	return nil
}

// ParseFormats splits a comma-separated format list.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(strings.ToLower(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Catalog == "" {
		o.Catalog = catalog.BuiltinURI
	}
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.Radius == 0 {
		o.Radius = DefaultRadius
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := styles.ParseTheme(o.Theme); err != nil {
		return err
	}
	if o.Radius < 0 || o.Radius > MaxRadius {
		return errors.New(errors.ErrCodeInvalidInput, "radius must be between 0 and %g", MaxRadius)
	}
	if o.AtMS < 0 || o.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "times must not be negative")
	}
	if o.Focus != "" {
		if err := errors.ValidateID(o.Focus); err != nil {
			return err
		}
	}
	if err := errors.ValidateQuery(o.Tool); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// IsNodelink returns true if this is a node-link visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == tree.VizTypeNodelink
}

// Settled reports whether the chart is rendered at the end of its transition.
func (o *Options) Settled() bool { return o.AtMS == 0 }

// TransitionDuration returns the configured transition length, or zero
// when the default applies.
func (o *Options) TransitionDuration() time.Duration {
	return time.Duration(o.Duration) * time.Millisecond
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		VizType:  o.VizType,
		Focus:    o.Focus,
		Tool:     strings.ToLower(o.Tool),
		AtMS:     o.AtMS,
		Theme:    o.Theme,
		Radius:   o.Radius,
		Detailed: o.Detailed,
		Duration: o.Duration,
	}
}
