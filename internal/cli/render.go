package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/toolverse/pkg/catalog"
	"github.com/matzehuels/toolverse/pkg/pipeline"
	"github.com/matzehuels/toolverse/pkg/sunburst"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file (single format), base path (several), or "-" for stdout
	formats string // comma-separated output formats
	noCache bool
	opts    pipeline.Options
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var ro renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the sunburst chart to SVG, PNG, PDF or JSON",
		Long: `Render the catalog as a sunburst chart.

The chart starts at the root. --focus zooms to a category and --tool zooms
to the category of a tool and highlights it. By default the chart is drawn
once the zoom transition has settled; --at renders the frame at the given
number of milliseconds into the transition.`,
		Example: `  toolverse render --focus image-generation -o images.svg
  toolverse render --tool claude --theme dark -f svg,png
  toolverse render --focus productivity --at 300 -f json -o -
  toolverse render --type nodelink --detailed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ro.opts.Formats = pipeline.ParseFormats(ro.formats)
			if ro.opts.Theme == "" {
				ro.opts.Theme = c.defaultTheme()
			}
			return c.runRender(cmd.Context(), &ro)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&ro.output, "output", "o", "", "output file (single format), base path (several), or - for stdout")
	f.StringVarP(&ro.formats, "format", "f", pipeline.FormatSVG, "output format(s): svg, json, png, pdf (comma-separated)")
	f.StringVar(&ro.opts.Catalog, "catalog", catalog.BuiltinURI, "catalog source")
	f.BoolVar(&ro.opts.Refresh, "refresh", false, "bypass the catalog cache")
	f.BoolVar(&ro.noCache, "no-cache", false, "disable caching")
	f.StringVar(&ro.opts.Focus, "focus", "", "category id to zoom to")
	f.StringVar(&ro.opts.Tool, "tool", "", "tool name to find, zoom to and highlight")
	f.Int64Var(&ro.opts.AtMS, "at", 0, "render the frame at this many ms into the transition (0 = settled)")
	f.Int64Var(&ro.opts.Duration, "duration", 0, "transition length in ms (0 = default)")
	f.StringVar(&ro.opts.Theme, "theme", "", "chart theme: light, dark (default: saved preference)")
	f.Float64Var(&ro.opts.Radius, "radius", pipeline.DefaultRadius, "chart radius in pixels")
	f.StringVarP(&ro.opts.VizType, "type", "t", pipeline.DefaultVizType, "visualization type: sunburst, nodelink")
	f.BoolVar(&ro.opts.Detailed, "detailed", false, "show popularity in node-link labels")

	_ = cmd.RegisterFlagCompletionFunc("focus", completeCategoryIDs)
	_ = cmd.RegisterFlagCompletionFunc("theme", completeThemes)
	cmd.MarkFlagsMutuallyExclusive("focus", "tool")

	return cmd
}

// runRender executes the pipeline and writes its artifacts.
func (c *CLI) runRender(ctx context.Context, ro *renderOpts) error {
	logger := loggerFromContext(ctx)
	ro.opts.Logger = logger
	if err := ro.opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if ro.output == "-" && len(ro.opts.Formats) > 1 {
		return fmt.Errorf("stdout output takes a single format, got %s", strings.Join(ro.opts.Formats, ","))
	}

	runner, err := c.newRunner(ro.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, err := runner.Execute(ctx, ro.opts)
	if err != nil {
		return err
	}
	prog.done("Rendered chart", "focus", focusLabel(res.Frame.Focus), "formats", len(res.Artifacts))

	for _, ev := range res.Events {
		if f, ok := ev.(sunburst.CategoryFocused); ok {
			logger.Debug("focused", "category", f.CategoryID, "event", f.EventID)
		}
	}

	if ro.output == "-" {
		_, err := stdout.Write(res.Artifacts[ro.opts.Formats[0]])
		return err
	}

	paths := outputPaths(ro.output, res.Frame.Focus, ro.opts.Formats)
	formats := make([]string, 0, len(paths))
	for format := range paths {
		formats = append(formats, format)
	}
	sort.Strings(formats)

	printSuccess("Rendered %s", focusLabel(res.Frame.Focus))
	printStats(res.Stats.Categories, res.Stats.Tools, res.CacheInfo.RenderHit)
	for _, format := range formats {
		if err := writeArtifact(paths[format], res.Artifacts[format]); err != nil {
			return err
		}
		printFile(paths[format])
	}
	return nil
}

func focusLabel(focus string) string {
	if focus == "" {
		return "root"
	}
	return focus
}

// outputPaths maps each format to its output file. A single format writes
// to output as given; several formats use output as base path with the
// format extension. Without output the name derives from the focus.
func outputPaths(output, focus string, formats []string) map[string]string {
	base := basePath(output, focus)
	paths := make(map[string]string, len(formats))
	for _, format := range formats {
		paths[format] = base + "." + format
	}
	if len(formats) == 1 && output != "" && filepath.Ext(output) != "" {
		paths[formats[0]] = output
	}
	return paths
}

// basePath strips a known format extension from output, or derives
// "toolverse-<focus>" when output is empty.
func basePath(output, focus string) string {
	if output == "" {
		return appName + "-" + focusLabel(focus)
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeArtifact(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = out.Write(data)
	return err
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput opens path for writing, or stdout for the empty path.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}
