package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/toolverse/internal/config"
	"github.com/matzehuels/toolverse/pkg/buildinfo"
	"github.com/matzehuels/toolverse/pkg/cache"
	"github.com/matzehuels/toolverse/pkg/pipeline"
	"github.com/matzehuels/toolverse/pkg/prefs"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "toolverse"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// PrefsDir overrides the preference directory; empty selects
	// ~/.config/toolverse.
	PrefsDir string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Toolverse is a zoomable sunburst directory of AI tools",
		Long:         `Toolverse browses a catalog of AI tools grouped by category as a two-ring sunburst chart. Render charts to SVG, PNG, PDF or JSON, explore them in the terminal, or serve the catalog API.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.themeCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return cache.Instrument(fc), nil
}

// prefsStore opens the preference store.
func (c *CLI) prefsStore() (*prefs.FileStore, error) {
	return prefs.NewFileStore(c.PrefsDir)
}

// defaultTheme returns the persisted theme, or light when preferences
// cannot be read.
func (c *CLI) defaultTheme() string {
	store, err := c.prefsStore()
	if err != nil {
		c.Logger.Debug("prefs unavailable", "err", err)
		return pipeline.DefaultTheme
	}
	p, err := store.Load()
	if err != nil {
		c.Logger.Warn("ignoring unreadable prefs", "path", store.Path(), "err", err)
		return pipeline.DefaultTheme
	}
	return p.ThemeValue().Name
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/toolverse/).
func cacheDir() (string, error) {
	return config.CacheDir()
}

// stdout is where commands write their primary output.
var stdout io.Writer = os.Stdout
