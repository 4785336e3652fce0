package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/toolverse/internal/config"
	"github.com/matzehuels/toolverse/internal/server"
	"github.com/matzehuels/toolverse/pkg/cache"
	"github.com/matzehuels/toolverse/pkg/pipeline"
)

const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
		source     string
		backend    string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog API, chart renders and the live frame stream",
		Long: `Serve the HTTP API.

Configuration is read from the YAML file given by --config (default
toolverse.yml, optional), then TOOLVERSE_* environment variables, then
the flags below.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.Addr = addr
			}
			if flags.Changed("catalog") {
				cfg.Catalog = source
			}
			if flags.Changed("cache") {
				cfg.Cache.Backend = backend
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultFile, "config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&source, "catalog", "", "catalog source (overrides config)")
	cmd.Flags().StringVar(&backend, "cache", "", "cache backend: memory, file, redis, none (overrides config)")
	return cmd
}

// runServe runs the server until ctx is cancelled, then shuts it down
// gracefully.
func (c *CLI) runServe(ctx context.Context, cfg *config.Config) error {
	logger := loggerFromContext(ctx)

	store, err := cache.Open(cfg.CacheOpenConfig())
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(store, cfg.CacheKeyer(), logger)
	defer runner.Close()
	runner.CatalogTTL, _ = cfg.CatalogTTL()

	srv := server.New(cfg, runner, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.ListenAndServe)
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
