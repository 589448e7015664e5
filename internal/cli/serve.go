package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spanlayout/internal/api"
	"github.com/matzehuels/spanlayout/pkg/cache"
	"github.com/matzehuels/spanlayout/pkg/pipeline"
)

type serveOpts struct {
	addr     string
	redisURL string
	prefix   string
	noCache  bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080", redisURL: os.Getenv(redisURLEnv)}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve exposes solve, layout, render and graph over HTTP. Results are
cached in Redis when --redis or ` + redisURLEnv + ` is set, and in the local
file cache otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis", opts.redisURL, "Redis URL, e.g. redis://localhost:6379/0")
	cmd.Flags().StringVar(&opts.prefix, "key-prefix", "", "prefix for every cache key")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	var backend cache.Cache
	switch {
	case opts.noCache:
		backend = cache.NewNullCache()
	case opts.redisURL != "":
		rc, err := cache.NewRedisCache(ctx, opts.redisURL)
		if err != nil {
			return err
		}
		logger.Info("using redis cache")
		backend = rc
	default:
		fc, err := newCache(false)
		if err != nil {
			return err
		}
		backend = fc
	}

	var keyer cache.Keyer
	if opts.prefix != "" {
		keyer = cache.NewScopedKeyer(nil, opts.prefix)
	}
	runner := pipeline.NewRunner(backend, keyer, logger)
	defer runner.Close()

	return api.New(runner, logger).ListenAndServe(ctx, opts.addr)
}
