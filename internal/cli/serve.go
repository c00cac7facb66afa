package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seatplan/internal/api"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the seating engine over HTTP",
		Long: `Serve the HTTP API. The address comes from --addr, SEATPLAN_ADDR or the
[server] config section, in that order. Rendered artifacts are cached in
Redis when SEATPLAN_REDIS_URL or cache.redis_url is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	logger := loggerFromContext(ctx)

	cfg, err := c.config()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	srv := api.New(runner, logger,
		api.WithPalette(cfg.Palette),
		api.WithRenderDefaults(cfg.PipelineOptions()),
	)

	printInfo("Serving on %s", StyleLink.Render(listenURL(addr)))
	return srv.ListenAndServe(ctx, addr, cfg.Server.ShutdownTimeout.Duration)
}

// listenURL turns a listen address into a URL a browser can open.
func listenURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}
