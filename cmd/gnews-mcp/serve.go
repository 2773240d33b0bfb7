package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/gnews-mcp/internal/host"
	"github.com/dshills/gnews-mcp/internal/mcp"
)

// Transports
const (
	transportStdio = "stdio"
	transportHTTP  = "http"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		transport string
		addr      string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the GNews MCP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := a.newsServer()
			if err != nil {
				return a.fail(err)
			}

			ctx, cancel := signalContext()
			defer cancel()

			a.logger.Info("starting", "server", mcp.NewsServerName, "version", version, "transport", transport)
			switch transport {
			case transportStdio:
				err = srv.ServeIO(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			case transportHTTP:
				if addr == "" {
					addr = a.cfg.Listen.Address
				}
				h := host.New(addr, a.logger)
				h.Mount("/news", srv.HTTPHandler())
				err = h.Run(ctx)
			default:
				err = fmt.Errorf("unknown transport %q (valid: %s, %s)", transport, transportStdio, transportHTTP)
			}
			if err != nil && ctx.Err() == nil {
				return a.fail(err)
			}
			a.logger.Info("server stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&transport, "transport", transportStdio, "transport to serve on: stdio or http")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address for the http transport (default from config)")
	return cmd
}
