package main

import (
	"github.com/spf13/cobra"

	"github.com/dshills/gnews-mcp/internal/host"
	"github.com/dshills/gnews-mcp/internal/mcp"
)

func newWorkspaceCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "Serve the documentation, email and news servers over HTTP",
		Long: "workspace mounts the documentation server at /docs and the email server at /email. " +
			"The news server is mounted at /news when a GNews API key is configured.",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStorage()
			if err != nil {
				return a.fail(err)
			}
			defer store.Close()

			if addr == "" {
				addr = a.cfg.Listen.Address
			}
			h := host.New(addr, a.logger)
			h.Mount("/docs", mcp.NewDocsServer(store, a.logger).HTTPHandler())
			h.Mount("/email", mcp.NewEmailServer(store, a.logger).HTTPHandler())
			if a.cfg.HasAPIKey() {
				news, err := a.newsServer()
				if err != nil {
					return a.fail(err)
				}
				h.Mount("/news", news.HTTPHandler())
			} else {
				a.logger.Warn("GNEWS_API_KEY not set, news server not mounted")
			}

			ctx, cancel := signalContext()
			defer cancel()
			if err := h.Run(ctx); err != nil {
				return a.fail(err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

func newDocsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Run the documentation MCP server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStorage()
			if err != nil {
				return a.fail(err)
			}
			defer store.Close()

			ctx, cancel := signalContext()
			defer cancel()
			if err := mcp.NewDocsServer(store, a.logger).ServeIO(ctx, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil && ctx.Err() == nil {
				return a.fail(err)
			}
			return nil
		},
	}
	cmd.AddCommand(newDocsAddCmd(a))
	return cmd
}

func newDocsAddCmd(a *app) *cobra.Command {
	var title, body string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Store a documentation entry; it becomes the one served",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openSQLite()
			if err != nil {
				return a.fail(err)
			}
			defer store.Close()

			if err := store.AddDocumentation(cmd.Context(), title, body); err != nil {
				return a.fail(err)
			}
			cmd.Printf("Documentation %q stored\n", title)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "entry title")
	cmd.Flags().StringVar(&body, "body", "", "entry body")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("body")
	return cmd
}
