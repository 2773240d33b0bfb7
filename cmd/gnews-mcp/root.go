package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/gnews-mcp/internal/config"
	"github.com/dshills/gnews-mcp/internal/gnews"
	"github.com/dshills/gnews-mcp/internal/mcp"
	"github.com/dshills/gnews-mcp/internal/news"
	"github.com/dshills/gnews-mcp/internal/storage"
)

// app carries what every command needs once flags are parsed.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "gnews-mcp",
		Short:         "MCP servers for GNews search and a mock workspace",
		Long:          "gnews-mcp exposes the GNews news API and mocked documentation/email stores as Model Context Protocol tools.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.load()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to YAML config file")

	root.AddCommand(
		newServeCmd(a),
		newWorkspaceCmd(a),
		newDocsCmd(a),
		newEmailsCmd(a),
		newVersionCmd(),
	)
	return root
}

// load reads configuration and builds the stderr logger. stdout is reserved
// for the stdio transport.
func (a *app) load() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return a.fail(err)
	}
	if err := cfg.Validate(); err != nil {
		return a.fail(err)
	}
	logger, err := config.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return a.fail(err)
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// fail reports err on stderr and returns it so cobra exits non-zero.
func (a *app) fail(err error) error {
	if a.logger != nil {
		a.logger.Error("fatal", "error", err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func (a *app) newsServer() (*mcp.Server, error) {
	if err := a.cfg.ValidateNews(); err != nil {
		return nil, err
	}
	client := gnews.NewClient(a.cfg.GNewsClientConfig(), gnews.WithLogger(a.logger))
	return mcp.NewNewsServer(news.NewService(client, a.logger), a.logger), nil
}

// openStorage returns the configured documentation/email store.
func (a *app) openStorage() (storage.Storage, error) {
	switch a.cfg.Storage.Driver {
	case config.StorageSQLite:
		a.logger.Info("opening sqlite storage", "path", a.cfg.Storage.Path,
			"driver", storage.DriverName, "build_mode", storage.BuildMode)
		return storage.NewSQLiteStorage(a.cfg.Storage.Path, a.cfg.Mail.From)
	default:
		return storage.NewMockStorage(a.logger), nil
	}
}

// openSQLite opens the SQLite store for commands that manage it directly.
func (a *app) openSQLite() (*storage.SQLiteStorage, error) {
	if a.cfg.Storage.Driver != config.StorageSQLite {
		return nil, fmt.Errorf("this command requires the %s storage driver (set %s=%s and %s)",
			config.StorageSQLite, config.EnvStorageDriver, config.StorageSQLite, config.EnvStoragePath)
	}
	return storage.NewSQLiteStorage(a.cfg.Storage.Path, a.cfg.Mail.From)
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "gnews-mcp\n")
			fmt.Fprintf(out, "Version: %s\n", version)
			fmt.Fprintf(out, "Build Time: %s\n", buildTime)
			fmt.Fprintf(out, "Build Mode: %s\n", storage.BuildMode)
			fmt.Fprintf(out, "SQLite Driver: %s\n", storage.DriverName)
		},
	}
}
