// Package host serves several MCP servers from one HTTP listener, each mounted
// under its own path prefix.
package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout bounds graceful shutdown once the run context is cancelled.
const ShutdownTimeout = 10 * time.Second

// Host is an HTTP server that mounts handlers under path prefixes.
type Host struct {
	addr   string
	mux    *http.ServeMux
	logger *slog.Logger
	mounts []string
}

// New creates a Host listening on addr.
func New(addr string, logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.Default()
	}
	return &Host{
		addr:   addr,
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

// Mount serves h under prefix with the prefix stripped, so a handler whose
// endpoint is /mcp answers at prefix+"/mcp".
func (h *Host) Mount(prefix string, handler http.Handler) {
	prefix = "/" + strings.Trim(prefix, "/")
	h.mux.Handle(prefix+"/", http.StripPrefix(prefix, handler))
	h.mounts = append(h.mounts, prefix)
	h.logger.Info("mounted", "prefix", prefix)
}

// Handler returns the mux wrapped in a permissive CORS policy.
func (h *Host) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions, http.MethodHead},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Mcp-Session-Id"},
		AllowCredentials: true,
	})
	return c.Handler(h.mux)
}

// Run listens on the configured address and serves until ctx is cancelled.
func (h *Host) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", h.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", h.addr, err)
	}
	return h.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (h *Host) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(h.logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h.logger.Info("HTTP host listening", "addr", ln.Addr().String(), "mounts", h.mounts)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		h.logger.Info("shutting down HTTP host")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
