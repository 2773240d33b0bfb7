package mcp

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/gnews-mcp/internal/news"
	"github.com/dshills/gnews-mcp/internal/storage"
)

const (
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"

	// NewsServerName is the name advertised by the news server
	NewsServerName = "gnews-server"
	// DocsServerName is the name advertised by the documentation server
	DocsServerName = "mcp-documentation-server"
	// EmailServerName is the name advertised by the email server
	EmailServerName = "mcp-email-server"

	newsInstructions = "A Model Context Protocol server for accessing GNews API. Provides tools to search news articles and get top headlines."
)

// Server wraps an MCP server with its transports
type Server struct {
	mcp    *server.MCPServer
	logger *slog.Logger
}

func newServer(name, instructions string, logger *slog.Logger, extra ...server.ServerOption) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if instructions != "" {
		opts = append(opts, server.WithInstructions(instructions))
	}
	opts = append(opts, extra...)
	return &Server{
		mcp:    server.NewMCPServer(name, ServerVersion, opts...),
		logger: logger.With("server", name),
	}
}

// NewNewsServer creates the news server: search_news and get_top_headlines
// tools, the reference resources and the search prompt.
func NewNewsServer(svc *news.Service, logger *slog.Logger) *Server {
	s := newServer(NewsServerName, newsInstructions, logger,
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
	)

	t := &newsTools{svc: svc, logger: s.logger}
	s.mcp.AddTool(searchNewsTool(), t.handleSearchNews)
	s.mcp.AddTool(topHeadlinesTool(), t.handleTopHeadlines)

	registerNewsResources(s.mcp)
	registerNewsPrompts(s.mcp)
	return s
}

// NewDocsServer creates the documentation server backed by store.
func NewDocsServer(store storage.Storage, logger *slog.Logger) *Server {
	s := newServer(DocsServerName, "", logger)
	t := &workspaceTools{store: store, logger: s.logger}
	s.mcp.AddTool(getDocumentationTool(), t.handleGetDocumentation)
	return s
}

// NewEmailServer creates the email server backed by store.
func NewEmailServer(store storage.Storage, logger *slog.Logger) *Server {
	s := newServer(EmailServerName, "", logger)
	t := &workspaceTools{store: store, logger: s.logger}
	s.mcp.AddTool(getEmailsTool(), t.handleGetEmails)
	s.mcp.AddTool(writeEmailTool(), t.handleWriteEmail)
	return s
}

// ServeIO runs the stdio transport over in and out, normally os.Stdin and
// os.Stdout. It blocks until ctx is done or in reaches EOF.
func (s *Server) ServeIO(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))
	s.logger.Info("MCP server ready, listening on stdio")
	return stdio.Listen(ctx, in, out)
}

// HTTPHandler returns a streamable HTTP handler for the server. The MCP
// endpoint is /mcp relative to wherever the handler is mounted.
func (s *Server) HTTPHandler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcp)
}
