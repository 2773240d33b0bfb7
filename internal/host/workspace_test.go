package host

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/suite"

	"github.com/dshills/gnews-mcp/internal/gnews"
	mcpserver "github.com/dshills/gnews-mcp/internal/mcp"
	"github.com/dshills/gnews-mcp/internal/news"
	"github.com/dshills/gnews-mcp/internal/storage"
)

// WorkspaceTestSuite drives all three servers through one host with real MCP clients
type WorkspaceTestSuite struct {
	suite.Suite
	ctx      context.Context
	cancel   context.CancelFunc
	baseURL  string
	upstream *httptest.Server
	store    *storage.SQLiteStorage
	done     chan error
}

// SetupSuite starts the fake provider and the host once
func (s *WorkspaceTestSuite) SetupSuite() {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apikey") != "suite-key" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"errors":["Invalid API key"]}`))
			return
		}
		_, _ = w.Write([]byte(`{"totalArticles":1,"articles":[{"title":"Suite headline","url":"https://news.example/1"}]}`))
	}))

	store, err := storage.NewSQLiteStorage(filepath.Join(s.T().TempDir(), "workspace.db"), "")
	s.Require().NoError(err)
	s.store = store

	logger := quietLogger()
	fetcher := gnews.NewClient(gnews.Config{APIKey: "suite-key", BaseURL: s.upstream.URL}, gnews.WithLogger(logger))

	h := New("", logger)
	h.Mount("/docs", mcpserver.NewDocsServer(store, logger).HTTPHandler())
	h.Mount("/email", mcpserver.NewEmailServer(store, logger).HTTPHandler())
	h.Mount("/news", mcpserver.NewNewsServer(news.NewService(fetcher, logger), logger).HTTPHandler())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	s.baseURL = "http://" + ln.Addr().String()

	s.done = make(chan error, 1)
	go func() { s.done <- h.Serve(s.ctx, ln) }()
}

// TearDownSuite stops the host and releases the store
func (s *WorkspaceTestSuite) TearDownSuite() {
	s.cancel()
	s.NoError(<-s.done)
	s.upstream.Close()
	s.NoError(s.store.Close())
}

// connect opens an initialized MCP client for the server mounted at prefix
func (s *WorkspaceTestSuite) connect(prefix string) *client.Client {
	c, err := client.NewStreamableHttpClient(s.baseURL + prefix + "/mcp")
	s.Require().NoError(err)
	s.Require().NoError(c.Start(s.ctx))
	s.T().Cleanup(func() { _ = c.Close() })

	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{Name: "workspace-suite", Version: "0.0.0"}
	_, err = c.Initialize(s.ctx, req)
	s.Require().NoError(err)
	return c
}

// call invokes a tool and decodes its JSON text content
func (s *WorkspaceTestSuite) call(c *client.Client, name string, args map[string]interface{}) map[string]interface{} {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	res, err := c.CallTool(s.ctx, req)
	s.Require().NoError(err)
	s.Require().Len(res.Content, 1)

	text, ok := mcp.AsTextContent(res.Content[0])
	s.Require().True(ok)

	var out map[string]interface{}
	s.Require().NoError(json.Unmarshal([]byte(text.Text), &out))
	return out
}

// TestDocumentation reads the seeded documentation entry
func (s *WorkspaceTestSuite) TestDocumentation() {
	c := s.connect("/docs")
	out := s.call(c, mcpserver.ToolGetDocumentation, nil)
	s.Equal("How to Use MCP Servers", out["title"])
	s.Equal("database", out["source"])
}

// TestWriteThenReadEmail writes through one session and reads back through another
func (s *WorkspaceTestSuite) TestWriteThenReadEmail() {
	c := s.connect("/email")
	out := s.call(c, mcpserver.ToolWriteEmail, map[string]interface{}{
		"recipient": "ops@example.com",
		"subject":   "Deploy",
		"body":      "Rolled out *v2*.",
	})
	s.Equal("success", out["status"])
	s.Equal("Email sent to ops@example.com with subject 'Deploy' and body 'Rolled out *v2*.'.", out["message"])

	reader := s.connect("/email")
	latest := s.call(reader, mcpserver.ToolGetEmails, nil)
	s.Equal("Deploy", latest["title"])
	s.Equal(storage.SQLiteSource, latest["source"])

	sent, err := s.store.ListEmails(s.ctx, "ops@example.com")
	s.Require().NoError(err)
	s.Require().Len(sent, 1)
	s.Equal("Deploy", sent[0].Subject)
}

// TestSearchNews goes through the host to the fake provider
func (s *WorkspaceTestSuite) TestSearchNews() {
	c := s.connect("/news")
	out := s.call(c, mcpserver.ToolSearchNews, map[string]interface{}{"q": "suite", "max_articles": 1})
	s.Equal(true, out["success"])
	s.Equal(float64(1), out["totalArticles"])
	s.Equal(map[string]interface{}{"q": "suite", "max": float64(1)}, out["parameters_used"])
}

// TestSearchNewsValidation reports bad input as an isError result, not a protocol fault
func (s *WorkspaceTestSuite) TestSearchNewsValidation() {
	c := s.connect("/news")
	req := mcp.CallToolRequest{}
	req.Params.Name = mcpserver.ToolSearchNews
	req.Params.Arguments = map[string]interface{}{"q": "suite", "sortby": "popularity"}

	res, err := c.CallTool(s.ctx, req)
	s.Require().NoError(err)
	s.True(res.IsError)
	s.Require().Len(res.Content, 1)

	text, ok := mcp.AsTextContent(res.Content[0])
	s.Require().True(ok)
	s.Equal("Unsupported sortby 'popularity'. Supported values: publishedAt, relevance", text.Text)
}

func TestWorkspaceSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping workspace suite in short mode")
	}
	suite.Run(t, new(WorkspaceTestSuite))
}
