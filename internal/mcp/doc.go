// Package mcp implements the Model Context Protocol (MCP) servers for gnews-mcp.
//
// Three servers are built on github.com/mark3labs/mcp-go:
//
//   - gnews-server: search_news and get_top_headlines tools, reference
//     resources (gnews://supported-languages, gnews://supported-countries,
//     gnews://query-syntax) and the create_news_search_prompt prompt
//   - mcp-documentation-server: get_documentation_from_database
//   - mcp-email-server: get_emails and write_email
//
// Each server runs over stdio via ServeIO, or is mounted on an HTTP host through
// HTTPHandler (streamable HTTP, endpoint /mcp).
//
// # News Tools
//
// Arguments are validated before any upstream request is made. A rejected
// argument is a normal result flagged isError whose text names the problem:
//
//	{
//	  "content": [{"type": "text", "text": "Unsupported language 'xx'. Supported values: ar, de, ..."}],
//	  "isError": true
//	}
//
// Server-side faults, such as a failing store, are JSON-RPC internal errors
// (-32603).
//
// Upstream and network failures are reported inside a normal result with
// isError false:
//
//	{
//	  "success": false,
//	  "error": "GNews API error: 401 - [\"Invalid API key\"]",
//	  "query": "golang",
//	  "parameters_used": {"q": "golang"}
//	}
//
// A successful call returns the upstream articles untouched:
//
//	{
//	  "success": true,
//	  "query": "golang",
//	  "totalArticles": 120,
//	  "articles": [...],
//	  "parameters_used": {"q": "golang", "max": 5}
//	}
//
// # Logging
//
// Servers log through log/slog. On stdio the logger must write to stderr,
// stdout is reserved for the protocol.
package mcp
