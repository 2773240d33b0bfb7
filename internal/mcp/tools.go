package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/gnews-mcp/internal/news"
	"github.com/dshills/gnews-mcp/internal/storage"
	"github.com/dshills/gnews-mcp/pkg/types"
)

// Error codes for MCP protocol
const (
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
)

type newsTools struct {
	svc    *news.Service
	logger *slog.Logger
}

// handleSearchNews implements the search_news tool
func (t *newsTools) handleSearchNews(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if args == nil {
		return mcp.NewToolResultError("invalid arguments"), nil
	}

	var (
		p    types.SearchParams
		errs argErrors
	)
	p.Query = errs.str(args, "q")
	p.Lang = types.Language(errs.str(args, "lang"))
	p.Country = types.Country(errs.str(args, "country"))
	p.MaxArticles = errs.int(args, "max_articles")
	p.SearchIn = errs.str(args, "search_in")
	p.Nullable = errs.str(args, "nullable")
	p.From = errs.str(args, "date_from")
	p.To = errs.str(args, "date_to")
	p.SortBy = types.SortKey(errs.str(args, "sortby"))
	p.Page = errs.int(args, "page")
	if errs.msg != "" {
		return mcp.NewToolResultError(errs.msg), nil
	}

	env, err := t.svc.Search(ctx, p)
	if err != nil {
		return invalidArguments(err)
	}
	t.logResult(ToolSearchNews, env)
	return envelopeResult(env)
}

// handleTopHeadlines implements the get_top_headlines tool
func (t *newsTools) handleTopHeadlines(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if args == nil {
		args = map[string]interface{}{}
	}

	var (
		p    types.HeadlinesParams
		errs argErrors
	)
	p.Category = types.Category(errs.str(args, "category"))
	p.Lang = types.Language(errs.str(args, "lang"))
	p.Country = types.Country(errs.str(args, "country"))
	p.MaxArticles = errs.int(args, "max_articles")
	p.Nullable = errs.str(args, "nullable")
	p.From = errs.str(args, "date_from")
	p.To = errs.str(args, "date_to")
	p.Query = errs.str(args, "q")
	p.Page = errs.int(args, "page")
	if errs.msg != "" {
		return mcp.NewToolResultError(errs.msg), nil
	}

	env, err := t.svc.TopHeadlines(ctx, p)
	if err != nil {
		return invalidArguments(err)
	}
	t.logResult(ToolTopHeadlines, env)
	return envelopeResult(env)
}

func (t *newsTools) logResult(tool string, env types.Envelope) {
	if env.Success {
		t.logger.Info("tool completed", "tool", tool, "articles", len(env.Articles), "total", env.TotalArticles)
		return
	}
	t.logger.Warn("tool returned failure envelope", "tool", tool, "error", env.Error)
}

type workspaceTools struct {
	store  storage.Storage
	logger *slog.Logger
}

// handleGetDocumentation implements the get_documentation_from_database tool
func (t *workspaceTools) handleGetDocumentation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entry, err := t.store.GetDocumentation(ctx)
	if err != nil {
		t.logger.Error("get documentation failed", "error", err)
		return nil, newMCPError(ErrorCodeInternalError, "failed to read documentation: "+err.Error())
	}
	return mcp.NewToolResultText(formatJSON(entryMap(entry))), nil
}

// handleGetEmails implements the get_emails tool
func (t *workspaceTools) handleGetEmails(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entry, err := t.store.GetEmails(ctx)
	if err != nil {
		t.logger.Error("get emails failed", "error", err)
		return nil, newMCPError(ErrorCodeInternalError, "failed to read emails: "+err.Error())
	}
	return mcp.NewToolResultText(formatJSON(entryMap(entry))), nil
}

// handleWriteEmail implements the write_email tool
func (t *workspaceTools) handleWriteEmail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if args == nil {
		return mcp.NewToolResultError("invalid arguments"), nil
	}

	var errs argErrors
	email := &storage.Email{
		Recipient: errs.required(args, "recipient"),
		Subject:   errs.required(args, "subject"),
		Body:      errs.required(args, "body"),
	}
	if errs.msg != "" {
		return mcp.NewToolResultError(errs.msg), nil
	}

	if err := t.store.WriteEmail(ctx, email); err != nil {
		if errors.Is(err, storage.ErrInvalidEmail) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		t.logger.Error("write email failed", "error", err)
		return nil, newMCPError(ErrorCodeInternalError, "failed to write email: "+err.Error())
	}

	t.logger.Info("email written", "recipient", email.Recipient, "id", email.ID)
	response := map[string]interface{}{
		"status": "success",
		"message": fmt.Sprintf("Email sent to %s with subject '%s' and body '%s'.",
			email.Recipient, email.Subject, email.Body),
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error. Handler errors reach
// the client as JSON-RPC internal errors carrying Error().
func newMCPError(code int, message string) error {
	return &MCPError{
		Code:    code,
		Message: message,
	}
}

// MCPError represents a server-side fault
type MCPError struct {
	Code    int
	Message string
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// invalidArguments reports a rejected argument as a tool result flagged
// isError, with the validation message as its text.
func invalidArguments(err error) (*mcp.CallToolResult, error) {
	var verr *types.ValidationError
	if errors.As(err, &verr) {
		return mcp.NewToolResultError(verr.Error()), nil
	}
	return nil, newMCPError(ErrorCodeInternalError, err.Error())
}

// envelopeResult renders a news envelope as the tool's text content.
func envelopeResult(env types.Envelope) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to encode result: "+err.Error())
	}
	return mcp.NewToolResultText(string(b)), nil
}

func entryMap(e *storage.Entry) map[string]interface{} {
	return map[string]interface{}{
		"title":  e.Title,
		"body":   e.Body,
		"source": e.Source,
	}
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// argErrors collects the first argument error while decoding a call.
type argErrors struct {
	msg string
}

// str extracts an optional string argument. Missing and null both read as "".
func (a *argErrors) str(args map[string]interface{}, key string) string {
	v, ok := args[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		a.fail(key, "must be a string", v)
		return ""
	}
	return s
}

// required extracts a string argument that must be present and non-empty.
func (a *argErrors) required(args map[string]interface{}, key string) string {
	s := a.str(args, key)
	if s == "" && a.msg == "" {
		a.msg = key + " parameter is required"
	}
	return s
}

// int extracts an optional integer argument. JSON numbers arrive as float64.
// Values outside the int32 range are rejected rather than converted.
func (a *argErrors) int(args map[string]interface{}, key string) *int {
	v, ok := args[key]
	if !ok || v == nil {
		return nil
	}
	switch n := v.(type) {
	case int:
		if n < math.MinInt32 || n > math.MaxInt32 {
			a.fail(key, "must be an integer", v)
			return nil
		}
		return &n
	case int64:
		if n < math.MinInt32 || n > math.MaxInt32 {
			a.fail(key, "must be an integer", v)
			return nil
		}
		i := int(n)
		return &i
	case float64:
		if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
			a.fail(key, "must be an integer", v)
			return nil
		}
		i := int(n)
		return &i
	default:
		a.fail(key, "must be an integer", v)
		return nil
	}
}

func (a *argErrors) fail(key, msg string, value interface{}) {
	if a.msg != "" {
		return
	}
	a.msg = fmt.Sprintf("%s %s (got %v)", key, msg, value)
}
