package gnews

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dshills/gnews-mcp/pkg/types"
)

// DefaultBaseURL is the GNews v4 API root.
const DefaultBaseURL = "https://gnews.io/api/v4"

// DefaultTimeout bounds a single upstream request.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of a non-JSON error body is kept.
const maxErrorBody = 512

// Endpoint names an API route under the base URL.
type Endpoint string

// API endpoints
const (
	EndpointSearch       Endpoint = "search"
	EndpointTopHeadlines Endpoint = "top-headlines"
)

// Response is the decoded body of a successful call.
type Response struct {
	TotalArticles int             `json:"totalArticles"`
	Articles      []types.Article `json:"articles"`
}

// Config holds the fetcher settings loaded at startup.
type Config struct {
	APIKey  string
	BaseURL string        // defaults to DefaultBaseURL
	Timeout time.Duration // zero disables the client timeout
}

// Client fetches from the GNews API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a Client from cfg.
func NewClient(cfg Config, opts ...Option) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Fetch issues one GET to endpoint with params plus the API key.
func (c *Client) Fetch(ctx context.Context, endpoint Endpoint, params map[string]any) (*Response, error) {
	query := encodeParams(params)
	query.Set("apikey", c.apiKey)

	reqURL := c.baseURL + "/" + string(endpoint) + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("gnews: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Info("gnews request", "endpoint", endpoint, "params", params)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("gnews request failed", "endpoint", endpoint, "error", redact(err.Error(), c.apiKey))
		return nil, &NetworkError{Err: redactError(err, c.apiKey)}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		upErr := readUpstreamError(resp)
		c.logger.Error("gnews upstream error", "endpoint", endpoint, "status", resp.StatusCode, "error", upErr.Error())
		return nil, upErr
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("gnews: decode response: %w", err)
	}

	c.logger.Info("gnews response", "endpoint", endpoint, "total_articles", out.TotalArticles, "returned", len(out.Articles))
	return &out, nil
}

func readUpstreamError(resp *http.Response) *UpstreamError {
	upErr := &UpstreamError{StatusCode: resp.StatusCode}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	var payload struct {
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Errors) > 0 && string(payload.Errors) != "null" {
		upErr.Errors = payload.Errors
		return upErr
	}

	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody]
	}
	upErr.Body = text
	return upErr
}

// encodeParams renders supplied parameters as query values.
func encodeParams(params map[string]any) url.Values {
	values := make(url.Values, len(params)+1)
	for k, v := range params {
		values.Set(k, fmt.Sprint(v))
	}
	return values
}

// redactError keeps *url.Error wrapping intact while hiding the key in its URL.
func redactError(err error, apiKey string) error {
	if apiKey == "" {
		return err
	}
	if uerr, ok := err.(*url.Error); ok {
		return &url.Error{Op: uerr.Op, URL: redact(uerr.URL, apiKey), Err: uerr.Err}
	}
	return err
}

func redact(s, apiKey string) string {
	if apiKey == "" {
		return s
	}
	return strings.ReplaceAll(s, apiKey, "REDACTED")
}
