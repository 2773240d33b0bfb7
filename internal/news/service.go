// Package news composes parameter validation, the upstream fetch and the
// response envelope for the news tools.
package news

import (
	"context"
	"log/slog"

	"github.com/dshills/gnews-mcp/internal/gnews"
	"github.com/dshills/gnews-mcp/pkg/types"
)

// Fetcher issues one upstream request. *gnews.Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint gnews.Endpoint, params map[string]any) (*gnews.Response, error)
}

// Service runs the news tool operations. It holds no mutable state.
type Service struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// NewService creates a Service backed by fetcher.
func NewService(fetcher Fetcher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{fetcher: fetcher, logger: logger}
}

// Search validates p and runs a keyword search. A non-nil error is always a
// *types.ValidationError; upstream and network failures are reported in the
// envelope instead.
func (s *Service) Search(ctx context.Context, p types.SearchParams) (types.Envelope, error) {
	if err := p.Validate(); err != nil {
		return types.Envelope{}, err
	}

	used := p.Used()
	resp, err := s.fetcher.Fetch(ctx, gnews.EndpointSearch, used)
	if err != nil {
		env := Failure(err, used)
		env.Query = p.Query
		return env, nil
	}

	env := Success(resp, used)
	env.Query = p.Query
	return env, nil
}

// TopHeadlines validates p and fetches headlines for its category.
func (s *Service) TopHeadlines(ctx context.Context, p types.HeadlinesParams) (types.Envelope, error) {
	if err := p.Validate(); err != nil {
		return types.Envelope{}, err
	}

	used := p.Used()
	s.logger.Debug("getting top headlines", "category", p.EffectiveCategory(), "params", used)

	resp, err := s.fetcher.Fetch(ctx, gnews.EndpointTopHeadlines, used)
	if err != nil {
		env := Failure(err, used)
		env.Category = p.EffectiveCategory()
		return env, nil
	}

	env := Success(resp, used)
	env.Category = p.EffectiveCategory()
	return env, nil
}
