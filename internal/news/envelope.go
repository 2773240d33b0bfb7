package news

import (
	"github.com/dshills/gnews-mcp/internal/gnews"
	"github.com/dshills/gnews-mcp/pkg/types"
)

// Success wraps an upstream payload without touching article content.
func Success(resp *gnews.Response, used map[string]any) types.Envelope {
	env := types.Envelope{
		Success:        true,
		ParametersUsed: used,
	}
	if resp != nil {
		env.TotalArticles = resp.TotalArticles
		env.Articles = resp.Articles
	}
	return env
}

// Failure wraps an upstream or network error.
func Failure(err error, used map[string]any) types.Envelope {
	return types.Envelope{
		Success:        false,
		Error:          err.Error(),
		ParametersUsed: used,
	}
}
