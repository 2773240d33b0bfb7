package types

import "encoding/json"

// Article is an opaque provider record (title, description, url, publishedAt,
// source, ...). It is forwarded as received.
type Article = map[string]any

// Envelope is the structured success/error wrapper returned by the news tools.
type Envelope struct {
	Success        bool
	Query          string   // set by search
	Category       Category // set by top headlines
	TotalArticles  int
	Articles       []Article
	Error          string
	ParametersUsed map[string]any
}

// MarshalJSON emits totalArticles/articles only on success and error only on failure.
func (e Envelope) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"success":         e.Success,
		"parameters_used": e.ParametersUsed,
	}
	if out["parameters_used"] == nil {
		out["parameters_used"] = map[string]any{}
	}
	if e.Query != "" {
		out["query"] = e.Query
	}
	if e.Category != "" {
		out["category"] = string(e.Category)
	}
	if e.Success {
		articles := e.Articles
		if articles == nil {
			articles = []Article{}
		}
		out["totalArticles"] = e.TotalArticles
		out["articles"] = articles
	} else {
		out["error"] = e.Error
	}
	return json.Marshal(out)
}
