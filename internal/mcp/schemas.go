package mcp

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/gnews-mcp/pkg/types"
)

// Tool names
const (
	ToolSearchNews       = "search_news"
	ToolTopHeadlines     = "get_top_headlines"
	ToolGetDocumentation = "get_documentation_from_database"
	ToolGetEmails        = "get_emails"
	ToolWriteEmail       = "write_email"
)

var (
	languageProperty = map[string]interface{}{
		"type":        "string",
		"description": "Language code (2 letters). Supported: " + strings.Join(types.SupportedLanguages(), ", "),
		"enum":        types.SupportedLanguages(),
	}
	countryProperty = map[string]interface{}{
		"type":        "string",
		"description": "Country code (2 letters). Supported: " + strings.Join(types.SupportedCountries(), ", "),
		"enum":        types.SupportedCountries(),
	}
	maxArticlesProperty = map[string]interface{}{
		"type":        "integer",
		"description": "Number of articles to return (1-100)",
		"minimum":     types.MinArticles,
		"maximum":     types.MaxArticles,
	}
	nullableProperty = map[string]interface{}{
		"type":        "string",
		"description": "Allow null values for: description, content, image (comma-separated)",
	}
	dateFromProperty = map[string]interface{}{
		"type":        "string",
		"description": "Filter articles from this date (ISO 8601 format: YYYY-MM-DDTHH:MM:SS.sssZ)",
	}
	dateToProperty = map[string]interface{}{
		"type":        "string",
		"description": "Filter articles until this date (ISO 8601 format: YYYY-MM-DDTHH:MM:SS.sssZ)",
	}
	pageProperty = map[string]interface{}{
		"type":        "integer",
		"description": "Page number for pagination",
		"minimum":     types.MinPage,
	}
)

// searchNewsTool returns the tool definition for search_news
func searchNewsTool() mcp.Tool {
	return mcp.Tool{
		Name: ToolSearchNews,
		Description: "Search for news articles using specific keywords, with optional language, country, " +
			"date range and sorting filters. Supports logical operators (AND, OR, NOT), quoted exact phrases " +
			"and parentheses. Returns article title, description, content, url, image, publishedAt and source.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"q": map[string]interface{}{
					"type":        "string",
					"description": "Search keywords. Use logical operators like AND, OR, NOT. Use quotes for exact phrases.",
				},
				"lang":         languageProperty,
				"country":      countryProperty,
				"max_articles": maxArticlesProperty,
				"search_in": map[string]interface{}{
					"type":        "string",
					"description": "Search in specific fields: title, description, content (comma-separated)",
				},
				"nullable":  nullableProperty,
				"date_from": dateFromProperty,
				"date_to":   dateToProperty,
				"sortby": map[string]interface{}{
					"type":        "string",
					"description": "Sort by publication date or relevance",
					"enum":        types.SupportedSortKeys(),
				},
				"page": pageProperty,
			},
			Required: []string{"q"},
		},
	}
}

// topHeadlinesTool returns the tool definition for get_top_headlines
func topHeadlinesTool() mcp.Tool {
	return mcp.Tool{
		Name: ToolTopHeadlines,
		Description: "Get current trending news articles based on Google News ranking for a category " +
			"(general when omitted): " + strings.Join(types.SupportedCategories(), ", ") + ".",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"category": map[string]interface{}{
					"type":        "string",
					"description": "News category",
					"enum":        types.SupportedCategories(),
				},
				"lang":         languageProperty,
				"country":      countryProperty,
				"max_articles": maxArticlesProperty,
				"nullable":     nullableProperty,
				"date_from":    dateFromProperty,
				"date_to":      dateToProperty,
				"q": map[string]interface{}{
					"type":        "string",
					"description": "Additional search keywords to filter headlines",
				},
				"page": pageProperty,
			},
		},
	}
}

// getDocumentationTool returns the tool definition for get_documentation_from_database
func getDocumentationTool() mcp.Tool {
	return mcp.Tool{
		Name:        ToolGetDocumentation,
		Description: "Returns the documentation from the database for the project. Useful for figuring out what the project is about.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// getEmailsTool returns the tool definition for get_emails
func getEmailsTool() mcp.Tool {
	return mcp.Tool{
		Name:        ToolGetEmails,
		Description: "Returns the emails from the database for the project. Useful for figuring out what the project is about.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// writeEmailTool returns the tool definition for write_email
func writeEmailTool() mcp.Tool {
	return mcp.Tool{
		Name:        ToolWriteEmail,
		Description: "Write an email to a recipient.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"recipient": map[string]interface{}{
					"type":        "string",
					"description": "Recipient address",
				},
				"subject": map[string]interface{}{
					"type":        "string",
					"description": "Subject line",
				},
				"body": map[string]interface{}{
					"type":        "string",
					"description": "Message body (markdown)",
				},
			},
			Required: []string{"recipient", "subject", "body"},
		},
	}
}
