package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// PromptNewsSearch is the name of the search prompt
const PromptNewsSearch = "create_news_search_prompt"

var errTopicRequired = errors.New("topic argument is required")

func registerNewsPrompts(s *server.MCPServer) {
	s.AddPrompt(
		mcp.NewPrompt(PromptNewsSearch,
			mcp.WithPromptDescription("Create a prompt for searching news on a specific topic"),
			mcp.WithArgument("topic",
				mcp.ArgumentDescription("The topic to search news for"),
				mcp.RequiredArgument(),
			),
		),
		handleNewsSearchPrompt,
	)
}

func handleNewsSearchPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic := strings.TrimSpace(request.Params.Arguments["topic"])
	if topic == "" {
		return nil, errTopicRequired
	}
	return mcp.NewGetPromptResult(
		"News search on "+topic,
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(newsSearchPromptText(topic))),
		},
	), nil
}

func newsSearchPromptText(topic string) string {
	return fmt.Sprintf(`Please search for recent news about "%s" using the search_news tool.

Consider these search strategies:
1. Use specific keywords related to %s
2. Try different language and country filters if relevant
3. Use logical operators (AND, OR, NOT) to refine results
4. Sort by relevance or publication date as appropriate

Then use get_top_headlines to see if there are any trending stories related to %s in relevant categories.`,
		topic, topic, topic)
}
