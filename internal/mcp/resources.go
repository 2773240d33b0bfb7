package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/gnews-mcp/pkg/types"
)

// Resource URIs
const (
	ResourceLanguages   = "gnews://supported-languages"
	ResourceCountries   = "gnews://supported-countries"
	ResourceQuerySyntax = "gnews://query-syntax"
)

const querySyntaxGuide = `# GNews Query Syntax

## Basic Search
- Simple keywords: ` + "`technology`" + `
- Multiple keywords: ` + "`artificial intelligence`" + ` (implicit AND)

## Exact Phrases
Use double quotes: ` + "`\"machine learning\"`" + `

## Logical Operators
- AND: ` + "`Apple AND iPhone`" + `
- OR: ` + "`Apple OR Microsoft`" + `
- NOT: ` + "`Apple NOT iPhone`" + `

Operators must be uppercase. NOT excludes the following term.

## Grouping
Use parentheses for complex queries: ` + "`(Apple OR Microsoft) AND \"artificial intelligence\"`" + `

## Special Characters
Queries containing special characters must be wrapped in quotes: ` + "`\"Hello!\"`" + `
`

func registerNewsResources(s *server.MCPServer) {
	s.AddResource(
		mcp.NewResource(ResourceLanguages, "Supported Languages",
			mcp.WithResourceDescription("List of language codes supported by the GNews API"),
			mcp.WithMIMEType("text/markdown"),
		),
		staticResource(ResourceLanguages, languagesDocument()),
	)
	s.AddResource(
		mcp.NewResource(ResourceCountries, "Supported Countries",
			mcp.WithResourceDescription("List of country codes supported by the GNews API"),
			mcp.WithMIMEType("text/markdown"),
		),
		staticResource(ResourceCountries, countriesDocument()),
	)
	s.AddResource(
		mcp.NewResource(ResourceQuerySyntax, "Query Syntax",
			mcp.WithResourceDescription("Search query syntax guide for the GNews API"),
			mcp.WithMIMEType("text/markdown"),
		),
		staticResource(ResourceQuerySyntax, querySyntaxGuide),
	)
}

func staticResource(uri, text string) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: "text/markdown",
				Text:     text,
			},
		}, nil
	}
}

func languagesDocument() string {
	var b strings.Builder
	b.WriteString("# Supported Languages\n\n")
	for _, code := range types.SupportedLanguages() {
		fmt.Fprintf(&b, "- `%s`: %s\n", code, types.Language(code).Name())
	}
	return b.String()
}

func countriesDocument() string {
	var b strings.Builder
	b.WriteString("# Supported Countries\n\n")
	for _, code := range types.SupportedCountries() {
		fmt.Fprintf(&b, "- `%s`: %s\n", code, types.Country(code).Name())
	}
	return b.String()
}
