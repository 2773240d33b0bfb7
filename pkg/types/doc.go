// Package types provides shared type definitions for the gnews MCP server.
//
// This package defines the request parameters accepted by the news tools, the
// closed allow-lists they are validated against, and the envelope every news
// tool call returns.
//
// # Allow-lists
//
// Language, Country, Category and SortKey are closed string types. Membership
// is checked against package-level sets built once at init:
//
//	types.Language("en").Valid()    // true
//	types.Country("xx").Valid()     // false
//	types.SupportedLanguages()      // sorted codes
//
// # Parameters
//
// SearchParams and HeadlinesParams mirror the tool arguments. Optional fields
// are pointers or empty strings; only supplied fields reach the upstream API:
//
//	p := types.SearchParams{Query: "golang", Lang: "en", MaxArticles: types.Int(5)}
//	if err := p.Validate(); err != nil {
//	    var verr *types.ValidationError
//	    errors.As(err, &verr) // verr.Field == "lang", verr.Value == ...
//	}
//	p.Used() // map[string]any{"q": "golang", "lang": "en", "max": 5}
//
// # Envelope
//
// Envelope is the success/error wrapper returned by every news tool:
//
//	{"success": true, "query": "golang", "totalArticles": 2, "articles": [...], "parameters_used": {...}}
//	{"success": false, "error": "GNews API error: 401 - ...", "query": "golang", "parameters_used": {...}}
//
// Articles are opaque provider records and are forwarded untouched.
package types
