// Package gnews is the upstream fetcher for the GNews v4 REST API.
//
// A Client issues exactly one HTTP GET per Fetch call. The API key from
// configuration is appended as the apikey query parameter; all other
// parameters are forwarded as given.
//
// Outcomes:
//   - HTTP 200: the JSON body is decoded into Response and returned.
//   - any other status: *UpstreamError carrying the status code and the
//     provider's "errors" value when the body is JSON.
//   - transport failure (DNS, refused connection, timeout): *NetworkError
//     wrapping the cause.
//
// There are no retries and no caching; every call is a fresh fetch.
//
//	client := gnews.NewClient(gnews.Config{APIKey: key})
//	resp, err := client.Fetch(ctx, gnews.EndpointSearch, map[string]any{"q": "golang"})
package gnews
