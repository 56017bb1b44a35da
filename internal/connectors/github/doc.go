// Package github implements a repository reader for GitHub.
//
// The reader walks a single repository through the Contents API: one
// request per directory listing and one per file read. Repository metadata
// (description, language, license, counts, topics) comes from the
// Repositories API.
//
// # Authentication
//
// A token is obtained from a [driven.TokenProvider]. Personal access tokens
// and OAuth access tokens are both sent as bearer tokens through
// golang.org/x/oauth2. When no token is available, requests are made
// anonymously, which GitHub limits to 60 requests per hour.
//
// # Rate Limiting
//
// The client implements a dual-strategy rate limiting approach:
//
//  1. Proactive throttling: a token bucket limits the request rate
//     (configurable, 10 requests per second by default).
//
//  2. Reactive handling: the client monitors X-RateLimit-Remaining and
//     X-RateLimit-Reset headers. When the remaining quota falls below a
//     buffer, it waits until the reset time before continuing.
//
// Neither strategy retries a failed request.
//
// # Error Handling
//
// go-github errors are converted into [APIError] and [RateLimitError].
// Both unwrap to domain sentinels so callers can use errors.Is:
//
//   - 404: [domain.ErrNotFound]
//   - 401: [domain.ErrAuthInvalid]
//   - 403: [domain.ErrAccessDenied]
//   - rate limiting: [domain.ErrRateLimited]
//
// # Example Usage
//
//	client := github.NewClient(tokenProvider, github.Config{})
//	reader := github.NewReader(client)
//
//	meta, err := reader.GetMetadata(ctx, domain.RepoRef{Owner: "octo", Name: "demo"})
package github
