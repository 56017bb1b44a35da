package driven

import "context"

// TokenProvider provides the bearer credential for repository API calls.
type TokenProvider interface {
	// GetToken returns the access token.
	// Returns an error wrapping domain.ErrAuthRequired when none is available.
	GetToken(ctx context.Context) (string, error)

	// Source describes where the token came from (flag, env, config).
	Source() string

	// IsAuthenticated returns true if a token is available.
	IsAuthenticated() bool
}
