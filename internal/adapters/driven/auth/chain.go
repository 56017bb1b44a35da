package auth

import (
	"context"

	"github.com/custodia-labs/mdtool/internal/core/ports/driven"
)

// GitHubTokenEnv is the environment variable holding a GitHub token.
const GitHubTokenEnv = "GITHUB_TOKEN"

// GitHubTokenKey is the config key holding a GitHub token.
const GitHubTokenKey = "github.token"

// Ensure ChainTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*ChainTokenProvider)(nil)

// ChainTokenProvider delegates to the first authenticated provider.
type ChainTokenProvider struct {
	providers []driven.TokenProvider
}

// NewChainTokenProvider creates a chain. Earlier providers win.
func NewChainTokenProvider(providers ...driven.TokenProvider) *ChainTokenProvider {
	return &ChainTokenProvider{providers: providers}
}

// NewGitHubTokenProvider resolves a GitHub token from the flag value, then
// GITHUB_TOKEN, then github.token in the config store.
func NewGitHubTokenProvider(flagToken string, store driven.ConfigStore) *ChainTokenProvider {
	return NewChainTokenProvider(
		NewStaticTokenProvider(flagToken, SourceFlag),
		NewEnvTokenProvider(GitHubTokenEnv),
		NewConfigTokenProvider(store, GitHubTokenKey),
	)
}

// GetToken returns the token of the first authenticated provider.
func (c *ChainTokenProvider) GetToken(ctx context.Context) (string, error) {
	return c.active().GetToken(ctx)
}

// Source returns the source of the active provider, or SourceNone.
func (c *ChainTokenProvider) Source() string {
	return c.active().Source()
}

// IsAuthenticated returns true if any provider holds a token.
func (c *ChainTokenProvider) IsAuthenticated() bool {
	return c.active().IsAuthenticated()
}

func (c *ChainTokenProvider) active() driven.TokenProvider {
	for _, p := range c.providers {
		if p != nil && p.IsAuthenticated() {
			return p
		}
	}
	return NewNullTokenProvider()
}
