package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mdtool/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/mdtool/internal/core/domain"
)

func TestNullTokenProvider(t *testing.T) {
	p := NewNullTokenProvider()

	token, err := p.GetToken(context.Background())

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	assert.Empty(t, token)
	assert.Equal(t, SourceNone, p.Source())
	assert.False(t, p.IsAuthenticated())
}

func TestStaticTokenProvider(t *testing.T) {
	p := NewStaticTokenProvider("  ghp_abc \n", SourceFlag)

	token, err := p.GetToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ghp_abc", token)
	assert.Equal(t, SourceFlag, p.Source())
	assert.True(t, p.IsAuthenticated())

	empty := NewStaticTokenProvider("", SourceFlag)
	_, err = empty.GetToken(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	assert.False(t, empty.IsAuthenticated())
}

func TestEnvTokenProvider(t *testing.T) {
	t.Setenv("MDTOOL_TEST_TOKEN", "")
	p := NewEnvTokenProvider("MDTOOL_TEST_TOKEN")

	assert.False(t, p.IsAuthenticated())
	_, err := p.GetToken(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthRequired)

	t.Setenv("MDTOOL_TEST_TOKEN", "from-env")
	token, err := p.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-env", token)
	assert.True(t, p.IsAuthenticated())
	assert.Equal(t, SourceEnv, p.Source())
}

func TestConfigTokenProvider(t *testing.T) {
	store := memory.NewConfigStore()
	p := NewConfigTokenProvider(store, GitHubTokenKey)

	assert.False(t, p.IsAuthenticated())
	_, err := p.GetToken(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthRequired)

	require.NoError(t, store.Set(GitHubTokenKey, "from-config"))
	token, err := p.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-config", token)
	assert.Equal(t, SourceConfig, p.Source())

	assert.False(t, NewConfigTokenProvider(nil, GitHubTokenKey).IsAuthenticated())
}

func TestNewGitHubTokenProvider_Precedence(t *testing.T) {
	tests := map[string]struct {
		flag       string
		env        string
		config     string
		wantToken  string
		wantSource string
	}{
		"flag wins":          {flag: "f", env: "e", config: "c", wantToken: "f", wantSource: SourceFlag},
		"env before config":  {env: "e", config: "c", wantToken: "e", wantSource: SourceEnv},
		"config as fallback": {config: "c", wantToken: "c", wantSource: SourceConfig},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(GitHubTokenEnv, tt.env)
			store := memory.NewConfigStore()
			if tt.config != "" {
				require.NoError(t, store.Set(GitHubTokenKey, tt.config))
			}

			p := NewGitHubTokenProvider(tt.flag, store)

			token, err := p.GetToken(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, tt.wantSource, p.Source())
			assert.True(t, p.IsAuthenticated())
		})
	}
}

func TestNewGitHubTokenProvider_NoneConfigured(t *testing.T) {
	t.Setenv(GitHubTokenEnv, "")

	p := NewGitHubTokenProvider("", memory.NewConfigStore())

	_, err := p.GetToken(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	assert.Equal(t, SourceNone, p.Source())
	assert.False(t, p.IsAuthenticated())
}
