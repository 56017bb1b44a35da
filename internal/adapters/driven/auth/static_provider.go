package auth

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/custodia-labs/mdtool/internal/core/domain"
	"github.com/custodia-labs/mdtool/internal/core/ports/driven"
)

// Token sources, in precedence order.
const (
	SourceFlag   = "flag"
	SourceEnv    = "env"
	SourceConfig = "config"
)

var (
	_ driven.TokenProvider = (*StaticTokenProvider)(nil)
	_ driven.TokenProvider = (*EnvTokenProvider)(nil)
	_ driven.TokenProvider = (*ConfigTokenProvider)(nil)
)

// StaticTokenProvider returns a fixed Personal Access Token.
// PATs don't expire and don't require refresh.
type StaticTokenProvider struct {
	token  string
	source string
}

// NewStaticTokenProvider creates a provider for a token supplied directly,
// typically from a command-line flag.
func NewStaticTokenProvider(token, source string) *StaticTokenProvider {
	return &StaticTokenProvider{token: strings.TrimSpace(token), source: source}
}

// GetToken returns the token or domain.ErrAuthRequired when it is empty.
func (p *StaticTokenProvider) GetToken(_ context.Context) (string, error) {
	if p.token == "" {
		return "", domain.ErrAuthRequired
	}
	return p.token, nil
}

// Source returns where the token came from.
func (p *StaticTokenProvider) Source() string { return p.source }

// IsAuthenticated returns true if a token is set.
func (p *StaticTokenProvider) IsAuthenticated() bool { return p.token != "" }

// EnvTokenProvider reads a token from an environment variable on each call.
type EnvTokenProvider struct {
	name string
}

// NewEnvTokenProvider creates a provider reading the named variable.
func NewEnvTokenProvider(name string) *EnvTokenProvider {
	return &EnvTokenProvider{name: name}
}

// GetToken returns the variable's value.
func (p *EnvTokenProvider) GetToken(_ context.Context) (string, error) {
	token := strings.TrimSpace(os.Getenv(p.name))
	if token == "" {
		return "", fmt.Errorf("%s not set: %w", p.name, domain.ErrAuthRequired)
	}
	return token, nil
}

// Source returns SourceEnv.
func (p *EnvTokenProvider) Source() string { return SourceEnv }

// IsAuthenticated returns true if the variable is non-empty.
func (p *EnvTokenProvider) IsAuthenticated() bool {
	return strings.TrimSpace(os.Getenv(p.name)) != ""
}

// ConfigTokenProvider reads a token from the config store.
type ConfigTokenProvider struct {
	store driven.ConfigStore
	key   string
}

// NewConfigTokenProvider creates a provider reading key from store.
func NewConfigTokenProvider(store driven.ConfigStore, key string) *ConfigTokenProvider {
	return &ConfigTokenProvider{store: store, key: key}
}

// GetToken returns the stored token.
func (p *ConfigTokenProvider) GetToken(_ context.Context) (string, error) {
	if !p.IsAuthenticated() {
		return "", fmt.Errorf("%s not configured: %w", p.key, domain.ErrAuthRequired)
	}
	return strings.TrimSpace(p.store.GetString(p.key)), nil
}

// Source returns SourceConfig.
func (p *ConfigTokenProvider) Source() string { return SourceConfig }

// IsAuthenticated returns true if the key holds a non-empty string.
func (p *ConfigTokenProvider) IsAuthenticated() bool {
	if p.store == nil {
		return false
	}
	return strings.TrimSpace(p.store.GetString(p.key)) != ""
}
