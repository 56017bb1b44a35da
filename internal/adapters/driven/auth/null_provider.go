package auth

import (
	"context"

	"github.com/custodia-labs/mdtool/internal/core/domain"
	"github.com/custodia-labs/mdtool/internal/core/ports/driven"
)

// Ensure NullTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*NullTokenProvider)(nil)

// SourceNone is reported when no token is configured.
const SourceNone = "none"

// NullTokenProvider is used when no GitHub token is configured.
// The GitHub client falls back to anonymous access.
type NullTokenProvider struct{}

// NewNullTokenProvider creates a token provider with no credential.
func NewNullTokenProvider() *NullTokenProvider {
	return &NullTokenProvider{}
}

// GetToken always returns domain.ErrAuthRequired.
func (p *NullTokenProvider) GetToken(_ context.Context) (string, error) {
	return "", domain.ErrAuthRequired
}

// Source returns SourceNone.
func (p *NullTokenProvider) Source() string {
	return SourceNone
}

// IsAuthenticated always returns false.
func (p *NullTokenProvider) IsAuthenticated() bool {
	return false
}
