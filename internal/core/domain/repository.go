package domain

import (
	"fmt"
	"strings"
)

// RepoRef identifies a hosted repository as owner/name.
type RepoRef struct {
	Owner string
	Name  string
}

// ParseRepoRef parses an "owner/name" identifier.
func ParseRepoRef(s string) (RepoRef, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RepoRef{}, fmt.Errorf("%w: repository must be in format 'owner/repo', got %q", ErrInvalidInput, s)
	}
	return RepoRef{Owner: parts[0], Name: parts[1]}, nil
}

// String returns the owner/name form.
func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// RepoMetadata describes a repository. Captured once per scan.
type RepoMetadata struct {
	Name          string
	FullName      string
	Description   string
	Language      string
	License       string // empty when the repository has no detected license
	Stars         int
	Forks         int
	OpenIssues    int
	DefaultBranch string
	HTMLURL       string
	Topics        []string
}

// HasLicense reports whether a license was detected.
func (m RepoMetadata) HasLicense() bool {
	return m.License != ""
}
