package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/mdtool/internal/core/domain"
	"github.com/custodia-labs/mdtool/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.RepositoryReader = (*Reader)(nil)

// Content types reported by the Contents API.
const (
	contentTypeFile = "file"
	contentTypeDir  = "dir"
)

// Reader reads a repository through the GitHub Contents API.
type Reader struct {
	client *Client
}

// NewReader creates a repository reader backed by client.
func NewReader(client *Client) *Reader {
	return &Reader{client: client}
}

// GetMetadata fetches descriptive information about the repository.
func (r *Reader) GetMetadata(ctx context.Context, ref domain.RepoRef) (*domain.RepoMetadata, error) {
	repo, err := r.client.GetRepository(ctx, ref.Owner, ref.Name)
	if err != nil {
		return nil, err
	}
	return toMetadata(repo), nil
}

// ListDirectory returns the entries of a directory in API order.
// The root is addressed by the empty path.
func (r *Reader) ListDirectory(ctx context.Context, ref domain.RepoRef, path string) ([]driven.TreeEntry, error) {
	file, dir, err := r.client.GetContents(ctx, ref.Owner, ref.Name, path)
	if err != nil {
		return nil, err
	}
	if file != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}

	entries := make([]driven.TreeEntry, 0, len(dir))
	for _, c := range dir {
		entries = append(entries, driven.TreeEntry{
			Path: c.GetPath(),
			Kind: toEntryKind(c.GetType()),
			Size: int64(c.GetSize()),
		})
	}
	return entries, nil
}

// ReadFile returns the decoded content of a file.
func (r *Reader) ReadFile(ctx context.Context, ref domain.RepoRef, path string) ([]byte, error) {
	file, _, err := r.client.GetContents(ctx, ref.Owner, ref.Name, path)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decode content of %s: %w", path, err)
	}
	return []byte(content), nil
}

// toEntryKind maps a Contents API type. Symlinks and submodules are "other".
func toEntryKind(t string) domain.EntryKind {
	switch t {
	case contentTypeFile:
		return domain.EntryFile
	case contentTypeDir:
		return domain.EntryDir
	default:
		return domain.EntryOther
	}
}

// toMetadata converts a go-github repository.
func toMetadata(repo *gh.Repository) *domain.RepoMetadata {
	meta := &domain.RepoMetadata{
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		Description:   repo.GetDescription(),
		Language:      repo.GetLanguage(),
		Stars:         repo.GetStargazersCount(),
		Forks:         repo.GetForksCount(),
		OpenIssues:    repo.GetOpenIssuesCount(),
		DefaultBranch: repo.GetDefaultBranch(),
		HTMLURL:       repo.GetHTMLURL(),
		Topics:        repo.Topics,
	}
	if repo.License != nil {
		meta.License = repo.License.GetName()
	}
	return meta
}
