package driven

import (
	"context"

	"github.com/custodia-labs/mdtool/internal/core/domain"
)

// TreeEntry is one item of a directory listing.
type TreeEntry struct {
	// Path is repository-relative, without a leading slash.
	Path string

	// Kind is file, dir, or other.
	Kind domain.EntryKind

	// Size is the byte size reported by the host. Zero for directories.
	Size int64
}

// RepositoryReader provides read-only access to a hosted repository.
//
// Errors for a missing or inaccessible repository should wrap
// domain.ErrNotFound, domain.ErrAuthInvalid, or domain.ErrAccessDenied
// so the scanner can surface the underlying cause.
type RepositoryReader interface {
	// GetMetadata returns repository metadata.
	GetMetadata(ctx context.Context, ref domain.RepoRef) (*domain.RepoMetadata, error)

	// ListDirectory lists the entries directly under path.
	// The empty path is the repository root. Order is the host's listing order.
	ListDirectory(ctx context.Context, ref domain.RepoRef, path string) ([]TreeEntry, error)

	// ReadFile returns the decoded bytes of the file at path.
	ReadFile(ctx context.Context, ref domain.RepoRef, path string) ([]byte, error)
}
