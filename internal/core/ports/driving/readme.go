package driving

import (
	"context"

	"github.com/custodia-labs/mdtool/internal/core/domain"
)

// GenerateOptions overrides settings for a single run.
// Zero values fall back to configured settings.
type GenerateOptions struct {
	BatchSize   int
	MaxFileSize int64
}

// ReadmeService generates README documents for repositories.
type ReadmeService interface {
	// Generate scans repo ("owner/name"), batches the included files, and
	// assembles the generated fragments.
	// Returns domain.ErrNoContent when nothing was produced.
	Generate(ctx context.Context, repo string, opts GenerateOptions) (*domain.Readme, error)
}
