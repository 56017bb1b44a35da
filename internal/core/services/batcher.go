package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/mdtool/internal/core/domain"
)

// Partition splits files into consecutive batches of at most size records,
// preserving order. Only the last batch may be shorter.
func Partition(files []domain.FileRecord, size int) ([]domain.Batch, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: batch size must be positive, got %d", domain.ErrInvalidInput, size)
	}

	batches := make([]domain.Batch, 0, (len(files)+size-1)/size)
	for start := 0; start < len(files); start += size {
		end := min(start+size, len(files))
		batch := make([]domain.FileRecord, end-start)
		copy(batch, files[start:end])
		batches = append(batches, domain.Batch{Index: len(batches), Files: batch})
	}
	return batches, nil
}

// fragmentSeparator is the blank line placed between fragments.
const fragmentSeparator = "\n\n"

// Assemble joins the non-empty fragment texts with a blank line, in the
// order given.
func Assemble(fragments []domain.Fragment) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f.IsEmpty() {
			continue
		}
		parts = append(parts, f.Text)
	}
	return strings.Join(parts, fragmentSeparator)
}
