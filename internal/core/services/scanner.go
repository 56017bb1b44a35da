package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/custodia-labs/mdtool/internal/core/domain"
	"github.com/custodia-labs/mdtool/internal/core/ports/driven"
	"github.com/custodia-labs/mdtool/internal/logger"
)

// Scanner walks a repository and collects the files that pass the
// inclusion filter.
type Scanner struct {
	reader driven.RepositoryReader
	filter *InclusionFilter
}

// NewScanner creates a scanner over reader.
func NewScanner(reader driven.RepositoryReader, filter *InclusionFilter) *Scanner {
	return &Scanner{
		reader: reader,
		filter: filter,
	}
}

// pending holds the not-yet-visited entries of one directory listing.
type pending struct {
	entries []driven.TreeEntry
}

// Scan fetches repository metadata and walks the tree depth-first from the
// root, in listing order.
//
// Failing to read the repository metadata is fatal and wraps
// domain.ErrRepositoryAccess. Failures on individual paths, including the
// root listing, are recorded as failed entries and skipped.
func (s *Scanner) Scan(ctx context.Context, ref domain.RepoRef) (*domain.ScanResult, error) {
	logger.Section("Scan")

	meta, err := s.reader.GetMetadata(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrRepositoryAccess, ref, err)
	}

	result := &domain.ScanResult{
		Metadata: *meta,
		Files:    domain.NewFileSet(),
	}

	// Worklist of directory listings. The top frame is consumed one entry
	// at a time so a sub-directory is fully walked before its later siblings.
	var stack []*pending
	if frame := s.list(ctx, ref, "", result); frame != nil {
		stack = append(stack, frame)
	}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		top := stack[len(stack)-1]
		if len(top.entries) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		entry := top.entries[0]
		top.entries = top.entries[1:]

		switch entry.Kind {
		case domain.EntryDir:
			if ok, reason := s.filter.CheckDir(entry.Path); !ok {
				logger.Debug("Pruned directory %s (%s)", entry.Path, reason)
				result.Entries = append(result.Entries, domain.ScanEntry{
					Path: entry.Path, Kind: entry.Kind, Outcome: domain.OutcomeExcluded, Reason: reason,
				})
				continue
			}
			if frame := s.list(ctx, ref, entry.Path, result); frame != nil {
				stack = append(stack, frame)
			}

		case domain.EntryFile:
			result.Entries = append(result.Entries, s.scanFile(ctx, ref, entry, result.Files))

		default:
			result.Entries = append(result.Entries, domain.ScanEntry{
				Path:    entry.Path,
				Kind:    entry.Kind,
				Size:    entry.Size,
				Outcome: domain.OutcomeExcluded,
				Reason:  domain.ReasonUnsupportedKind,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("Scan of %s: %d included, %d excluded, %d failed",
		ref, result.Files.Len(), result.Count(domain.OutcomeExcluded), result.Count(domain.OutcomeFailed))
	return result, nil
}

// list fetches one directory listing. A failure is recorded on result and
// yields a nil frame.
func (s *Scanner) list(ctx context.Context, ref domain.RepoRef, path string, result *domain.ScanResult) *pending {
	entries, err := s.reader.ListDirectory(ctx, ref, path)
	if err != nil {
		logger.Warn("Error accessing %s: %v", displayPath(path), err)
		result.Entries = append(result.Entries, domain.ScanEntry{
			Path:    path,
			Kind:    domain.EntryDir,
			Outcome: domain.OutcomeFailed,
			Reason:  domain.ReasonListFailed,
			Err:     err,
		})
		return nil
	}
	return &pending{entries: entries}
}

// scanFile applies the inclusion filter to one file and, when included,
// reads and decodes it into files.
func (s *Scanner) scanFile(
	ctx context.Context, ref domain.RepoRef, entry driven.TreeEntry, files *domain.FileSet,
) domain.ScanEntry {
	out := domain.ScanEntry{Path: entry.Path, Kind: entry.Kind, Size: entry.Size}

	if ok, reason := s.filter.CheckFile(entry.Path, entry.Size); !ok {
		logger.Debug("Excluded %s (%s)", entry.Path, reason)
		out.Outcome = domain.OutcomeExcluded
		out.Reason = reason
		return out
	}

	data, err := s.reader.ReadFile(ctx, ref, entry.Path)
	if err != nil {
		logger.Warn("Skipping file %s: %v", entry.Path, err)
		out.Outcome = domain.OutcomeFailed
		out.Reason = domain.ReasonReadFailed
		out.Err = err
		return out
	}

	if !utf8.Valid(data) {
		logger.Warn("Skipping file %s: %s", entry.Path, domain.ReasonNotText)
		out.Outcome = domain.OutcomeFailed
		out.Reason = domain.ReasonNotText
		return out
	}

	size := entry.Size
	if size == 0 {
		size = int64(len(data))
	}
	if err := files.Add(domain.FileRecord{Path: entry.Path, Content: string(data), Size: size}); err != nil {
		out.Outcome = domain.OutcomeFailed
		out.Reason = err.Error()
		out.Err = err
		return out
	}

	logger.Info("Added file: %s", entry.Path)
	out.Outcome = domain.OutcomeIncluded
	out.Size = size
	return out
}

func displayPath(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
