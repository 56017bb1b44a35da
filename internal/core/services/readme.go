package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/mdtool/internal/core/domain"
	"github.com/custodia-labs/mdtool/internal/core/ports/driven"
	"github.com/custodia-labs/mdtool/internal/core/ports/driving"
	"github.com/custodia-labs/mdtool/internal/logger"
)

// Ensure ReadmeService implements the interface.
var _ driving.ReadmeService = (*ReadmeService)(nil)

// ReadmeService scans a repository and asks the LLM for one fragment per
// batch of files. Batches are processed strictly in order.
type ReadmeService struct {
	reader   driven.RepositoryReader
	llm      driven.LLMService
	prompts  *PromptBuilder
	settings domain.AppSettings
	newRunID func() string
}

// NewReadmeService creates a README service. promptStore may be nil.
func NewReadmeService(
	reader driven.RepositoryReader,
	llm driven.LLMService,
	promptStore driven.PromptStore,
	settings domain.AppSettings,
) *ReadmeService {
	return &ReadmeService{
		reader:   reader,
		llm:      llm,
		prompts:  NewPromptBuilder(promptStore),
		settings: settings,
		newRunID: uuid.NewString,
	}
}

// Generate scans repo, partitions the included files, and assembles the
// generated fragments.
//
// A batch whose generation fails contributes nothing and is not retried.
// When no file is included, or every fragment is empty, the returned error
// wraps domain.ErrNoContent.
func (s *ReadmeService) Generate(
	ctx context.Context, repo string, opts driving.GenerateOptions,
) (*domain.Readme, error) {
	if s.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}
	if s.reader == nil {
		return nil, fmt.Errorf("%w: repository reader not configured", domain.ErrRepositoryAccess)
	}

	ref, err := domain.ParseRepoRef(repo)
	if err != nil {
		return nil, err
	}

	scanCfg := s.settings.Scan
	if opts.MaxFileSize > 0 {
		scanCfg.MaxFileSize = opts.MaxFileSize
	}
	batchSize := s.settings.Batch.Size
	if opts.BatchSize > 0 {
		batchSize = opts.BatchSize
	}
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: batch size must be positive, got %d", domain.ErrInvalidInput, batchSize)
	}

	runID := s.newRunID()
	logger.Info("Starting README generation for %s", ref)
	logger.Debug("Run %s: batch size %d, max file size %d", runID, batchSize, scanCfg.MaxFileSize)

	result, err := NewScanner(s.reader, NewInclusionFilter(scanCfg)).Scan(ctx, ref)
	if err != nil {
		return nil, err
	}

	files := result.Files.Records()
	logger.Success("Found %d relevant files", len(files))
	if len(files) == 0 {
		logger.Warn("No suitable files found for analysis")
		return nil, fmt.Errorf("%w: no suitable files found in %s", domain.ErrNoContent, ref)
	}

	batches, err := Partition(files, batchSize)
	if err != nil {
		return nil, err
	}

	logger.Section("Generate")
	fragments := make([]domain.Fragment, 0, len(batches))
	for _, batch := range batches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logger.Info("Processing batch %d/%d", batch.Index+1, len(batches))
		fragments = append(fragments, s.generateFragment(ctx, result.Metadata, batch, len(batches)))
	}

	readme := &domain.Readme{
		RunID:     runID,
		Repo:      ref,
		Metadata:  result.Metadata,
		Content:   Assemble(fragments),
		Fragments: fragments,
		Files:     len(files),
		Batches:   len(batches),
	}

	if readme.Content == "" {
		return nil, fmt.Errorf("%w: all %d batches returned empty text (%d failed)",
			domain.ErrNoContent, len(batches), readme.FailedFragments())
	}
	return readme, nil
}

// generateFragment requests text for one batch. Errors are logged and
// turned into an empty fragment.
func (s *ReadmeService) generateFragment(
	ctx context.Context, meta domain.RepoMetadata, batch domain.Batch, total int,
) domain.Fragment {
	prompt := s.prompts.Build(meta, batch)
	logger.Debug("Batch %d prompt: %d bytes, %d files", batch.Index+1, len(prompt), batch.Len())

	text, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   s.settings.LLM.MaxTokens,
		Temperature: s.settings.LLM.Temperature,
	})
	if err != nil {
		logger.Warn("Batch %d/%d produced no content: %v", batch.Index+1, total, err)
		return domain.Fragment{BatchIndex: batch.Index, Err: err}
	}
	return domain.Fragment{BatchIndex: batch.Index, Text: strings.TrimSpace(text)}
}
