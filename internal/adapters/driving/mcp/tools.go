package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/mdtool/internal/core/domain"
	"github.com/custodia-labs/mdtool/internal/core/ports/driving"
)

// GenerateReadmeInput is the input schema for the generate_readme tool.
type GenerateReadmeInput struct {
	Repo        string `json:"repo" jsonschema:"the GitHub repository as owner/name"`
	BatchSize   int    `json:"batch_size,omitempty" jsonschema:"files per LLM request (default from settings)"`
	MaxFileSize int64  `json:"max_file_size,omitempty" jsonschema:"skip files larger than this many bytes"`
}

// GenerateReadmeOutput is the output schema for the generate_readme tool.
type GenerateReadmeOutput struct {
	RunID         string `json:"run_id"`
	Repo          string `json:"repo"`
	Content       string `json:"content"`
	Files         int    `json:"files"`
	Batches       int    `json:"batches"`
	FailedBatches int    `json:"failed_batches"`
	ResourceURI   string `json:"resource_uri"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_readme",
		Description: "Generate a README.md for a GitHub repository by summarising its source files",
	}, s.handleGenerateReadme)
}

// handleGenerateReadme handles the generate_readme tool invocation.
func (s *Server) handleGenerateReadme(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateReadmeInput,
) (*mcp.CallToolResult, GenerateReadmeOutput, error) {
	if input.BatchSize < 0 || input.MaxFileSize < 0 {
		return nil, GenerateReadmeOutput{}, fmt.Errorf(
			"%w: batch_size and max_file_size must not be negative", domain.ErrInvalidInput)
	}

	opts := driving.GenerateOptions{
		BatchSize:   input.BatchSize,
		MaxFileSize: input.MaxFileSize,
	}
	readme, err := s.ports.Readme.Generate(ctx, input.Repo, opts)
	if err != nil {
		if errors.Is(err, domain.ErrNoContent) {
			return nil, GenerateReadmeOutput{}, fmt.Errorf("no README content was generated for %s: %w", input.Repo, err)
		}
		return nil, GenerateReadmeOutput{}, err
	}

	s.remember(readme)

	return nil, GenerateReadmeOutput{
		RunID:         readme.RunID,
		Repo:          readme.Repo.String(),
		Content:       readme.Content,
		Files:         readme.Files,
		Batches:       readme.Batches,
		FailedBatches: readme.FailedFragments(),
		ResourceURI:   readmeURI(readme.RunID),
	}, nil
}
