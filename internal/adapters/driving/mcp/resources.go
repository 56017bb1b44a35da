package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for mdtool resources.
	uriScheme = "mdtool://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current scan, batch, and LLM settings (secrets omitted)",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "readmes/{runId}",
		Name:        "readme",
		Description: "A README generated earlier in this session",
		MIMEType:    "text/markdown",
	}, s.handleReadmeResource)
}

// settingsInfo is the public view of the settings.
type settingsInfo struct {
	LLMProvider     string   `json:"llm_provider"`
	LLMModel        string   `json:"llm_model"`
	MaxFileSize     int64    `json:"max_file_size"`
	ExcludePatterns []string `json:"exclude_patterns"`
	BatchSize       int      `json:"batch_size"`
	GitHubToken     bool     `json:"github_token_configured"`
}

// handleSettingsResource returns the current settings without credentials.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}

	info := settingsInfo{
		LLMProvider:     settings.LLM.Provider.String(),
		LLMModel:        settings.LLM.Model,
		MaxFileSize:     settings.Scan.MaxFileSize,
		ExcludePatterns: settings.Scan.ExcludePatterns,
		BatchSize:       settings.Batch.Size,
		GitHubToken:     settings.GitHub.Token != "",
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleReadmeResource returns a README generated earlier in this session.
func (s *Server) handleReadmeResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	runID := extractRunID(req.Params.URI)
	if runID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	readme, ok := s.lookup(runID)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     readme.Content,
		}},
	}, nil
}

// readmeURI returns the resource URI for a run.
func readmeURI(runID string) string {
	return uriScheme + "readmes/" + runID
}

// extractRunID extracts the run ID from a URI like mdtool://readmes/{runId}.
func extractRunID(uri string) string {
	const prefix = uriScheme + "readmes/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
