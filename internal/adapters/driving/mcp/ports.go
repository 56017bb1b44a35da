package mcp

import (
	"github.com/custodia-labs/mdtool/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Readme generates README documents.
	Readme driving.ReadmeService

	// Settings exposes the current configuration. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Readme == nil {
		return ErrMissingReadmeService
	}
	return nil
}
