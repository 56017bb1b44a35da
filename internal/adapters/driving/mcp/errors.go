// Package mcp provides an MCP (Model Context Protocol) server adapter for mdtool.
// It lets AI assistants generate READMEs for GitHub repositories.
package mcp

import "errors"

// ErrMissingReadmeService is returned when the README service is not provided.
var ErrMissingReadmeService = errors.New("mcp: readme service is required")
