// Package output provides DocumentSink adapters for generated documents.
package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/mdtool/internal/core/domain"
	"github.com/custodia-labs/mdtool/internal/core/ports/driven"
)

// Ensure FileSink implements the interface.
var _ driven.DocumentSink = (*FileSink)(nil)

// DefaultPath is where documents are written when no path is given.
const DefaultPath = "README.md"

// FileSink writes documents to the local filesystem.
type FileSink struct {
	baseDir string
}

// NewFileSink creates a sink resolving relative paths against baseDir.
// An empty baseDir means the working directory.
func NewFileSink(baseDir string) *FileSink {
	return &FileSink{baseDir: baseDir}
}

// Write stores content verbatim at path, creating parent directories.
// An existing file is replaced. Returns the absolute path written.
func (s *FileSink) Write(ctx context.Context, path, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if path == "" {
		path = DefaultPath
	}
	if !filepath.IsAbs(path) && s.baseDir != "" {
		path = filepath.Join(s.baseDir, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}

	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return "", fmt.Errorf("%s is a directory: %w", abs, domain.ErrInvalidInput)
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", fmt.Errorf("create directory for %s: %w", abs, err)
	}

	if err := os.WriteFile(abs, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", abs, err)
	}
	return abs, nil
}
