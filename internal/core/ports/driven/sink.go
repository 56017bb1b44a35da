package driven

import "context"

// DocumentSink persists a generated document verbatim.
type DocumentSink interface {
	// Write stores content at path and returns the location written.
	Write(ctx context.Context, path, content string) (string, error)
}
