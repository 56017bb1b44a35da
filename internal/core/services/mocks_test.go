package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/mdtool/internal/core/domain"
	"github.com/custodia-labs/mdtool/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockReader implements driven.RepositoryReader over an in-memory tree.
type mockReader struct {
	meta    *domain.RepoMetadata
	metaErr error

	// dirs maps a directory path ("" for the root) to its listing.
	dirs    map[string][]driven.TreeEntry
	listErr map[string]error

	files   map[string][]byte
	readErr map[string]error

	mu     sync.Mutex
	listed []string
	read   []string
}

func newMockReader() *mockReader {
	return &mockReader{
		meta:    &domain.RepoMetadata{Name: "demo", FullName: "octo/demo", Language: "Go"},
		dirs:    make(map[string][]driven.TreeEntry),
		listErr: make(map[string]error),
		files:   make(map[string][]byte),
		readErr: make(map[string]error),
	}
}

// addFile registers a file under its parent directory listing.
func (m *mockReader) addFile(dir, path, content string) {
	m.dirs[dir] = append(m.dirs[dir], driven.TreeEntry{
		Path: path, Kind: domain.EntryFile, Size: int64(len(content)),
	})
	m.files[path] = []byte(content)
}

// addDir registers a sub-directory entry under dir.
func (m *mockReader) addDir(dir, path string) {
	m.dirs[dir] = append(m.dirs[dir], driven.TreeEntry{Path: path, Kind: domain.EntryDir})
}

func (m *mockReader) GetMetadata(_ context.Context, _ domain.RepoRef) (*domain.RepoMetadata, error) {
	if m.metaErr != nil {
		return nil, m.metaErr
	}
	return m.meta, nil
}

func (m *mockReader) ListDirectory(_ context.Context, _ domain.RepoRef, path string) ([]driven.TreeEntry, error) {
	m.mu.Lock()
	m.listed = append(m.listed, path)
	m.mu.Unlock()
	if err := m.listErr[path]; err != nil {
		return nil, err
	}
	return m.dirs[path], nil
}

func (m *mockReader) ReadFile(_ context.Context, _ domain.RepoRef, path string) ([]byte, error) {
	m.mu.Lock()
	m.read = append(m.read, path)
	m.mu.Unlock()
	if err := m.readErr[path]; err != nil {
		return nil, err
	}
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}
	return data, nil
}

// mockLLM implements driven.LLMService, returning scripted responses in
// call order.
type mockLLM struct {
	responses []string
	errs      []error

	prompts []string
	opts    []driven.GenerateOptions
}

func (m *mockLLM) Generate(_ context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	i := len(m.prompts)
	m.prompts = append(m.prompts, prompt)
	m.opts = append(m.opts, opts)
	if i < len(m.errs) && m.errs[i] != nil {
		return "", m.errs[i]
	}
	if i < len(m.responses) {
		return m.responses[i], nil
	}
	return fmt.Sprintf("fragment %d", i+1), nil
}

func (m *mockLLM) ModelName() string {
	return "mock-llm"
}

func (m *mockLLM) Ping(_ context.Context) error {
	return nil
}

func (m *mockLLM) Close() error {
	return nil
}

// mockPromptStore implements driven.PromptStore.
type mockPromptStore struct {
	prompts map[string]string
	err     error
}

func (m *mockPromptStore) Load(name string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	p, ok := m.prompts[name]
	if !ok {
		return "", fmt.Errorf("%w: prompt %s", domain.ErrNotFound, name)
	}
	return p, nil
}

func (m *mockPromptStore) Reload() {}
