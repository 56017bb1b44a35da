package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/mdtool/internal/core/domain"
	"github.com/custodia-labs/mdtool/internal/core/ports/driven"
)

func TestSummariseMetadata(t *testing.T) {
	meta := domain.RepoMetadata{
		Name:     "demo",
		Language: "Go",
		Stars:    12,
		Topics:   []string{"cli", "docs"},
	}

	got := SummariseMetadata(meta)

	assert.Equal(t, strings.Join([]string{
		"- **name**: demo",
		"- **language**: Go",
		"- **stars**: 12",
		"- **forks**: 0",
		"- **open_issues**: 0",
		"- **topics**: cli, docs",
	}, "\n"), got)
	assert.NotContains(t, got, "description")
	assert.NotContains(t, got, "license")
}

func TestSummariseFiles(t *testing.T) {
	files := []domain.FileRecord{
		{Path: "main.go", Content: "package main"},
		{Path: "long.txt", Content: strings.Repeat("é", 250)},
	}

	got := SummariseFiles(files)

	parts := strings.Split(got, "\n\n")
	assert.Len(t, parts, 2)
	assert.Equal(t, "### main.go\n```\npackage main\n```", parts[0])
	assert.Equal(t, "### long.txt\n```\n"+strings.Repeat("é", 200)+"...\n```", parts[1])
}

func TestPreview_ExactLimitNotTruncated(t *testing.T) {
	content := strings.Repeat("a", previewLimit)
	assert.Equal(t, content, preview(content))
}

func TestPromptBuilder_DefaultTemplate(t *testing.T) {
	b := NewPromptBuilder(nil)
	batch := domain.Batch{Files: []domain.FileRecord{{Path: "a.go", Content: "package a"}}}

	got := b.Build(domain.RepoMetadata{Name: "demo"}, batch)

	assert.True(t, strings.HasPrefix(got, "Generate a comprehensive README.md"))
	assert.Contains(t, got, "- **name**: demo")
	assert.Contains(t, got, "### a.go")
	assert.NotContains(t, got, "%!")
}

func TestPromptBuilder_CustomTemplate(t *testing.T) {
	store := &mockPromptStore{prompts: map[string]string{
		driven.PromptReadmeBatch: "META\n%s\nFILES\n%s",
	}}
	b := NewPromptBuilder(store)
	batch := domain.Batch{Files: []domain.FileRecord{{Path: "a.go", Content: "x"}}}

	got := b.Build(domain.RepoMetadata{Name: "demo"}, batch)

	assert.True(t, strings.HasPrefix(got, "META\n- **name**: demo"))
	assert.Contains(t, got, "FILES\n### a.go")
}

func TestPromptBuilder_FallsBack(t *testing.T) {
	tests := []struct {
		name  string
		store *mockPromptStore
	}{
		{"load error", &mockPromptStore{err: errors.New("disk gone")}},
		{"missing prompt", &mockPromptStore{prompts: map[string]string{}}},
		{"one placeholder", &mockPromptStore{prompts: map[string]string{driven.PromptReadmeBatch: "only %s"}}},
		{"stray verb", &mockPromptStore{prompts: map[string]string{driven.PromptReadmeBatch: "%s %s %d"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPromptBuilder(tt.store).Build(domain.RepoMetadata{}, domain.Batch{})
			assert.True(t, strings.HasPrefix(got, "Generate a comprehensive README.md"))
		})
	}
}
