package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/mdtool/internal/core/domain"
	"github.com/custodia-labs/mdtool/internal/core/ports/driven"
	"github.com/custodia-labs/mdtool/internal/logger"
)

// previewLimit is the number of characters of each file sent to the model.
const previewLimit = 200

// defaultReadmePrompt is the fallback template when no PromptStore is configured.
const defaultReadmePrompt = `Generate a comprehensive README.md for the following project:

Repository Metadata:
%s

Project Files:
%s

Create a detailed README that includes:
1. Project title and description
2. Key features
3. Installation instructions
4. Usage examples
5. Project structure overview
6. Dependencies and requirements
7. Contributing guidelines (if applicable)
8. License information (if available)

Use clear markdown formatting with appropriate sections. Focus on creating a helpful
and informative README that would help users understand and use the project.
If the project has a specific focus or unique features, highlight those prominently.`

// promptPlaceholders is the number of %s verbs a template must carry.
const promptPlaceholders = 2

// PromptBuilder renders the generation prompt for one batch.
type PromptBuilder struct {
	store driven.PromptStore
}

// NewPromptBuilder creates a builder. store may be nil.
func NewPromptBuilder(store driven.PromptStore) *PromptBuilder {
	return &PromptBuilder{store: store}
}

// Build renders the prompt for batch with the full repository metadata.
func (b *PromptBuilder) Build(meta domain.RepoMetadata, batch domain.Batch) string {
	return fmt.Sprintf(b.template(), SummariseMetadata(meta), SummariseFiles(batch.Files))
}

// template loads the user template, falling back to the default when it is
// missing or does not carry exactly two %s placeholders.
func (b *PromptBuilder) template() string {
	if b.store == nil {
		return defaultReadmePrompt
	}
	tmpl, err := b.store.Load(driven.PromptReadmeBatch)
	if err != nil {
		logger.Debug("Prompt %s unavailable, using default: %v", driven.PromptReadmeBatch, err)
		return defaultReadmePrompt
	}
	if strings.Count(tmpl, "%s") != promptPlaceholders || strings.Count(tmpl, "%") != promptPlaceholders {
		logger.Warn("Prompt %s must contain exactly two %%s placeholders, using default", driven.PromptReadmeBatch)
		return defaultReadmePrompt
	}
	return tmpl
}

// SummariseMetadata renders metadata as a markdown list. Text fields that
// are empty are left out; counts are always present.
func SummariseMetadata(meta domain.RepoMetadata) string {
	var lines []string
	add := func(key, value string) {
		if value != "" {
			lines = append(lines, fmt.Sprintf("- **%s**: %s", key, value))
		}
	}
	add("name", meta.Name)
	add("description", meta.Description)
	add("language", meta.Language)
	add("license", meta.License)
	add("stars", fmt.Sprint(meta.Stars))
	add("forks", fmt.Sprint(meta.Forks))
	add("open_issues", fmt.Sprint(meta.OpenIssues))
	if len(meta.Topics) > 0 {
		add("topics", strings.Join(meta.Topics, ", "))
	}
	return strings.Join(lines, "\n")
}

// SummariseFiles renders each file as a heading and a fenced preview.
func SummariseFiles(files []domain.FileRecord) string {
	parts := make([]string, 0, len(files))
	for _, f := range files {
		parts = append(parts, fmt.Sprintf("### %s\n```\n%s\n```", f.Path, preview(f.Content)))
	}
	return strings.Join(parts, "\n\n")
}

// preview truncates content to previewLimit characters.
func preview(content string) string {
	if utf8.RuneCountInString(content) <= previewLimit {
		return content
	}
	runes := []rune(content)
	return string(runes[:previewLimit]) + "..."
}
