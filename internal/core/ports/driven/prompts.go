package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files or embed them in the binary.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names.
const (
	// PromptReadmeBatch asks for README content covering one batch of files.
	// The template expects two %s placeholders: metadata summary, then file summaries.
	PromptReadmeBatch = "readme_batch"
)
