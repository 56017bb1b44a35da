// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - RepositoryReader: Reads metadata, directory listings, and file content
//   - LLMService: Generates text for each batch
//   - ConfigStore: Application configuration
//   - TokenProvider: Supplies the repository host credential
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - PromptStore: User-editable prompt templates. Without it, embedded defaults are used.
//   - DocumentSink: Persists the generated document. Without it, --save is rejected.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
