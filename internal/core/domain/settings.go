package domain

import "time"

const unknownDescription = "Unknown"

// AIProvider identifies an LLM service provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderGroq is the Groq cloud API (OpenAI-compatible).
	AIProviderGroq AIProvider = "groq"

	// AIProviderOpenAI is OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"

	// AIProviderOllama is local Ollama instance (OpenAI-compatible endpoint).
	AIProviderOllama AIProvider = "ollama"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderGroq, AIProviderOpenAI, AIProviderAnthropic, AIProviderOllama:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderGroq || p == AIProviderOpenAI || p == AIProviderAnthropic
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// APIKeyEnv returns the environment variable consulted for the API key.
func (p AIProvider) APIKeyEnv() string {
	switch p {
	case AIProviderGroq:
		return "GROQ_API_KEY"
	case AIProviderOpenAI:
		return "OPENAI_API_KEY"
	case AIProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return ""
	}
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderGroq:
		return "Groq (cloud)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	case AIProviderOllama:
		return "Ollama (local)"
	default:
		return unknownDescription
	}
}

// OutputMode selects how a generated document is presented.
type OutputMode string

// Available output modes.
const (
	// OutputPreview renders the document as formatted markdown in a panel.
	OutputPreview OutputMode = "preview"

	// OutputRaw emits the document verbatim.
	OutputRaw OutputMode = "raw"
)

// IsValid returns true if the output mode is recognised.
func (m OutputMode) IsValid() bool {
	return m == OutputPreview || m == OutputRaw
}

// String returns the string representation.
func (m OutputMode) String() string {
	return string(m)
}

// GitHubSettings holds repository host configuration.
type GitHubSettings struct {
	// Token is the bearer credential. Flag and environment take precedence.
	Token string

	// BaseURL overrides the API endpoint (GitHub Enterprise).
	BaseURL string

	// RequestsPerSecond is the proactive throttle. Zero disables it.
	RequestsPerSecond float64
}

// LLMSettings holds LLM provider configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider AIProvider

	// Model is the LLM model name.
	Model string

	// BaseURL is the API endpoint. Empty uses the provider default.
	BaseURL string

	// APIKey is the API key. Environment takes precedence when empty.
	APIKey string

	// Temperature controls randomness of generated text.
	Temperature float64

	// MaxTokens bounds the length of each generated fragment.
	MaxTokens int

	// Timeout bounds a single generation request.
	Timeout time.Duration
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// ScanSettings holds the inclusion filter configuration.
type ScanSettings struct {
	// MaxFileSize excludes files larger than this many bytes.
	MaxFileSize int64

	// ExcludePatterns are "*.ext" suffix rules or plain substring rules.
	ExcludePatterns []string
}

// BatchSettings holds batching configuration.
type BatchSettings struct {
	// Size is the maximum number of files per generation request.
	Size int
}

// OutputSettings holds presentation configuration.
type OutputSettings struct {
	Mode OutputMode
	Path string
}

// AppSettings holds all application settings.
type AppSettings struct {
	GitHub GitHubSettings
	LLM    LLMSettings
	Scan   ScanSettings
	Batch  BatchSettings
	Output OutputSettings
}

// Default values.
const (
	DefaultMaxFileSize       int64   = 100_000
	DefaultBatchSize                 = 5
	DefaultTemperature               = 0.7
	DefaultMaxTokens                 = 2000
	DefaultRequestsPerSecond float64 = 10
	DefaultOutputPath                = "README.md"
	DefaultLLMTimeout                = 120 * time.Second
)

// DefaultExcludePatterns returns the default exclusion rules: dependency and
// VCS directories plus compiled artifact extensions.
func DefaultExcludePatterns() []string {
	return []string{
		"node_modules/",
		"venv/",
		".git/",
		"__pycache__/",
		"*.pyc",
		"*.pyo",
		"*.pyd",
		"*.so",
		"*.dylib",
		"*.dll",
	}
}

// DefaultAppSettings returns settings with sensible defaults.
// Credentials are left empty; they come from flags, environment, or config.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		GitHub: GitHubSettings{
			RequestsPerSecond: DefaultRequestsPerSecond,
		},
		LLM: LLMSettings{
			Provider:    AIProviderGroq,
			Model:       DefaultLLMModels()[AIProviderGroq],
			Temperature: DefaultTemperature,
			MaxTokens:   DefaultMaxTokens,
			Timeout:     DefaultLLMTimeout,
		},
		Scan: ScanSettings{
			MaxFileSize:     DefaultMaxFileSize,
			ExcludePatterns: DefaultExcludePatterns(),
		},
		Batch: BatchSettings{
			Size: DefaultBatchSize,
		},
		Output: OutputSettings{
			Mode: OutputPreview,
			Path: DefaultOutputPath,
		},
	}
}

// AllLLMProviders returns providers that support LLM operations.
func AllLLMProviders() []AIProvider {
	return []AIProvider{
		AIProviderGroq,
		AIProviderOpenAI,
		AIProviderAnthropic,
		AIProviderOllama,
	}
}

// DefaultLLMModels returns default models for each LLM provider.
func DefaultLLMModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderGroq:      "llama-3.3-70b-versatile",
		AIProviderOpenAI:    "gpt-4o-mini",
		AIProviderAnthropic: "claude-3-5-sonnet-latest",
		AIProviderOllama:    "llama3.2",
	}
}
