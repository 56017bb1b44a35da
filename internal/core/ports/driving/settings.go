package driving

import "github.com/custodia-labs/mdtool/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetLLMProvider configures the LLM provider.
	SetLLMProvider(provider domain.AIProvider, model, apiKey, baseURL string) error

	// SetScan configures the inclusion filter and batch size.
	// Zero or nil values leave the current setting unchanged.
	SetScan(maxFileSize int64, excludePatterns []string, batchSize int) error

	// SetGitHub configures the repository host token and endpoint.
	SetGitHub(token, baseURL string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
