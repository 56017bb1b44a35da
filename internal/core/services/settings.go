package services

import (
	"fmt"

	"github.com/custodia-labs/mdtool/internal/core/domain"
	"github.com/custodia-labs/mdtool/internal/core/ports/driven"
	"github.com/custodia-labs/mdtool/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyGitHubToken      = "github.token"
	keyGitHubBaseURL    = "github.base_url"
	keyGitHubRPS        = "github.requests_per_second"
	keyLLMProvider      = "llm.provider"
	keyLLMModel         = "llm.model"
	keyLLMBaseURL       = "llm.base_url"
	keyLLMAPIKey        = "llm.api_key"
	keyLLMTemperature   = "llm.temperature"
	keyLLMMaxTokens     = "llm.max_tokens"
	keyScanMaxFileSize  = "scan.max_file_size"
	keyScanExclude      = "scan.exclude_patterns"
	keyBatchSize        = "batch.size"
	keyOutputMode       = "output.mode"
	keyOutputPath       = "output.path"
	defaultOllamaAPIURL = "http://localhost:11434/v1"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		GitHub: domain.GitHubSettings{
			Token:             s.configStore.GetString(keyGitHubToken),
			BaseURL:           s.configStore.GetString(keyGitHubBaseURL),
			RequestsPerSecond: s.getFloat(keyGitHubRPS, defaults.GitHub.RequestsPerSecond),
		},
		LLM: domain.LLMSettings{
			Provider:    s.getProvider(defaults.LLM.Provider),
			BaseURL:     s.configStore.GetString(keyLLMBaseURL), // Empty uses the provider default
			APIKey:      s.configStore.GetString(keyLLMAPIKey),
			Temperature: s.getFloat(keyLLMTemperature, defaults.LLM.Temperature),
			MaxTokens:   s.getInt(keyLLMMaxTokens, defaults.LLM.MaxTokens),
			Timeout:     defaults.LLM.Timeout,
		},
		Scan: domain.ScanSettings{
			MaxFileSize:     int64(s.getInt(keyScanMaxFileSize, int(defaults.Scan.MaxFileSize))),
			ExcludePatterns: s.getStringSlice(keyScanExclude, defaults.Scan.ExcludePatterns),
		},
		Batch: domain.BatchSettings{
			Size: s.getInt(keyBatchSize, defaults.Batch.Size),
		},
		Output: domain.OutputSettings{
			Mode: s.getOutputMode(defaults.Output.Mode),
			Path: s.getString(keyOutputPath, defaults.Output.Path),
		},
	}

	// The default model follows the configured provider.
	settings.LLM.Model = s.getString(keyLLMModel, domain.DefaultLLMModels()[settings.LLM.Provider])

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keyGitHubBaseURL, settings.GitHub.BaseURL},
		{keyGitHubRPS, settings.GitHub.RequestsPerSecond},
		{keyLLMProvider, settings.LLM.Provider.String()},
		{keyLLMModel, settings.LLM.Model},
		{keyLLMBaseURL, settings.LLM.BaseURL},
		{keyLLMTemperature, settings.LLM.Temperature},
		{keyLLMMaxTokens, settings.LLM.MaxTokens},
		{keyScanMaxFileSize, settings.Scan.MaxFileSize},
		{keyScanExclude, settings.Scan.ExcludePatterns},
		{keyBatchSize, settings.Batch.Size},
		{keyOutputMode, settings.Output.Mode.String()},
		{keyOutputPath, settings.Output.Path},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	// Secrets are only written when present so an empty value never
	// clobbers a stored credential.
	if settings.GitHub.Token != "" {
		if err := s.configStore.Set(keyGitHubToken, settings.GitHub.Token); err != nil {
			return fmt.Errorf("save %s: %w", keyGitHubToken, err)
		}
	}
	if settings.LLM.APIKey != "" {
		if err := s.configStore.Set(keyLLMAPIKey, settings.LLM.APIKey); err != nil {
			return fmt.Errorf("save %s: %w", keyLLMAPIKey, err)
		}
	}

	return nil
}

// SetLLMProvider configures the LLM provider.
// The API key may be empty when it is supplied through the environment.
func (s *SettingsService) SetLLMProvider(provider domain.AIProvider, model, apiKey, baseURL string) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: invalid LLM provider: %s", domain.ErrInvalidInput, provider)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.LLM.Provider = provider

	// Set model - use provided or default
	if model != "" {
		settings.LLM.Model = model
	} else {
		settings.LLM.Model = domain.DefaultLLMModels()[provider]
	}

	switch {
	case baseURL != "":
		settings.LLM.BaseURL = baseURL
	case provider.IsLocal():
		settings.LLM.BaseURL = defaultOllamaAPIURL
	default:
		// Cloud providers use their built-in endpoint
		settings.LLM.BaseURL = ""
	}

	settings.LLM.APIKey = apiKey

	return s.Save(settings)
}

// SetScan configures the inclusion filter and batch size.
func (s *SettingsService) SetScan(maxFileSize int64, excludePatterns []string, batchSize int) error {
	if maxFileSize < 0 {
		return fmt.Errorf("%w: max file size must not be negative", domain.ErrInvalidInput)
	}
	if batchSize < 0 {
		return fmt.Errorf("%w: batch size must not be negative", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	if maxFileSize > 0 {
		settings.Scan.MaxFileSize = maxFileSize
	}
	if excludePatterns != nil {
		settings.Scan.ExcludePatterns = excludePatterns
	}
	if batchSize > 0 {
		settings.Batch.Size = batchSize
	}

	return s.Save(settings)
}

// SetGitHub configures the repository host token and endpoint.
func (s *SettingsService) SetGitHub(token, baseURL string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if token != "" {
		settings.GitHub.Token = token
	}
	settings.GitHub.BaseURL = baseURL

	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

// getFloat distinguishes an explicit zero from a missing key so that a
// rate of 0 can disable throttling.
func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetStringSlice(key)
}

func (s *SettingsService) getProvider(defaultVal domain.AIProvider) domain.AIProvider {
	val := s.configStore.GetString(keyLLMProvider)
	if val == "" {
		return defaultVal
	}
	provider := domain.AIProvider(val)
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}

func (s *SettingsService) getOutputMode(defaultVal domain.OutputMode) domain.OutputMode {
	val := s.configStore.GetString(keyOutputMode)
	if val == "" {
		return defaultVal
	}
	mode := domain.OutputMode(val)
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}
