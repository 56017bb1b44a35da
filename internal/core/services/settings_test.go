package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mdtool/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/mdtool/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()
	require.NoError(t, err)

	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults, *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{
		"github.token":               "ghp_x",
		"github.requests_per_second": int64(0),
		"llm.provider":               "anthropic",
		"llm.temperature":            0.2,
		"llm.max_tokens":             int64(512),
		"scan.max_file_size":         int64(2048),
		"scan.exclude_patterns":      []any{"*.lock", "dist/"},
		"batch.size":                 int64(3),
		"output.mode":                "raw",
		"output.path":                "docs/README.md",
	})
	service := NewSettingsService(store)

	settings, err := service.Get()
	require.NoError(t, err)

	assert.Equal(t, "ghp_x", settings.GitHub.Token)
	assert.Zero(t, settings.GitHub.RequestsPerSecond)
	assert.Equal(t, domain.AIProviderAnthropic, settings.LLM.Provider)
	assert.Equal(t, domain.DefaultLLMModels()[domain.AIProviderAnthropic], settings.LLM.Model)
	assert.InDelta(t, 0.2, settings.LLM.Temperature, 1e-9)
	assert.Equal(t, 512, settings.LLM.MaxTokens)
	assert.Equal(t, int64(2048), settings.Scan.MaxFileSize)
	assert.Equal(t, []string{"*.lock", "dist/"}, settings.Scan.ExcludePatterns)
	assert.Equal(t, 3, settings.Batch.Size)
	assert.Equal(t, domain.OutputRaw, settings.Output.Mode)
	assert.Equal(t, "docs/README.md", settings.Output.Path)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{
		"llm.provider": "nope",
		"output.mode":  "fancy",
	})
	service := NewSettingsService(store)

	settings, err := service.Get()
	require.NoError(t, err)

	assert.Equal(t, domain.AIProviderGroq, settings.LLM.Provider)
	assert.Equal(t, domain.OutputPreview, settings.Output.Mode)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.LLM.Provider = domain.AIProviderOpenAI
	settings.LLM.Model = "gpt-4o"
	settings.Batch.Size = 8
	require.NoError(t, service.Save(&settings))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *got)

	_, exists := store.Get("llm.api_key")
	assert.False(t, exists, "empty secrets are not written")
}

func TestSettingsService_SetLLMProvider(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetLLMProvider(domain.AIProviderOpenAI, "", "sk-test", ""))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderOpenAI, settings.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", settings.LLM.Model)
	assert.Equal(t, "sk-test", settings.LLM.APIKey)
	assert.Empty(t, settings.LLM.BaseURL)
}

func TestSettingsService_SetLLMProvider_Ollama(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetLLMProvider(domain.AIProviderOllama, "mistral", "", ""))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "mistral", settings.LLM.Model)
	assert.Equal(t, "http://localhost:11434/v1", settings.LLM.BaseURL)
}

func TestSettingsService_SetLLMProvider_CustomBaseURL(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetLLMProvider(domain.AIProviderOpenAI, "m", "", "http://proxy.local/v1"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "http://proxy.local/v1", settings.LLM.BaseURL)
}

func TestSettingsService_SetLLMProvider_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	err := service.SetLLMProvider(domain.AIProvider("bogus"), "", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_SetScan(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetScan(500, []string{"*.min.js"}, 2))
	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, int64(500), settings.Scan.MaxFileSize)
	assert.Equal(t, []string{"*.min.js"}, settings.Scan.ExcludePatterns)
	assert.Equal(t, 2, settings.Batch.Size)

	// Zero values leave settings unchanged.
	require.NoError(t, service.SetScan(0, nil, 0))
	settings, err = service.Get()
	require.NoError(t, err)
	assert.Equal(t, int64(500), settings.Scan.MaxFileSize)
	assert.Equal(t, 2, settings.Batch.Size)

	assert.ErrorIs(t, service.SetScan(-1, nil, 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, service.SetScan(0, nil, -1), domain.ErrInvalidInput)
}

func TestSettingsService_SetGitHub(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetGitHub("ghp_abc", "https://ghe.example.com/api/v3/"))
	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "ghp_abc", settings.GitHub.Token)
	assert.Equal(t, "https://ghe.example.com/api/v3/", settings.GitHub.BaseURL)

	// An empty token keeps the stored one.
	require.NoError(t, service.SetGitHub("", ""))
	assert.Equal(t, "ghp_abc", store.GetString("github.token"))
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
