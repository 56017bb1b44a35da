// Package ai provides factory functions for creating AI service adapters.
package ai

import (
	"context"
	"fmt"
	"os"
	"time"

	anthropicllm "github.com/custodia-labs/mdtool/internal/adapters/driven/llm/anthropic"
	openaillm "github.com/custodia-labs/mdtool/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/mdtool/internal/core/domain"
	"github.com/custodia-labs/mdtool/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// Provider endpoints served by the OpenAI-compatible adapter.
const (
	GroqBaseURL   = "https://api.groq.com/openai/v1"
	OllamaBaseURL = "http://localhost:11434/v1"
)

// ResolveLLMSettings returns a copy of settings with the API key taken from
// the provider's environment variable when that variable is set.
// The environment takes precedence over the config file.
func ResolveLLMSettings(settings domain.LLMSettings) domain.LLMSettings {
	if env := settings.Provider.APIKeyEnv(); env != "" {
		if key := os.Getenv(env); key != "" {
			settings.APIKey = key
		}
	}
	return settings
}

// CreateLLMService creates the appropriate LLM service based on settings.
// Returns nil if settings is nil.
func CreateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil {
		return nil, nil
	}

	if !settings.Provider.IsValid() {
		return nil, fmt.Errorf("%w: unsupported LLM provider: %s", domain.ErrLLMUnavailable, settings.Provider)
	}
	if !settings.IsConfigured() {
		return nil, fmt.Errorf("%w: %s requires an API key. Set %s or run 'mdtool settings llm'",
			domain.ErrLLMUnavailable, settings.Provider, settings.Provider.APIKeyEnv())
	}

	switch settings.Provider {
	case domain.AIProviderGroq:
		return createOpenAICompatible(settings, GroqBaseURL)

	case domain.AIProviderOllama:
		return createOpenAICompatible(settings, OllamaBaseURL)

	case domain.AIProviderOpenAI:
		return createOpenAICompatible(settings, openaillm.DefaultBaseURL)

	case domain.AIProviderAnthropic:
		return createAnthropicLLM(settings)

	default:
		return nil, fmt.Errorf("%w: unsupported LLM provider: %s", domain.ErrLLMUnavailable, settings.Provider)
	}
}

// CreateAndValidateLLMService creates an LLM service and validates connectivity.
// Returns the service if successful, or an error with guidance.
func CreateAndValidateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	svc, err := CreateLLMService(settings)
	if err != nil || svc == nil {
		return svc, err
	}

	// Validate connectivity.
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'mdtool settings llm' to fix",
			domain.ErrLLMUnavailable, err)
	}

	return svc, nil
}

// ValidateLLMConfig validates an LLM configuration by creating a service and pinging it.
// This is intended for use by 'settings llm' to validate credentials on configuration.
func ValidateLLMConfig(settings *domain.LLMSettings) error {
	svc, err := CreateAndValidateLLMService(settings)
	if err != nil {
		return err
	}
	if svc != nil {
		svc.Close()
	}
	return nil
}

// createOpenAICompatible creates an OpenAI-compatible LLM service.
// A configured base URL overrides the provider endpoint.
func createOpenAICompatible(settings *domain.LLMSettings, defaultBaseURL string) (driven.LLMService, error) {
	baseURL := settings.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	svc, err := openaillm.NewLLMService(openaillm.LLMConfig{
		Name:    settings.Provider.String(),
		APIKey:  settings.APIKey,
		BaseURL: baseURL,
		Model:   settings.Model,
		Timeout: settings.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// createAnthropicLLM creates an Anthropic LLM service.
func createAnthropicLLM(settings *domain.LLMSettings) (driven.LLMService, error) {
	svc, err := anthropicllm.NewLLMService(anthropicllm.Config{
		APIKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
		Timeout: settings.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return svc, nil
}
