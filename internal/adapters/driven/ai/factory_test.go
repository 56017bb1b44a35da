package ai

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mdtool/internal/core/domain"
)

func TestResolveLLMSettings(t *testing.T) {
	t.Run("environment overrides config", func(t *testing.T) {
		t.Setenv("GROQ_API_KEY", "from-env")
		got := ResolveLLMSettings(domain.LLMSettings{Provider: domain.AIProviderGroq, APIKey: "from-config"})
		assert.Equal(t, "from-env", got.APIKey)
	})

	t.Run("config used when environment empty", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		got := ResolveLLMSettings(domain.LLMSettings{Provider: domain.AIProviderOpenAI, APIKey: "from-config"})
		assert.Equal(t, "from-config", got.APIKey)
	})

	t.Run("local provider has no variable", func(t *testing.T) {
		got := ResolveLLMSettings(domain.LLMSettings{Provider: domain.AIProviderOllama})
		assert.Empty(t, got.APIKey)
	})
}

func TestCreateLLMService(t *testing.T) {
	tests := []struct {
		name      string
		settings  *domain.LLMSettings
		wantNil   bool
		wantErr   error
		wantModel string
	}{
		{
			name:     "nil settings returns nil",
			settings: nil,
			wantNil:  true,
		},
		{
			name:     "unknown provider",
			settings: &domain.LLMSettings{Provider: "unknown", APIKey: "k"},
			wantNil:  true,
			wantErr:  domain.ErrLLMUnavailable,
		},
		{
			name:     "groq without key",
			settings: &domain.LLMSettings{Provider: domain.AIProviderGroq},
			wantNil:  true,
			wantErr:  domain.ErrLLMUnavailable,
		},
		{
			name:      "groq",
			settings:  &domain.LLMSettings{Provider: domain.AIProviderGroq, APIKey: "k", Model: "llama-3.3-70b-versatile"},
			wantModel: "llama-3.3-70b-versatile",
		},
		{
			name:      "openai",
			settings:  &domain.LLMSettings{Provider: domain.AIProviderOpenAI, APIKey: "k", Model: "gpt-4o-mini"},
			wantModel: "gpt-4o-mini",
		},
		{
			name:      "anthropic",
			settings:  &domain.LLMSettings{Provider: domain.AIProviderAnthropic, APIKey: "k", Model: "claude-3-5-sonnet-latest"},
			wantModel: "claude-3-5-sonnet-latest",
		},
		{
			name:      "ollama needs no key",
			settings:  &domain.LLMSettings{Provider: domain.AIProviderOllama, Model: "llama3.2"},
			wantModel: "llama3.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := CreateLLMService(tt.settings)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			if tt.wantNil {
				assert.Nil(t, svc)
				return
			}
			require.NotNil(t, svc)
			assert.Equal(t, tt.wantModel, svc.ModelName())
		})
	}
}

func TestValidateLLMConfig(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer healthy.Close()

	unauthorised := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer unauthorised.Close()

	err := ValidateLLMConfig(&domain.LLMSettings{
		Provider: domain.AIProviderGroq, APIKey: "k", BaseURL: healthy.URL,
	})
	assert.NoError(t, err)

	err = ValidateLLMConfig(&domain.LLMSettings{
		Provider: domain.AIProviderGroq, APIKey: "bad", BaseURL: unauthorised.URL,
	})
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)

	assert.NoError(t, ValidateLLMConfig(nil))
}
