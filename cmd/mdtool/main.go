// Command mdtool generates README files for GitHub repositories.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/mdtool/internal/adapters/driven/ai"
	"github.com/custodia-labs/mdtool/internal/adapters/driven/auth"
	"github.com/custodia-labs/mdtool/internal/adapters/driven/config/file"
	"github.com/custodia-labs/mdtool/internal/adapters/driven/output"
	"github.com/custodia-labs/mdtool/internal/adapters/driving/cli"
	"github.com/custodia-labs/mdtool/internal/connectors/github"
	"github.com/custodia-labs/mdtool/internal/core/domain"
	"github.com/custodia-labs/mdtool/internal/core/ports/driven"
	"github.com/custodia-labs/mdtool/internal/core/ports/driving"
	"github.com/custodia-labs/mdtool/internal/core/services"
	"github.com/custodia-labs/mdtool/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		logger.Error("Failed to load config: %v", err)
		return 1
	}

	promptStore, err := file.NewPromptStore("")
	if err != nil {
		logger.Error("Failed to open prompt directory: %v", err)
		return 1
	}

	settingsService := services.NewSettingsService(configStore)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Settings:       settingsService,
		Readme:         newReadmeFactory(configStore, promptStore, settingsService),
		Sink:           output.NewFileSink(""),
		ValidateLLM:    validateLLM,
		ValidateGitHub: validateGitHub,
	})

	if err := cli.Execute(ctx); err != nil {
		// The empty-result warning has already been printed.
		if !errors.Is(err, domain.ErrNoContent) {
			logger.Error("%v", err)
		}
		return 1
	}
	return 0
}

// newReadmeFactory builds the README service for each run from the current
// settings. The LLM is created up front so a missing key fails before any
// GitHub request is made.
func newReadmeFactory(
	configStore driven.ConfigStore,
	promptStore driven.PromptStore,
	settingsService driving.SettingsService,
) cli.ReadmeFactory {
	return func(githubToken string) (driving.ReadmeService, error) {
		settings, err := settingsService.Get()
		if err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}

		llmSettings := ai.ResolveLLMSettings(settings.LLM)
		llm, err := ai.CreateLLMService(&llmSettings)
		if err != nil {
			return nil, err
		}
		logger.Debug("LLM: %s (%s)", llmSettings.Provider, llm.ModelName())

		tokens := auth.NewGitHubTokenProvider(githubToken, configStore)
		logger.Debug("GitHub token source: %s", tokens.Source())

		client := github.NewClient(tokens, github.Config{
			BaseURL:           settings.GitHub.BaseURL,
			RequestsPerSecond: settings.GitHub.RequestsPerSecond,
		})

		return services.NewReadmeService(github.NewReader(client), llm, promptStore, *settings), nil
	}
}

func validateLLM(_ context.Context, settings domain.LLMSettings) error {
	resolved := ai.ResolveLLMSettings(settings)
	return ai.ValidateLLMConfig(&resolved)
}

func validateGitHub(ctx context.Context, token, baseURL string) (string, error) {
	client := github.NewClient(
		auth.NewStaticTokenProvider(token, auth.SourceFlag),
		github.Config{BaseURL: baseURL},
	)
	return client.ValidateCredentials(ctx)
}
