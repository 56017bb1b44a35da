package mcp

import (
	"context"

	"github.com/custodia-labs/mdtool/internal/core/domain"
	"github.com/custodia-labs/mdtool/internal/core/ports/driving"
)

// mockReadmeService is a mock implementation of driving.ReadmeService.
type mockReadmeService struct {
	readme *domain.Readme
	err    error

	gotRepo string
	gotOpts driving.GenerateOptions
}

func (m *mockReadmeService) Generate(
	_ context.Context,
	repo string,
	opts driving.GenerateOptions,
) (*domain.Readme, error) {
	m.gotRepo = repo
	m.gotOpts = opts
	return m.readme, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return m.err }

func (m *mockSettingsService) SetLLMProvider(_ domain.AIProvider, _, _, _ string) error {
	return m.err
}

func (m *mockSettingsService) SetScan(_ int64, _ []string, _ int) error { return m.err }

func (m *mockSettingsService) SetGitHub(_, _ string) error { return m.err }

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func demoReadme(runID string) *domain.Readme {
	return &domain.Readme{
		RunID:   runID,
		Repo:    domain.RepoRef{Owner: "octo", Name: "demo"},
		Content: "# Demo\n\nA demo project.",
		Fragments: []domain.Fragment{
			{BatchIndex: 0, Text: "# Demo"},
			{BatchIndex: 1, Err: domain.ErrLLMUnavailable},
			{BatchIndex: 2, Text: "A demo project."},
		},
		Files:   12,
		Batches: 3,
	}
}
