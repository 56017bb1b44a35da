package cli

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/mdtool/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/mdtool/internal/core/domain"
	"github.com/custodia-labs/mdtool/internal/core/ports/driving"
	"github.com/custodia-labs/mdtool/internal/core/services"
	"github.com/custodia-labs/mdtool/internal/logger"
)

// mockReadmeService is a mock implementation of driving.ReadmeService.
type mockReadmeService struct {
	readme *domain.Readme
	err    error

	calls   int
	gotRepo string
	gotOpts driving.GenerateOptions
}

func (m *mockReadmeService) Generate(
	_ context.Context,
	repo string,
	opts driving.GenerateOptions,
) (*domain.Readme, error) {
	m.calls++
	m.gotRepo = repo
	m.gotOpts = opts
	return m.readme, m.err
}

// mockSink records writes.
type mockSink struct {
	path    string
	content string
	err     error
}

func (m *mockSink) Write(_ context.Context, path, content string) (string, error) {
	m.path = path
	m.content = content
	if m.err != nil {
		return "", m.err
	}
	return "/abs/" + path, nil
}

// testEnv holds the wired fakes for one test.
type testEnv struct {
	readme   *mockReadmeService
	settings *services.SettingsService
	sink     *mockSink
	logs     *bytes.Buffer

	gotToken string
}

// setupTestServices wires fakes into the command tree and resets flag state.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		readme: &mockReadmeService{readme: &domain.Readme{
			RunID:     "run-1",
			Repo:      domain.RepoRef{Owner: "octo", Name: "demo"},
			Content:   "# Demo\n\nA demo project.",
			Fragments: []domain.Fragment{{Text: "# Demo"}, {BatchIndex: 1, Text: "A demo project."}},
			Files:     7,
			Batches:   2,
		}},
		settings: services.NewSettingsService(memory.NewConfigStore()),
		sink:     &mockSink{},
		logs:     new(bytes.Buffer),
	}

	SetServices(Services{
		Settings: env.settings,
		Readme: func(token string) (driving.ReadmeService, error) {
			env.gotToken = token
			return env.readme, nil
		},
		Sink: env.sink,
	})
	logger.SetOutput(env.logs)
	resetFlags(rootCmd)

	t.Cleanup(func() {
		SetServices(Services{})
		logger.SetOutput(os.Stderr)
		logger.SetVerbose(false)
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	return env
}

// resetFlags restores every flag to its default so package-level flag
// variables do not leak between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeCommand runs the root command with args and stdin, returning stdout.
func executeCommand(stdin string, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}
