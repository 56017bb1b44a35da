// Package cli provides the cobra command tree for mdtool.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mdtool/internal/core/domain"
	"github.com/custodia-labs/mdtool/internal/core/ports/driven"
	"github.com/custodia-labs/mdtool/internal/core/ports/driving"
	"github.com/custodia-labs/mdtool/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

var verbose bool

// ReadmeFactory builds a README service for one run. githubToken is the
// --github-token value and may be empty.
type ReadmeFactory func(githubToken string) (driving.ReadmeService, error)

// LLMValidator checks that an LLM provider is reachable with settings.
type LLMValidator func(ctx context.Context, settings domain.LLMSettings) error

// GitHubValidator checks a GitHub token and returns the authenticated login.
type GitHubValidator func(ctx context.Context, token, baseURL string) (string, error)

// Services holds the ports the commands drive.
type Services struct {
	Settings       driving.SettingsService
	Readme         ReadmeFactory
	Sink           driven.DocumentSink
	ValidateLLM    LLMValidator
	ValidateGitHub GitHubValidator
}

var (
	settingsService driving.SettingsService
	readmeFactory   ReadmeFactory
	documentSink    driven.DocumentSink
	validateLLM     LLMValidator
	validateGitHub  GitHubValidator
)

var rootCmd = &cobra.Command{
	Use:   "mdtool",
	Short: "Generate README files for GitHub repositories",
	Long: `mdtool scans a GitHub repository, sends batches of its source files to an
LLM, and assembles the answers into a README.

Configure an LLM provider with 'mdtool settings llm', then run:
  mdtool readme --repo owner/name`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show debug output")
}

// SetServices wires the ports used by the commands.
func SetServices(s Services) {
	settingsService = s.Settings
	readmeFactory = s.Readme
	documentSink = s.Sink
	validateLLM = s.ValidateLLM
	validateGitHub = s.ValidateGitHub
}

// SetVersion sets the version reported by 'mdtool version' and --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
