package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/mdtool/internal/core/domain"
)

var (
	scanMaxFileSize int64
	scanExclude     []string
	scanBatchSize   int
	githubToken     string
	githubBaseURL   string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the LLM provider, GitHub access, and scan options.

Settings are stored in ~/.mdtool/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsLLMCmd = &cobra.Command{
	Use:   "llm",
	Short: "Configure LLM provider",
	Long:  `Select the LLM provider and model used to write README sections.`,
	RunE:  runSettingsLLM,
}

var settingsScanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Configure file filtering and batching",
	Long: `Set which files are sent to the LLM and how many go in each request.

Exclude patterns starting with "*." match file extensions; any other pattern
matches anywhere in the path (e.g. "node_modules/").

Examples:
  mdtool settings scan --max-file-size 50000 --batch-size 10
  mdtool settings scan --exclude "node_modules/,*.min.js"`,
	RunE: runSettingsScan,
}

var settingsGitHubCmd = &cobra.Command{
	Use:   "github",
	Short: "Configure GitHub access",
	Long: `Store a GitHub token and optionally a GitHub Enterprise API URL.

The token is checked against the API before it is reported as valid.
GITHUB_TOKEN and --github-token take precedence over the stored token.`,
	RunE: runSettingsGitHub,
}

func init() {
	settingsScanCmd.Flags().Int64Var(&scanMaxFileSize, "max-file-size", 0, "skip files larger than this many bytes")
	settingsScanCmd.Flags().StringSliceVar(&scanExclude, "exclude", nil, "exclude patterns (replaces the current list)")
	settingsScanCmd.Flags().IntVar(&scanBatchSize, "batch-size", 0, "files per LLM request")

	settingsGitHubCmd.Flags().StringVar(&githubToken, "token", "", "GitHub token (prompted when omitted)")
	settingsGitHubCmd.Flags().StringVar(&githubBaseURL, "base-url", "", "GitHub Enterprise API URL")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsLLMCmd)
	settingsCmd.AddCommand(settingsScanCmd)
	settingsCmd.AddCommand(settingsGitHubCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[GitHub]")
	cmd.Printf("  Token: %s\n", maskOrUnset(settings.GitHub.Token))
	if settings.GitHub.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", settings.GitHub.BaseURL)
	}
	cmd.Printf("  Requests/sec: %g\n", settings.GitHub.RequestsPerSecond)
	cmd.Println()

	cmd.Println("[LLM]")
	cmd.Printf("  Provider: %s\n", settings.LLM.Provider.Description())
	cmd.Printf("  Model: %s\n", settings.LLM.Model)
	if settings.LLM.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", settings.LLM.BaseURL)
	}
	if settings.LLM.Provider.RequiresAPIKey() {
		key := settings.LLM.APIKey
		if key == "" && os.Getenv(settings.LLM.Provider.APIKeyEnv()) != "" {
			cmd.Printf("  API Key: (from $%s)\n", settings.LLM.Provider.APIKeyEnv())
		} else {
			cmd.Printf("  API Key: %s\n", maskOrUnset(key))
		}
	}
	cmd.Printf("  Temperature: %g\n", settings.LLM.Temperature)
	cmd.Printf("  Max tokens: %d\n", settings.LLM.MaxTokens)
	cmd.Println()

	cmd.Println("[Scan]")
	cmd.Printf("  Max file size: %d bytes\n", settings.Scan.MaxFileSize)
	cmd.Printf("  Exclude: %s\n", strings.Join(settings.Scan.ExcludePatterns, ", "))
	cmd.Printf("  Batch size: %d\n", settings.Batch.Size)
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Mode: %s\n", settings.Output.Mode)
	cmd.Printf("  Path: %s\n", settings.Output.Path)

	return nil
}

func runSettingsLLM(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	return configureLLMProvider(cmd, reader)
}

func configureLLMProvider(cmd *cobra.Command, reader *bufio.Reader) error {
	cmd.Println("Select LLM Provider")
	providers := domain.AllLLMProviders()
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(providers), 1)
	selectedProvider := providers[idx-1]

	// Get model
	defaults := domain.DefaultLLMModels()
	defaultModel := defaults[selectedProvider]
	cmd.Printf("Enter model name [%s]: ", defaultModel)
	model := readLine(reader)
	if model == "" {
		model = defaultModel
	}

	var baseURL string
	if selectedProvider.IsLocal() {
		cmd.Print("Enter base URL [default]: ")
		baseURL = readLine(reader)
	}

	// Get API key if needed; the provider's environment variable is an alternative
	var apiKey string
	if selectedProvider.RequiresAPIKey() {
		envName := selectedProvider.APIKeyEnv()
		cmd.Printf("Enter API key (leave empty to use $%s): ", envName)
		apiKey = readPassword(cmd.InOrStdin(), reader)
		cmd.Println()
		if apiKey == "" && os.Getenv(envName) == "" {
			return fmt.Errorf("API key is required for this provider (or set $%s)", envName)
		}
	}

	if err := settingsService.SetLLMProvider(selectedProvider, model, apiKey, baseURL); err != nil {
		return fmt.Errorf("failed to configure LLM provider: %w", err)
	}

	// Validate the configuration by pinging the service
	if validateLLM != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		cmd.Print("Validating configuration... ")
		if err := validateLLM(cmd.Context(), settings.LLM); err != nil {
			cmd.Printf("FAILED: %v\n", err)
			return fmt.Errorf("LLM configuration validation failed: %w", err)
		}
		cmd.Println("OK")
	}

	cmd.Printf("LLM provider configured: %s (%s)\n", selectedProvider.Description(), model)
	return nil
}

func runSettingsScan(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if !cmd.Flags().Changed("max-file-size") && !cmd.Flags().Changed("exclude") &&
		!cmd.Flags().Changed("batch-size") {
		return errors.New("nothing to change: pass --max-file-size, --exclude, or --batch-size")
	}

	var patterns []string
	if cmd.Flags().Changed("exclude") {
		patterns = make([]string, 0, len(scanExclude))
		for _, p := range scanExclude {
			if p = strings.TrimSpace(p); p != "" {
				patterns = append(patterns, p)
			}
		}
		if len(patterns) == 0 {
			return fmt.Errorf("%w: --exclude needs at least one pattern", domain.ErrInvalidInput)
		}
	}

	if err := settingsService.SetScan(scanMaxFileSize, patterns, scanBatchSize); err != nil {
		return fmt.Errorf("failed to configure scan: %w", err)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	cmd.Printf("Scan settings saved: max file size %d bytes, batch size %d, %d exclude patterns\n",
		settings.Scan.MaxFileSize, settings.Batch.Size, len(settings.Scan.ExcludePatterns))
	return nil
}

func runSettingsGitHub(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	token := strings.TrimSpace(githubToken)
	if token == "" && !cmd.Flags().Changed("base-url") {
		reader := bufio.NewReader(cmd.InOrStdin())
		cmd.Print("Enter GitHub token: ")
		token = readPassword(cmd.InOrStdin(), reader)
		cmd.Println()
		if token == "" {
			return errors.New("a token is required")
		}
	}

	if err := settingsService.SetGitHub(token, githubBaseURL); err != nil {
		return fmt.Errorf("failed to configure GitHub: %w", err)
	}

	if validateGitHub != nil && token != "" {
		cmd.Print("Validating token... ")
		login, err := validateGitHub(cmd.Context(), token, githubBaseURL)
		if err != nil {
			cmd.Printf("FAILED: %v\n", err)
			return fmt.Errorf("GitHub token validation failed: %w", err)
		}
		cmd.Printf("OK (authenticated as %s)\n", login)
	}

	cmd.Println("GitHub settings saved.")
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// readPassword reads a secret without echo when in is a terminal, falling
// back to a plain line read.
func readPassword(in io.Reader, reader *bufio.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	return readLine(reader)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func maskOrUnset(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	return maskAPIKey(secret)
}
