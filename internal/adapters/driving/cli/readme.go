package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mdtool/internal/adapters/driving/styles"
	"github.com/custodia-labs/mdtool/internal/core/domain"
	"github.com/custodia-labs/mdtool/internal/core/ports/driving"
	"github.com/custodia-labs/mdtool/internal/logger"
)

// previewTitle heads the panel in preview mode.
const previewTitle = "Generated README"

var (
	readmeRepo        string
	readmeToken       string
	readmeOutput      string
	readmeSave        bool
	readmeSavePath    string
	readmeBatchSize   int
	readmeMaxFileSize int64
)

var readmeCmd = &cobra.Command{
	Use:     "readme",
	Aliases: []string{"generate"},
	Short:   "Generate a README for a GitHub repository",
	Long: `Scans the repository, filters out dependency directories and binary
artifacts, and asks the configured LLM to describe each batch of files.
The answers are joined into a single README.

The GitHub token is taken from --github-token, then GITHUB_TOKEN, then the
config file. Without one, requests are anonymous and heavily rate limited.

Examples:
  mdtool readme --repo octocat/hello-world
  mdtool readme -r octocat/hello-world --output raw --save`,
	Args: cobra.NoArgs,
	RunE: runReadme,
}

func init() {
	readmeCmd.Flags().StringVarP(&readmeRepo, "repo", "r", "", "repository as owner/name (required)")
	readmeCmd.Flags().StringVarP(&readmeToken, "github-token", "t", "", "GitHub token (default $GITHUB_TOKEN)")
	readmeCmd.Flags().StringVarP(&readmeOutput, "output", "o", "", "output mode: preview or raw")
	readmeCmd.Flags().BoolVarP(&readmeSave, "save", "s", false, "save the README to disk")
	readmeCmd.Flags().StringVar(&readmeSavePath, "save-path", "", "file to save to (default README.md)")
	readmeCmd.Flags().IntVar(&readmeBatchSize, "batch-size", 0, "files per LLM request (default from settings)")
	readmeCmd.Flags().Int64Var(&readmeMaxFileSize, "max-file-size", 0, "skip files larger than this many bytes")
	_ = readmeCmd.MarkFlagRequired("repo")
	rootCmd.AddCommand(readmeCmd)
}

func runReadme(cmd *cobra.Command, _ []string) error {
	if readmeFactory == nil {
		return errors.New("readme service not configured")
	}

	output := resolveOutputSettings()
	mode := output.Mode
	if readmeOutput != "" {
		mode = domain.OutputMode(readmeOutput)
	}
	if !mode.IsValid() {
		return fmt.Errorf("%w: output mode %q (want preview or raw)", domain.ErrInvalidInput, mode)
	}
	if readmeBatchSize < 0 || readmeMaxFileSize < 0 {
		return fmt.Errorf("%w: --batch-size and --max-file-size must not be negative", domain.ErrInvalidInput)
	}
	if readmeSave && documentSink == nil {
		return errors.New("document sink not configured")
	}

	svc, err := readmeFactory(readmeToken)
	if err != nil {
		return err
	}

	opts := driving.GenerateOptions{
		BatchSize:   readmeBatchSize,
		MaxFileSize: readmeMaxFileSize,
	}
	readme, err := svc.Generate(cmd.Context(), readmeRepo, opts)
	if err != nil {
		if errors.Is(err, domain.ErrNoContent) {
			logger.Warn("No README content was generated for %s", readmeRepo)
			return err
		}
		return fmt.Errorf("generate README: %w", err)
	}

	if failed := readme.FailedFragments(); failed > 0 {
		logger.Warn("%d of %d batches failed; the README may be incomplete", failed, readme.Batches)
	}

	if err := writeDocument(cmd.OutOrStdout(), readme.Content, mode); err != nil {
		return err
	}

	if readmeSave {
		path := output.Path
		if readmeSavePath != "" {
			path = readmeSavePath
		}
		written, err := documentSink.Write(cmd.Context(), path, readme.Content)
		if err != nil {
			return fmt.Errorf("save README: %w", err)
		}
		logger.Success("README saved to %s", written)
	}

	return nil
}

// resolveOutputSettings returns the configured output settings, or defaults
// when none can be read.
func resolveOutputSettings() domain.OutputSettings {
	defaults := domain.DefaultAppSettings().Output
	if settingsService == nil {
		return defaults
	}
	settings, err := settingsService.Get()
	if err != nil || settings == nil {
		return defaults
	}
	out := settings.Output
	if out.Mode == "" {
		out.Mode = defaults.Mode
	}
	if out.Path == "" {
		out.Path = defaults.Path
	}
	return out
}

// writeDocument prints content in raw mode verbatim, or in preview mode
// inside a titled panel sized to the terminal.
func writeDocument(w io.Writer, content string, mode domain.OutputMode) error {
	switch mode {
	case domain.OutputRaw:
		_, err := io.WriteString(w, content)
		if err == nil && content != "" && content[len(content)-1] != '\n' {
			_, err = io.WriteString(w, "\n")
		}
		return err
	case domain.OutputPreview:
		st := styles.NewStyles(w, nil)
		_, err := fmt.Fprintln(w, st.RenderPanel(previewTitle, content, styles.TerminalWidth(w)))
		return err
	default:
		return fmt.Errorf("%w: output mode %q", domain.ErrInvalidInput, mode)
	}
}
