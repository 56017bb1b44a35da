// Package logger provides status and verbose logging for the mdtool CLI.
//
// Status lines (Info, Warn, Error, Success) are always written and carry a
// coloured level label when the output is a terminal. Debug and Section are
// only written when verbose mode is enabled via the --verbose flag.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	labels            = newLabelStyles(os.Stderr)
)

// labelStyles holds the rendered level labels for the current output.
type labelStyles struct {
	info    lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
	success lipgloss.Style
	muted   lipgloss.Style
}

// newLabelStyles binds the label styles to w so colour is only emitted
// when w is a terminal.
func newLabelStyles(w io.Writer) labelStyles {
	r := lipgloss.NewRenderer(w)
	return labelStyles{
		info:    r.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Bold(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("#F9E2AF")).Bold(true),
		err:     r.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("#A6E3A1")).Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	}
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for all logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	labels = newLabelStyles(w)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "%s "+format+"\n", append([]any{labels.muted.Render("[DEBUG]")}, args...)...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational status line.
func Info(format string, args ...any) {
	write(labels.info, "INFO:", format, args...)
}

// Warn prints a warning status line.
func Warn(format string, args ...any) {
	write(labels.warn, "WARNING:", format, args...)
}

// Error prints an error status line.
func Error(format string, args ...any) {
	write(labels.err, "ERROR:", format, args...)
}

// Success prints a success status line.
func Success(format string, args ...any) {
	write(labels.success, "SUCCESS:", format, args...)
}

func write(style lipgloss.Style, label, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	fmt.Fprintf(output, "%s %s\n", style.Render(label), fmt.Sprintf(format, args...))
}
