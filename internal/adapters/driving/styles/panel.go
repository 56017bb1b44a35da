package styles

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// minWidth keeps the panel readable on very narrow terminals.
const minWidth = 20

// TerminalWidth returns the column count of w, or DefaultWidth when w is
// not a terminal.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return DefaultWidth
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// RenderPanel renders body in a rounded border with a title line, sized to width
// columns including the border.
func (s *Styles) RenderPanel(title, body string, width int) string {
	if width < minWidth {
		width = minWidth
	}
	// Width excludes the two border columns.
	content := s.Title.Render(title) + "\n\n" + body
	return s.Panel.Width(width - 2).Render(content)
}
