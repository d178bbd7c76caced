package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// outputStyles styles human-readable command output.
// Styles are plain when output is not a terminal.
type outputStyles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Total lipgloss.Style
	Muted lipgloss.Style
}

func newOutputStyles(w io.Writer) outputStyles {
	if !isTerminal(w) {
		plain := lipgloss.NewStyle()
		return outputStyles{Title: plain, Label: plain, Value: plain, Total: plain, Muted: plain}
	}
	return outputStyles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4")),
		Value: lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		Total: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
