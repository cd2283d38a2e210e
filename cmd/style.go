package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	colorError   = lipgloss.Color("196")
	colorSuccess = lipgloss.Color("34")
	colorMuted   = lipgloss.Color("245")
)

// styler decorates report lines when writing to a terminal.
type styler struct {
	enabled bool
	failure lipgloss.Style
	success lipgloss.Style
	path    lipgloss.Style
	muted   lipgloss.Style
}

// isTerminal reports whether w is a terminal and NO_COLOR is unset.
func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newStyler(w io.Writer) styler {
	return styler{
		enabled: isTerminal(w),
		failure: lipgloss.NewStyle().Bold(true).Foreground(colorError),
		success: lipgloss.NewStyle().Foreground(colorSuccess),
		path:    lipgloss.NewStyle().Bold(true),
		muted:   lipgloss.NewStyle().Foreground(colorMuted),
	}
}

func (s styler) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}
