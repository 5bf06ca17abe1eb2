package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sys/unix"
)

// Styles holds the lipgloss styles used by the text formatter.
type Styles struct {
	Path      lipgloss.Style
	LineNum   lipgloss.Style
	Separator lipgloss.Style
	Span      lipgloss.Style
	Count     lipgloss.Style
}

// NewStyles creates the default color styles.
func NewStyles() Styles {
	return Styles{
		Path:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		LineNum:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Span:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Count:     lipgloss.NewStyle().Bold(true),
	}
}

// NoStyles returns styles that render text unchanged.
func NoStyles() Styles {
	return Styles{
		Path:      lipgloss.NewStyle(),
		LineNum:   lipgloss.NewStyle(),
		Separator: lipgloss.NewStyle(),
		Span:      lipgloss.NewStyle(),
		Count:     lipgloss.NewStyle(),
	}
}

// IsTerminal checks whether the given file descriptor is a terminal.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

// StdoutIsTerminal reports whether stdout is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}
