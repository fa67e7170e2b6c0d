package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Console styles.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	keyStyle     = lipgloss.NewStyle().Bold(true)
)

// FormatError renders err for the terminal.
func FormatError(err error) string {
	return errorStyle.Render("Error:") + " " + err.Error()
}

func formatWarning(msg string) string {
	return warningStyle.Render("Warning:") + " " + msg
}
