package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	ActiveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	DimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	SuccessStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	PromptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	SpecialStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	TerminalStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
)

// StyleLine colors one transcript line by what it is: an echoed
// submission, a failure, or a created record. Other lines pass through.
func StyleLine(line, prompt string) string {
	switch {
	case strings.HasPrefix(line, prompt):
		return PromptStyle.Render(prompt) + line[len(prompt):]
	case strings.HasPrefix(line, "Command not recognized:"), strings.HasPrefix(line, "Error:"):
		return ErrorStyle.Render(line)
	case strings.HasPrefix(line, "Created "), strings.HasPrefix(line, "Added "), strings.HasSuffix(line, "marked as completed"):
		return SuccessStyle.Render(line)
	}
	return line
}
