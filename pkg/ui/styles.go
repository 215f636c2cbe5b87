package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles for CLI messages.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// Styled renders s with style when the format resolves to terminal output,
// plain otherwise.
func Styled(f Format, style lipgloss.Style, s string) string {
	if f.Resolve() != FormatTerminal {
		return s
	}
	return style.Render(s)
}
