package cli

import "github.com/charmbracelet/lipgloss"

var (
	headerColor  = lipgloss.Color("#F780FF")
	lineColor    = lipgloss.Color("#6272A4")
	kindColor    = lipgloss.Color("#BD93F9")
	okColor      = lipgloss.Color("#50FA7B")
	warningColor = lipgloss.Color("#F1FA8C")
	errorColor   = lipgloss.Color("#FF5555")

	headerStyle  = lipgloss.NewStyle().Foreground(headerColor).Bold(true)
	lineNoStyle  = lipgloss.NewStyle().Foreground(lineColor).Width(5).Align(lipgloss.Right)
	kindStyle    = lipgloss.NewStyle().Foreground(kindColor).Width(18).PaddingLeft(1)
	okStyle      = lipgloss.NewStyle().Foreground(okColor).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(warningColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
)
