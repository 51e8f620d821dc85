package main

import "github.com/charmbracelet/lipgloss"

var (
	nameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4B4B"))
)

func styleFunc(s lipgloss.Style) func(string) string {
	return func(text string) string { return s.Render(text) }
}

// resultStyles colors the result columns: name, template, output, length,
// size, truncated, error.
func resultStyles() []func(string) string {
	return []func(string) string{
		styleFunc(nameStyle),
		styleFunc(mutedStyle),
		styleFunc(outputStyle),
		nil,
		nil,
		nil,
		styleFunc(errorStyle),
	}
}
