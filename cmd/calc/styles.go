package main

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// disableStyles swaps in unstyled renders for --no-color.
func disableStyles() {
	promptStyle = lipgloss.NewStyle()
	errorStyle = lipgloss.NewStyle()
}
