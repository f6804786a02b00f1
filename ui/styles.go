package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the preview chrome.
type Styles struct {
	Title  lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

// DefaultStyles returns the default preview styling: bold title, muted
// status, red errors.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}
