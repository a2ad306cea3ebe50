package tui

import "github.com/charmbracelet/lipgloss"

type theme struct {
	Accent lipgloss.Color
	Good   lipgloss.Color
	Bad    lipgloss.Color
	Muted  lipgloss.Color
}

func newTheme() theme {
	// Nord, medium-contrast subset
	return theme{
		Accent: lipgloss.Color("#88c0d0"),
		Good:   lipgloss.Color("#a3be8c"),
		Bad:    lipgloss.Color("#bf616a"),
		Muted:  lipgloss.Color("#4c566a"),
	}
}
