package view

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles the renderer applies.
type Styles struct {
	Normal   lipgloss.Style
	Selected lipgloss.Style
}

// NewStyles returns the TUI styles; the selected entry is bold in the accent color.
func NewStyles(accent string) Styles {
	return Styles{
		Normal:   lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
	}
}

// PlainStyles returns styles that add no escape sequences, for piped output.
func PlainStyles() Styles {
	return Styles{
		Normal:   lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle(),
	}
}
