package controller

import (
	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program hosting the panel.
func NewProgram(opts Options) *tea.Program {
	app := NewAppModel(opts)
	return tea.NewProgram(app, tea.WithAltScreen(), tea.WithReportFocus())
}
