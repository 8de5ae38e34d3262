package controller

import (
	"fmt"
	"strings"

	"podpanel/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// footerHeight is the help line plus the status line.
const footerHeight = 2

// handleWindowSizeMsg updates the host layout when the terminal is resized.
func handleWindowSizeMsg(a *AppModel, msg tea.WindowSizeMsg) {
	a.width = msg.Width
	a.height = msg.Height
	a.viewport.Width = msg.Width
	a.viewport.Height = max(1, msg.Height-footerHeight)
	a.help.Width = msg.Width
	a.refreshViewport()
}

// render re-runs the panel renderer and caches the frame.
func (a *AppModel) render() {
	a.frame = view.Lines(*a.state, a.styles)
	a.refreshViewport()
}

// refreshViewport clips the cached frame to the terminal width and scrolls so
// the cursor stays visible.
func (a *AppModel) refreshViewport() {
	clipped := make([]string, len(a.frame))
	for i, line := range a.frame {
		clipped[i] = ansi.Truncate(line, a.width, "…")
	}
	a.viewport.SetContent(strings.Join(clipped, "\n"))

	cursor := a.state.Cursor
	switch {
	case cursor < a.viewport.YOffset:
		a.viewport.SetYOffset(cursor)
	case cursor >= a.viewport.YOffset+a.viewport.Height:
		a.viewport.SetYOffset(cursor - a.viewport.Height + 1)
	}
}

func (a AppModel) footer() string {
	helpLine := a.help.ShortHelpView(append(a.keys.ShortHelp(), a.quit))
	status := a.status
	if n := a.dropped(); n > 0 {
		status = fmt.Sprintf("(%d log lines dropped) %s", n, status)
	}
	status = runewidth.Truncate(status, a.width, "…")
	return helpLine + "\n" + status
}
