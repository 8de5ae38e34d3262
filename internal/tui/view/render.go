package view

import (
	"strings"

	"podpanel/internal/tui/model"
)

// NoContainerPlaceholder is shown for a listing line that carried no status.
const NoContainerPlaceholder = "There is no container to display"

// Lines renders one line per roster entry, in roster order.
func Lines(s model.State, st Styles) []string {
	lines := make([]string, 0, len(s.Roster))
	for i, c := range s.Roster {
		lines = append(lines, renderContainer(c, i == s.Cursor, st))
	}
	return lines
}

// Render joins Lines with newlines. An empty roster renders as "".
func Render(s model.State, st Styles) string {
	return strings.Join(Lines(s, st), "\n")
}

func renderContainer(c model.Container, selected bool, st Styles) string {
	if !c.HasStatus {
		return NoContainerPlaceholder
	}
	style := st.Normal
	if selected {
		style = st.Selected
	}
	return style.Render(c.Name) + " " + style.Render(c.Status)
}
