package view

import (
	"os"
	"strings"
	"testing"

	"podpanel/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Force escape sequences so selection styling is observable without a TTY.
	lipgloss.SetColorProfile(termenv.ANSI256)
	os.Exit(m.Run())
}

func stateFrom(raw string, cursor int) model.State {
	s := model.NewState()
	s.Refresh([]byte(raw))
	s.Cursor = cursor
	return *s
}

func TestRenderPlainText(t *testing.T) {
	s := stateFrom("alpha running\nbeta exited\n", 0)

	lines := Lines(s, NewStyles("1"))
	require.Len(t, lines, 2)
	assert.Equal(t, "alpha running", ansi.Strip(lines[0]))
	assert.Equal(t, "beta exited", ansi.Strip(lines[1]))
}

func TestRenderStylesOnlySelectedEntry(t *testing.T) {
	s := stateFrom("alpha running\nbeta exited\n", 1)

	lines := Lines(s, NewStyles("1"))
	require.Len(t, lines, 2)
	assert.Equal(t, "alpha running", lines[0], "unselected entry carries no styling")
	assert.NotEqual(t, "beta exited", lines[1], "selected entry is styled")
	assert.Equal(t, "beta exited", ansi.Strip(lines[1]))

	selected := NewStyles("1").Selected
	assert.Equal(t, selected.Render("beta")+" "+selected.Render("exited"), lines[1])
}

func TestRenderMissingStatusPlaceholder(t *testing.T) {
	s := stateFrom("alpha running\ngamma\n", 0)

	lines := Lines(s, NewStyles("1"))
	require.Len(t, lines, 2)
	assert.Equal(t, "alpha running", ansi.Strip(lines[0]))
	assert.Equal(t, NoContainerPlaceholder, lines[1])

	// The placeholder stays unstyled even when selected.
	s.Cursor = 1
	assert.Equal(t, NoContainerPlaceholder, Lines(s, NewStyles("1"))[1])
}

func TestRenderEmptyRoster(t *testing.T) {
	s := stateFrom("", 0)
	assert.Empty(t, Lines(s, NewStyles("1")))
	assert.Equal(t, "", Render(s, NewStyles("1")))
}

func TestRenderJoinsWithNewlines(t *testing.T) {
	s := stateFrom("a up\nb up\nc up\n", 2)
	out := Render(s, PlainStyles())
	assert.Equal(t, "a up\nb up\nc up", out)
	assert.Equal(t, 3, len(strings.Split(out, "\n")))
}

func TestRenderIgnoresOutOfRangeCursor(t *testing.T) {
	s := stateFrom("a up\nb up\n", 0)
	s.Cursor = 7

	for _, line := range Lines(s, NewStyles("1")) {
		assert.Equal(t, ansi.Strip(line), line)
	}
}

func TestPlainStylesEmitNoEscapes(t *testing.T) {
	s := stateFrom("a up\nb up\n", 0)
	out := Render(s, PlainStyles())
	assert.Equal(t, ansi.Strip(out), out)
}
