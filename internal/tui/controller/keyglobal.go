package controller

import (
	"podpanel/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
)

const keySubsystem = "KeyHandler"

var keys = model.DefaultKeyMap()

// handleKey maps a key press to cursor movement or a container command.
// Commands are only issued when the cursor addresses an existing container.
func handleKey(s *model.State, k model.Key) ([]model.Effect, bool) {
	switch {
	case key.Matches(k, keys.Down):
		return nil, s.SelectDown()
	case key.Matches(k, keys.Up):
		return nil, s.SelectUp()
	case key.Matches(k, keys.Start):
		return onSelected(s, func(name string) model.Effect { return model.StartContainer{Name: name} }), false
	case key.Matches(k, keys.Stop):
		return onSelected(s, func(name string) model.Effect { return model.StopContainer{Name: name} }), false
	case key.Matches(k, keys.Exec):
		return onSelected(s, func(name string) model.Effect { return model.OpenShellPane{Name: name} }), false
	case key.Matches(k, keys.Hide):
		return []model.Effect{model.HideSelf{}}, false
	}
	return nil, false
}

func onSelected(s *model.State, build func(name string) model.Effect) []model.Effect {
	c, ok := s.Selected()
	if !ok {
		LogDebug(keySubsystem, "No container at cursor %d, ignoring", s.Cursor)
		return nil
	}
	return []model.Effect{build(c.Name)}
}
