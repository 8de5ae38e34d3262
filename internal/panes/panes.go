// Package panes opens interactive terminal surfaces for attach shells. Inside
// tmux or zellij a new multiplexer pane is created; otherwise the command runs
// in the foreground while the Bubble Tea program is suspended.
package panes

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"podpanel/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

// DoneFunc turns the outcome of opening a pane into a message for the program.
type DoneFunc func(err error) tea.Msg

// Opener starts argv in a new interactive terminal surface.
type Opener interface {
	Name() string
	Open(title string, argv []string, done DoneFunc) tea.Cmd
}

// Resolve picks the Opener for the configured mode. In auto mode the
// multiplexer is detected from the environment ($TMUX, then $ZELLIJ).
func Resolve(mode config.PaneMode, getenv func(string) string) (Opener, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	switch mode {
	case config.PaneTmux:
		return Tmux{}, nil
	case config.PaneZellij:
		return Zellij{}, nil
	case config.PaneInline:
		return Inline{}, nil
	case config.PaneAuto, "":
		if getenv("TMUX") != "" {
			return Tmux{}, nil
		}
		if getenv("ZELLIJ") != "" {
			return Zellij{}, nil
		}
		return Inline{}, nil
	default:
		return nil, fmt.Errorf("unknown pane mode %q", mode)
	}
}

// Tmux splits the current tmux window.
type Tmux struct{}

func (Tmux) Name() string { return string(config.PaneTmux) }

// Args returns the tmux invocation running argv in a new split.
func (Tmux) Args(argv []string) []string {
	return append([]string{"tmux", "split-window", "-h", "--"}, argv...)
}

func (t Tmux) Open(_ string, argv []string, done DoneFunc) tea.Cmd {
	return spawn(t.Args(argv), done)
}

// Zellij opens a command pane in the current zellij session.
type Zellij struct{}

func (Zellij) Name() string { return string(config.PaneZellij) }

// Args returns the zellij invocation running argv in a new named pane.
func (Zellij) Args(title string, argv []string) []string {
	args := []string{"zellij", "run", "--close-on-exit"}
	if title != "" {
		args = append(args, "--name", title)
	}
	args = append(args, "--")
	return append(args, argv...)
}

func (z Zellij) Open(title string, argv []string, done DoneFunc) tea.Cmd {
	return spawn(z.Args(title, argv), done)
}

// Inline hands the terminal to argv until it exits.
type Inline struct{}

func (Inline) Name() string { return string(config.PaneInline) }

func (Inline) Open(_ string, argv []string, done DoneFunc) tea.Cmd {
	if len(argv) == 0 {
		return func() tea.Msg { return done(fmt.Errorf("empty command")) }
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	return tea.ExecProcess(cmd, func(err error) tea.Msg { return done(err) })
}

// spawn runs a short-lived multiplexer client command that creates the pane.
func spawn(args []string, done DoneFunc) tea.Cmd {
	return func() tea.Msg {
		cmd := exec.Command(args[0], args[1:]...)
		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				err = fmt.Errorf("%s: %w: %s", args[0], err, msg)
			}
			return done(err)
		}
		return done(nil)
	}
}
