package controller

import (
	"context"
	"time"

	"podpanel/internal/containerizer"
	"podpanel/internal/tui/model"
	"podpanel/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

const hostSubsystem = "Host"

// Runner is the container runtime CLI as the host sees it.
type Runner interface {
	ListArgs() []string
	StartArgs(name string) []string
	StopArgs(name string) []string
	ExecArgs(name string) []string
	Run(ctx context.Context, argv []string) containerizer.Result
}

// commandResultMsg carries a finished subprocess back into the program loop.
type commandResultMsg struct {
	event model.CommandResultEvent
}

// pollTickMsg fires on every poll interval.
type pollTickMsg time.Time

// logEntryMsg carries one entry from the logging channel.
type logEntryMsg logging.LogEntry

// runEffects turns dispatcher effects into Bubble Tea commands. Effects that
// need a permission the panel has not been granted are refused.
func (a *AppModel) runEffects(effects []model.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range effects {
		if cmd := a.runEffect(e); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (a *AppModel) runEffect(e model.Effect) tea.Cmd {
	if perm, needed := model.RequiredPermission(e); needed && !a.granted[perm] {
		LogWarn(hostSubsystem, "Refusing %T: permission %s not granted", e, perm)
		return nil
	}

	switch e := e.(type) {
	case model.RequestPermissions:
		for _, p := range e.Permissions {
			a.granted[p] = true
			LogDebug(hostSubsystem, "Granted permission %s", p)
		}
	case model.Subscribe:
		for _, t := range e.Events {
			a.subscribed[t] = true
		}
	case model.ListContainers:
		return a.requestListing(e.RequestID)
	case model.StartContainer:
		LogInfo(hostSubsystem, "Starting container %s", e.Name)
		return runCommandCmd(a.runner, model.CommandResultEvent{Kind: model.CommandStart, Container: e.Name}, a.runner.StartArgs(e.Name))
	case model.StopContainer:
		LogInfo(hostSubsystem, "Stopping container %s", e.Name)
		return runCommandCmd(a.runner, model.CommandResultEvent{Kind: model.CommandStop, Container: e.Name}, a.runner.StopArgs(e.Name))
	case model.OpenShellPane:
		name := e.Name
		LogInfo(hostSubsystem, "Opening %s shell pane for %s", a.opener.Name(), name)
		return a.opener.Open(name, a.runner.ExecArgs(name), func(err error) tea.Msg {
			return commandResultMsg{event: model.CommandResultEvent{Kind: model.CommandAttach, Container: name, Err: err}}
		})
	case model.HideSelf:
		return tea.Suspend
	default:
		LogWarn(hostSubsystem, "Unhandled effect %T", e)
	}
	return nil
}

// runCommandCmd runs argv in the background and reports it as a CommandResultEvent
// based on template.
func runCommandCmd(runner Runner, template model.CommandResultEvent, argv []string) tea.Cmd {
	return func() tea.Msg {
		res := runner.Run(context.Background(), argv)
		ev := template
		ev.Stdout = res.Stdout
		ev.Stderr = res.Stderr
		ev.ExitCode = res.ExitCode
		ev.Err = res.Err
		return commandResultMsg{event: ev}
	}
}

func pollCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return pollTickMsg(t) })
}

// listenForLogEntries waits for the next log entry; it stops once the channel is closed.
func listenForLogEntries(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return logEntryMsg(entry)
	}
}
