package controller

import (
	"strconv"
	"strings"

	"podpanel/internal/tui/model"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// Load returns the effects a freshly loaded panel issues: the permissions and
// event subscriptions it needs, then the first container listing.
func Load(s *model.State) []model.Effect {
	return []model.Effect{
		model.RequestPermissions{Permissions: []model.Permission{
			model.PermissionRunCommands,
			model.PermissionReadApplicationState,
			model.PermissionChangeApplicationState,
		}},
		model.Subscribe{Events: []model.EventType{
			model.EventKey,
			model.EventTabUpdate,
			model.EventPaneUpdate,
			model.EventCommandResult,
			model.EventTimer,
		}},
		model.ListContainers{RequestID: s.NextRequestID()},
	}
}

// Update is the panel's state machine. It applies ev to s and returns the
// effects the host must execute and whether the list must be re-rendered.
// Every event, whatever it is, re-lists the containers.
func Update(s *model.State, ev model.Event) ([]model.Effect, bool) {
	effects := []model.Effect{model.ListContainers{RequestID: s.NextRequestID()}}

	switch ev := ev.(type) {
	case model.CommandResultEvent:
		return effects, handleCommandResult(s, ev)
	case model.PaneUpdateEvent:
		return effects, true
	case model.KeyEvent:
		more, render := handleKey(s, ev.Key)
		return append(effects, more...), render
	default:
		return effects, false
	}
}

func handleCommandResult(s *model.State, ev model.CommandResultEvent) bool {
	if ev.Kind != model.CommandList {
		if ev.Failed() {
			LogError(controllerDispatchSubsystem, ev.Err, "%s %s failed with exit code %d", ev.Kind, ev.Container, ev.ExitCode)
			LogStderr(ev.Kind.String(), string(ev.Stderr))
		} else {
			LogInfo(controllerDispatchSubsystem, "%s %s done", ev.Kind, ev.Container)
		}
		return false
	}

	if !s.AcceptListing(ev.RequestID) {
		LogDebug(controllerDispatchSubsystem, "Dropping stale listing #%d", ev.RequestID)
		return false
	}
	if ev.Failed() {
		// Keep showing the previous roster rather than blanking it.
		LogWarn(controllerDispatchSubsystem, "Listing containers failed: %v", describeFailure(ev))
		return false
	}
	s.Refresh(ev.Stdout)
	return true
}

func describeFailure(ev model.CommandResultEvent) string {
	if msg := strings.TrimSpace(string(ev.Stderr)); msg != "" {
		if ev.Err != nil {
			return ev.Err.Error() + ": " + msg
		}
		return msg
	}
	if ev.Err != nil {
		return ev.Err.Error()
	}
	return "exit code " + strconv.Itoa(ev.ExitCode)
}
