package model

import "time"

// EventType identifies a kind of host event the panel can subscribe to.
type EventType int

const (
	EventKey EventType = iota
	EventTabUpdate
	EventPaneUpdate
	EventCommandResult
	EventTimer
)

// String provides a human-readable representation of the EventType.
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "Key"
	case EventTabUpdate:
		return "TabUpdate"
	case EventPaneUpdate:
		return "PaneUpdate"
	case EventCommandResult:
		return "CommandResult"
	case EventTimer:
		return "Timer"
	default:
		return "Unknown"
	}
}

// Event is anything the host delivers to the dispatcher.
type Event interface {
	Type() EventType
}

// Key is a key press in bubbles notation ("up", "enter", "j", "ctrl+c").
type Key string

func (k Key) String() string { return string(k) }

const (
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyEnter Key = "enter"
)

// KeyEvent is a key press forwarded by the host.
type KeyEvent struct {
	Key Key
}

// CommandKind tells which request a CommandResultEvent answers.
type CommandKind int

const (
	CommandList CommandKind = iota
	CommandStart
	CommandStop
	CommandAttach
)

// String provides a human-readable representation of the CommandKind.
func (k CommandKind) String() string {
	switch k {
	case CommandList:
		return "list"
	case CommandStart:
		return "start"
	case CommandStop:
		return "stop"
	case CommandAttach:
		return "attach"
	default:
		return "unknown"
	}
}

// CommandResultEvent carries the captured outcome of a subprocess request.
type CommandResultEvent struct {
	Kind      CommandKind
	RequestID uint64 // set for CommandList; 0 when the host does not correlate
	Container string // set for start, stop and attach
	Stdout    []byte
	Stderr    []byte
	ExitCode  int
	Err       error
}

// Failed reports whether the subprocess did not complete successfully.
func (e CommandResultEvent) Failed() bool {
	return e.Err != nil || e.ExitCode != 0
}

// PaneUpdateEvent signals that the host's pane layout changed.
type PaneUpdateEvent struct {
	Rows int
	Cols int
}

// TabUpdateEvent signals that the host's tab layout or focus changed.
type TabUpdateEvent struct {
	Focused bool
}

// TimerEvent is a poll tick.
type TimerEvent struct {
	At time.Time
}

func (KeyEvent) Type() EventType           { return EventKey }
func (CommandResultEvent) Type() EventType { return EventCommandResult }
func (PaneUpdateEvent) Type() EventType    { return EventPaneUpdate }
func (TabUpdateEvent) Type() EventType     { return EventTabUpdate }
func (TimerEvent) Type() EventType         { return EventTimer }

// Permission is a host capability the panel must be granted.
type Permission int

const (
	PermissionRunCommands Permission = iota
	PermissionReadApplicationState
	PermissionChangeApplicationState
)

// String provides a human-readable representation of the Permission.
func (p Permission) String() string {
	switch p {
	case PermissionRunCommands:
		return "RunCommands"
	case PermissionReadApplicationState:
		return "ReadApplicationState"
	case PermissionChangeApplicationState:
		return "ChangeApplicationState"
	default:
		return "Unknown"
	}
}

// Effect is a request the dispatcher hands to the host for execution.
type Effect interface {
	isEffect()
}

// ListContainers asks the host to run the runtime listing command.
type ListContainers struct {
	RequestID uint64
}

// StartContainer asks the host to run `start <Name>`.
type StartContainer struct {
	Name string
}

// StopContainer asks the host to run `stop <Name>`.
type StopContainer struct {
	Name string
}

// OpenShellPane asks the host to open a terminal pane running
// `exec -it <Name> <shell>`.
type OpenShellPane struct {
	Name string
}

// HideSelf asks the host to hide the panel without terminating it.
type HideSelf struct{}

// RequestPermissions asks the host to grant capabilities.
type RequestPermissions struct {
	Permissions []Permission
}

// Subscribe asks the host to deliver the listed event types.
type Subscribe struct {
	Events []EventType
}

func (ListContainers) isEffect()     {}
func (StartContainer) isEffect()     {}
func (StopContainer) isEffect()      {}
func (OpenShellPane) isEffect()      {}
func (HideSelf) isEffect()           {}
func (RequestPermissions) isEffect() {}
func (Subscribe) isEffect()          {}

// RequiredPermission returns the permission the host must hold to execute e.
// The second result is false for effects that need none.
func RequiredPermission(e Effect) (Permission, bool) {
	switch e.(type) {
	case ListContainers, StartContainer, StopContainer:
		return PermissionRunCommands, true
	case OpenShellPane, HideSelf:
		return PermissionChangeApplicationState, true
	default:
		return 0, false
	}
}
