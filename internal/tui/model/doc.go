// Package model holds the state of the container panel and the messages that
// flow through it.
//
// # Architecture
//
// The panel follows the same Model-View-Controller split as the rest of the TUI:
//
//   - Model (this package): the container roster, the cursor and the request
//     counter used to match listings to the request that produced them
//   - View (internal/tui/view/): renders the roster, one line per container
//   - Controller (internal/tui/controller/): turns events into state changes
//     and effects, and hosts the panel in a Bubble Tea program
//
// # Events and effects
//
// Everything that reaches the panel is an Event: key presses, pane and tab
// updates, timer ticks and the results of commands it asked for. The
// controller answers each event with a list of Effects (list, start or stop
// a container, open a shell pane, hide the panel) which the host executes.
// The panel never runs a process itself.
//
// # Roster
//
// The roster is parsed from the runtime's listing output, one
// "<name> <status>" pair per line. A line with a single token keeps its name
// but is rendered as a placeholder; tokens past the second are ignored.
package model
