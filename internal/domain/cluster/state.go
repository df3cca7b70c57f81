// Package cluster holds the value types that describe the process's
// connection to a replicated document store and the health of that store:
// connection states, the immutable cluster configuration, replica-set member
// snapshots and the reports built from them.
package cluster

import "time"

// ConnectionState is the lifecycle state of the store connection.
type ConnectionState int

const (
	Disconnected ConnectionState = iota
	Connecting
	Connected
	Error
)

// String implements fmt.Stringer.
func (s ConnectionState) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// allowedTransitions lists the legal successors of each state. Connected may
// not move straight back to Connecting: a new attempt has to pass through
// Disconnected or Error first.
var allowedTransitions = map[ConnectionState][]ConnectionState{
	Disconnected: {Connecting, Connected},
	Connecting:   {Connected, Error, Disconnected},
	Connected:    {Disconnected, Error},
	Error:        {Connecting, Connected, Disconnected},
}

// CanTransition reports whether moving from one state to another is legal.
// A same-state move is never a transition.
func CanTransition(from, to ConnectionState) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// StateEvent is delivered to lifecycle observers on every transition.
// Err carries the cause for transitions into Error or an unexpected
// Disconnected, and is nil otherwise.
type StateEvent struct {
	From ConnectionState
	To   ConnectionState
	Err  error
	At   time.Time
}

// Observer receives state events. Observers run on the manager's dispatch
// path and must not block.
type Observer func(StateEvent)

// DriverEvent is what a driver reports about the underlying topology.
// Only Connected, Error and Disconnected are meaningful here; Connecting is
// always raised by the manager itself.
type DriverEvent struct {
	State ConnectionState
	Err   error
}
