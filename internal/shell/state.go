package shell

import "sync"

// State is the coarse lifecycle of the application runtime.
type State int

// Lifecycle states, strictly ordered.
const (
	StateUninitialized State = iota
	StateRunning
	StateShuttingDown
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting-down"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// lifecycle guards monotonic state transitions. Each advance moves exactly
// one step forward; skips and reversals are rejected.
type lifecycle struct {
	mu    sync.Mutex
	state State
}

// Current returns the current state.
func (l *lifecycle) Current() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// advance moves to the given state if it is the immediate successor.
func (l *lifecycle) advance(to State) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if to != l.state+1 {
		return false
	}
	l.state = to
	return true
}
