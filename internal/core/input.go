package core

import "sync"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow - move paddle left
	ActionRight        // D, Right arrow - move paddle right
	ActionQuit         // Q, Esc, Ctrl+C - end the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Intents is the input state consumed by one simulation tick.
// Left and Right may both be set; the simulation applies left before right.
type Intents struct {
	Left  bool
	Right bool
	Quit  bool
}

// Set marks an action as requested.
func (in *Intents) Set(a Action) {
	switch a {
	case ActionLeft:
		in.Left = true
	case ActionRight:
		in.Right = true
	case ActionQuit:
		in.Quit = true
	}
}

// Latch collects actions from a key-event producer until the next poll.
// Terminals report key presses but not releases, so each press (or
// auto-repeat) counts for exactly one tick. Quit stays latched once set.
type Latch struct {
	mu      sync.Mutex
	pending Intents
	quit    bool
}

// Press records an action for the next Poll.
func (l *Latch) Press(a Action) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending.Set(a)
	if a == ActionQuit {
		l.quit = true
	}
}

// Poll returns the latched intents and resets the movement actions.
func (l *Latch) Poll() Intents {
	l.mu.Lock()
	defer l.mu.Unlock()

	in := l.pending
	in.Quit = in.Quit || l.quit
	l.pending = Intents{}
	return in
}
