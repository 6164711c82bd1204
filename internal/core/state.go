package core

// Status is the lifecycle state of a game.
type Status int

const (
	StatusRunning Status = iota // Ticks are still being scheduled
	StatusWon                   // Every brick has been cleared
	StatusQuit                  // The player asked to stop
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Done reports whether the game has left the running state.
func (s Status) Done() bool {
	return s != StatusRunning
}

// StepResult is returned by a simulation after each fixed tick.
type StepResult struct {
	Status    Status
	Tick      int  // Ticks simulated so far
	BallMoved bool // Whether the ball advanced on this tick
	Destroyed int  // Bricks destroyed on this tick
}
