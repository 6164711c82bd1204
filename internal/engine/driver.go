// Package engine runs a fixed-step simulation against wall-clock time.
//
// The Driver accumulates elapsed time and converts it into whole simulation
// ticks, so the simulation advances at the same rate regardless of how
// often frames are drawn.
package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// lagTicks is the number of ticks drained in one Advance call above which
// the driver reports that it is falling behind.
const lagTicks = 5

// Sim is a fixed-step simulation.
type Sim interface {
	Step(in core.Intents) core.StepResult
	Render(dst *core.Screen)
	Size() (width, height int)
}

// InputSource supplies the intents for the next tick.
type InputSource interface {
	Poll() core.Intents
}

// Renderer presents frames to the player.
// Close restores the output device and is called once when Run returns.
type Renderer interface {
	Draw(screen *core.Screen) error
	Close() error
}

// State is the driver's lifecycle state.
type State int

const (
	StateActive State = iota
	StateStopped
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Options configures a Driver.
type Options struct {
	Tick   time.Duration // Fixed simulation step, must be positive
	Clock  Clock         // Defaults to SystemClock
	Logger *log.Logger   // Defaults to a discarding logger
}

// Driver advances a Sim in fixed ticks and draws frames.
// It is not safe for concurrent use; hosts call it from one goroutine.
type Driver struct {
	sim    Sim
	input  InputSource
	clock  Clock
	tick   time.Duration
	logger *log.Logger
	screen *core.Screen

	state   State
	started bool
	last    time.Time
	acc     time.Duration
	result  core.StepResult
	frames  int
}

// New creates a driver for sim reading intents from input.
func New(sim Sim, input InputSource, opts Options) (*Driver, error) {
	if opts.Tick <= 0 {
		return nil, fmt.Errorf("engine: %w: tick %v must be positive", config.ErrInvalidConfig, opts.Tick)
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	w, h := sim.Size()
	return &Driver{
		sim:    sim,
		input:  input,
		clock:  opts.Clock,
		tick:   opts.Tick,
		logger: opts.Logger,
		screen: core.NewScreen(w, h),
		state:  StateActive,
	}, nil
}

// State returns the driver's lifecycle state.
func (d *Driver) State() State {
	return d.state
}

// Result returns the outcome of the most recent tick.
func (d *Driver) Result() core.StepResult {
	return d.result
}

// Tick returns the fixed simulation step.
func (d *Driver) Tick() time.Duration {
	return d.tick
}

// Advance adds the time elapsed since the previous call to the accumulator
// and runs one Step per whole tick it holds. The first call only records
// the start time. Returns the number of ticks run.
//
// Time going backwards counts as no elapsed time. Once the simulation
// reports a finished status the driver stops and further calls return 0.
func (d *Driver) Advance(now time.Time) int {
	if d.state == StateStopped {
		return 0
	}
	if !d.started {
		d.started = true
		d.last = now
		d.logger.Debug("driver started", "tick", d.tick)
		return 0
	}

	elapsed := max(now.Sub(d.last), 0)
	d.last = now
	d.acc += elapsed

	steps := 0
	for d.acc >= d.tick {
		d.result = d.sim.Step(d.input.Poll())
		d.acc -= d.tick
		steps++

		if d.result.Destroyed > 0 {
			d.logger.Debug("bricks destroyed", "tick", d.result.Tick, "count", d.result.Destroyed)
		}
		if d.result.Status.Done() {
			d.Stop()
			break
		}
	}

	if steps > lagTicks {
		d.logger.Debug("driver lagging", "ticks", steps, "elapsed", elapsed)
	}
	return steps
}

// Stop moves the driver to the stopped state. Stopping twice is a no-op.
func (d *Driver) Stop() {
	if d.state == StateStopped {
		return
	}
	d.state = StateStopped
	d.logger.Debug("driver stopped",
		"status", d.result.Status,
		"ticks", d.result.Tick,
		"frames", d.frames,
	)
}

// Frame renders the simulation into the driver's screen buffer.
// The buffer is reused between calls.
func (d *Driver) Frame() *core.Screen {
	d.sim.Render(d.screen)
	d.frames++
	return d.screen
}

// Run drives the simulation until it finishes or ctx is cancelled.
// Each frame advances the accumulator, draws once and sleeps for what is
// left of the tick. A final frame is drawn after the loop stops, then the
// renderer is closed. Cancellation is an external stop, not an error.
func (d *Driver) Run(ctx context.Context, r Renderer) (err error) {
	defer func() {
		if cerr := r.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("engine: close renderer: %w", cerr)
		}
	}()

	d.Advance(d.clock.Now())

	for d.state == StateActive {
		if ctx.Err() != nil {
			d.logger.Debug("driver cancelled", "reason", ctx.Err())
			d.Stop()
			break
		}

		frameStart := d.clock.Now()
		d.Advance(frameStart)
		if d.state == StateStopped {
			break
		}

		if err := r.Draw(d.Frame()); err != nil {
			d.Stop()
			return fmt.Errorf("engine: draw frame: %w", err)
		}

		wait := max(d.tick-d.clock.Now().Sub(frameStart), 0)
		select {
		case <-ctx.Done():
		case <-d.clock.After(wait):
		}
	}

	if err := r.Draw(d.Frame()); err != nil {
		return fmt.Errorf("engine: draw final frame: %w", err)
	}
	return nil
}
