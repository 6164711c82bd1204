package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// GameState is the complete mutable state of one game.
type GameState struct {
	Grid   *BrickGrid
	Paddle Paddle
	Ball   Ball
	Status core.Status
	Ticks  int // Simulation ticks taken while running
}

// Game implements the Breakout simulation step.
type Game struct {
	layout Layout
	state  GameState
}

// New creates a game from cfg. Invalid geometry is reported here, never
// during play.
func New(cfg config.BreakoutConfig) (*Game, error) {
	layout, err := NewLayout(cfg)
	if err != nil {
		return nil, err
	}

	g := &Game{layout: layout}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset restores the initial state: full grid, centred paddle and the ball
// in the middle of the playfield.
func (g *Game) Reset() error {
	l := g.layout

	grid, err := NewBrickGrid(l.Columns, l.Rows)
	if err != nil {
		return err
	}

	g.state = GameState{
		Grid: grid,
		Paddle: Paddle{
			X:     (l.Width - l.PaddleWidth) / 2,
			Width: l.PaddleWidth,
			Row:   l.PaddleRow,
		},
		Ball: Ball{
			X:  l.Width / 2,
			Y:  l.Height / 2,
			DX: l.StartDX,
			DY: l.StartDY,
		},
		Status: core.StatusRunning,
	}
	return nil
}

// Layout returns the playfield geometry.
func (g *Game) Layout() Layout {
	return g.layout
}

// State returns the live game state. Callers outside the simulation
// should prefer Snapshot.
func (g *Game) State() *GameState {
	return &g.state
}

// Status returns the current lifecycle status.
func (g *Game) Status() core.Status {
	return g.state.Status
}

// Step advances the game by one fixed tick.
// The paddle responds every tick; the ball moves only every Throttle ticks.
func (g *Game) Step(in core.Intents) core.StepResult {
	s := &g.state
	if s.Status.Done() {
		return g.result(false, 0)
	}

	g.movePaddle(in)

	if in.Quit {
		s.Status = core.StatusQuit
		return g.result(false, 0)
	}

	s.Ticks++
	if s.Ticks%g.layout.Throttle != 0 {
		return g.result(false, 0)
	}

	res := Resolve(s.Ball, s.Paddle, s.Grid, g.layout)
	s.Ball = res.Ball

	if s.Grid.AllCleared() {
		s.Status = core.StatusWon
	}

	return g.result(true, len(res.Destroyed))
}

// movePaddle applies left then right, clamping after each move.
func (g *Game) movePaddle(in core.Intents) {
	p := &g.state.Paddle
	lo, hi := g.layout.PaddleMinX(), g.layout.PaddleMaxX()
	if in.Left {
		p.X = core.Clamp(p.X-g.layout.PaddleSpeed, lo, hi)
	}
	if in.Right {
		p.X = core.Clamp(p.X+g.layout.PaddleSpeed, lo, hi)
	}
}

func (g *Game) result(moved bool, destroyed int) core.StepResult {
	return core.StepResult{
		Status:    g.state.Status,
		Tick:      g.state.Ticks,
		BallMoved: moved,
		Destroyed: destroyed,
	}
}

// Size returns the screen size needed to render the game.
func (g *Game) Size() (width, height int) {
	return g.layout.Width, g.layout.Height
}

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	Render(g.Snapshot(), dst)
}
