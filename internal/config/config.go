// Package config provides YAML-based game configuration loading and
// validation for the arcade.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid breakout configuration")

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Bricks    BricksConfig    `yaml:"bricks"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Ball      BallConfig      `yaml:"ball"`
	Timing    TimingConfig    `yaml:"timing"`
}

// PlayfieldConfig defines the framed play area.
type PlayfieldConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TopMargin int `yaml:"top_margin"`
}

// BricksConfig defines the brick grid dimensions.
type BricksConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// PaddleConfig defines the player's paddle.
type PaddleConfig struct {
	Width int `yaml:"width"`
	Speed int `yaml:"speed"` // Cells per tick
}

// BallConfig defines ball movement.
type BallConfig struct {
	Throttle int `yaml:"throttle"` // Ball moves once every Throttle ticks
	MaxDX    int `yaml:"max_dx"`   // Horizontal step range after a paddle hit
	StartDX  int `yaml:"start_dx"`
	StartDY  int `yaml:"start_dy"`
}

// TimingConfig defines the fixed simulation step.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// Tick returns the fixed tick duration.
func (t TimingConfig) Tick() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// Validate reports every setting that would make the playfield degenerate.
// The returned error wraps ErrInvalidConfig.
func (c BreakoutConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	pf := c.Playfield
	if pf.Width < 3 {
		bad("playfield width %d leaves no interior between the walls", pf.Width)
	}
	if pf.TopMargin < 0 {
		bad("top margin %d is negative", pf.TopMargin)
	}
	if c.Bricks.Columns <= 0 || c.Bricks.Rows <= 0 {
		bad("brick grid %dx%d must have positive dimensions", c.Bricks.Columns, c.Bricks.Rows)
	}
	if c.Paddle.Width <= 0 || c.Paddle.Width > pf.Width-2 {
		bad("paddle width %d does not fit inside playfield width %d", c.Paddle.Width, pf.Width)
	}
	if c.Paddle.Speed < 0 {
		bad("paddle speed %d is negative", c.Paddle.Speed)
	}

	// Brick rows sit below the top margin and must end above the ball's
	// starting row and the two paddle rows.
	brickBottom := pf.TopMargin + 1 + c.Bricks.Rows
	if brickBottom >= pf.Height/2 || pf.Height/2 >= pf.Height-3 {
		bad("playfield height %d cannot fit margin %d, %d brick rows and the paddle",
			pf.Height, pf.TopMargin, c.Bricks.Rows)
	}

	b := c.Ball
	if b.Throttle <= 0 {
		bad("ball throttle %d must be positive", b.Throttle)
	}
	if b.MaxDX < 1 {
		bad("ball max_dx %d must be at least 1", b.MaxDX)
	}
	if b.StartDX == 0 || core.Abs(b.StartDX) > b.MaxDX {
		bad("ball start_dx %d must be non-zero and within ±%d", b.StartDX, b.MaxDX)
	}
	if b.StartDY != 1 && b.StartDY != -1 {
		bad("ball start_dy %d must be 1 or -1", b.StartDY)
	}
	if c.Timing.TickMS <= 0 {
		bad("tick_ms %d must be positive", c.Timing.TickMS)
	}

	return errors.Join(errs...)
}
