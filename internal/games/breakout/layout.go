package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
)

// Layout holds the immutable playfield geometry derived from configuration.
//
// The frame occupies column 0, column Width-1, row 0 and row Height-1.
// Bricks fill rows [BrickTop, BrickTop+Rows) across the interior columns.
// The paddle is drawn on PaddleRow-1 and collides on PaddleRow.
type Layout struct {
	Width     int
	Height    int
	TopMargin int // The ball reflects when it would reach this row

	LeftWall  int // Ball reflects at or left of this column
	RightWall int // Ball reflects at or right of this column
	Bottom    int // Ball reflects when it reaches this row

	Columns  int
	Rows     int
	BrickTop int

	PaddleWidth int
	PaddleSpeed int
	PaddleRow   int // Collision row

	Throttle int
	MaxDX    int
	StartDX  int
	StartDY  int
}

// NewLayout validates cfg and derives the playfield geometry.
func NewLayout(cfg config.BreakoutConfig) (Layout, error) {
	if err := cfg.Validate(); err != nil {
		return Layout{}, err
	}

	w, h := cfg.Playfield.Width, cfg.Playfield.Height
	return Layout{
		Width:       w,
		Height:      h,
		TopMargin:   cfg.Playfield.TopMargin,
		LeftWall:    1,
		RightWall:   w - 2,
		Bottom:      h - 2,
		Columns:     cfg.Bricks.Columns,
		Rows:        cfg.Bricks.Rows,
		BrickTop:    cfg.Playfield.TopMargin + 1,
		PaddleWidth: cfg.Paddle.Width,
		PaddleSpeed: cfg.Paddle.Speed,
		PaddleRow:   h - 2,
		Throttle:    cfg.Ball.Throttle,
		MaxDX:       cfg.Ball.MaxDX,
		StartDX:     cfg.Ball.StartDX,
		StartDY:     cfg.Ball.StartDY,
	}, nil
}

// BrickCell maps a cell coordinate to the brick covering it.
// ok is false when y lies outside the brick rows.
func (l Layout) BrickCell(x, y int) (col, row int, ok bool) {
	if y < l.BrickTop || y >= l.BrickTop+l.Rows {
		return -1, -1, false
	}
	// Interior spans columns [1, Width-1)
	return ColumnForX(x, 1, l.Width-1, l.Columns), y - l.BrickTop, true
}

// PaddleMinX returns the leftmost allowed paddle position.
func (l Layout) PaddleMinX() int {
	return 1
}

// PaddleMaxX returns the rightmost allowed paddle position.
func (l Layout) PaddleMaxX() int {
	return l.Width - l.PaddleWidth - 1
}
