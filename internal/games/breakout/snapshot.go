package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Snapshot is a read-only copy of everything a renderer needs.
// It shares no memory with the live game.
type Snapshot struct {
	Layout Layout
	Status core.Status
	Tick   int

	Bricks    []bool // row-major: row*Layout.Columns + col
	Remaining int

	Paddle Paddle
	Ball   Ball
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	return Snapshot{
		Layout:    g.layout,
		Status:    s.Status,
		Tick:      s.Ticks,
		Bricks:    s.Grid.cloneCells(),
		Remaining: s.Grid.Remaining(),
		Paddle:    s.Paddle,
		Ball:      s.Ball,
	}
}

// BrickPresent reports whether the brick at (col, row) was standing.
func (snap Snapshot) BrickPresent(col, row int) bool {
	l := snap.Layout
	if col < 0 || col >= l.Columns || row < 0 || row >= l.Rows {
		return false
	}
	return snap.Bricks[row*l.Columns+col]
}

// BrickAt reports whether cell (x, y) shows a standing brick, using the
// same mapping as collision detection.
func (snap Snapshot) BrickAt(x, y int) (BrickPos, bool) {
	col, row, ok := snap.Layout.BrickCell(x, y)
	if !ok || !snap.BrickPresent(col, row) {
		return BrickPos{}, false
	}
	return BrickPos{Col: col, Row: row}, true
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Status)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Paddle.X)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ball.X)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ball.Y)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ball.DX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ball.DY)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Remaining) //#nosec G115 -- hash computation

	for _, present := range snap.Bricks {
		h *= 31
		if present {
			h++
		}
	}
	return h
}
