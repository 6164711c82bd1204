package breakout

// Paddle is the player's paddle. X is the left edge; the paddle spans
// [X, X+Width) on both of its rows.
type Paddle struct {
	X     int
	Width int
	Row   int // Collision row; the visible top row sits directly above
}

// TopRow returns the row of the paddle's visible top edge.
func (p Paddle) TopRow() int {
	return p.Row - 1
}

// Covers reports whether column x lies within the paddle span.
func (p Paddle) Covers(x int) bool {
	return x >= p.X && x < p.X+p.Width
}

// Ball is the single ball. Velocity components are whole cells per move.
type Ball struct {
	X, Y   int
	DX, DY int
}

// Next returns the candidate position one move ahead.
func (b Ball) Next() (int, int) {
	return b.X + b.DX, b.Y + b.DY
}
