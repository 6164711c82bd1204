package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// BrickPos identifies a brick in the grid.
type BrickPos struct {
	Col, Row int
}

// Resolution is the outcome of one resolved ball move.
type Resolution struct {
	Ball      Ball       // Corrected position and velocity
	Destroyed []BrickPos // At most one per axis pass

	HitWall    bool
	HitCeiling bool
	HitPaddle  bool
	HitBottom  bool
}

// Resolve advances the ball by one move, resolving walls, ceiling, paddle,
// bricks and the bottom boundary in that order. Destroyed bricks are
// cleared from grid.
//
// Bricks are tested per axis: first the horizontal displacement alone
// (candidate x, current y), then the combined cell using the possibly
// reflected candidate x. Each pass reflects only its own axis, so one move
// can destroy two bricks.
func Resolve(ball Ball, paddle Paddle, grid *BrickGrid, l Layout) Resolution {
	res := Resolution{Ball: ball}
	b := &res.Ball
	nx, ny := ball.Next()

	// Side walls
	if nx <= l.LeftWall || nx >= l.RightWall {
		b.DX = -b.DX
		nx = ball.X + b.DX
		res.HitWall = true
	}

	// Ceiling
	if ny <= l.TopMargin {
		b.DY = -b.DY
		ny = ball.Y + b.DY
		res.HitCeiling = true
	}

	// Paddle, only while falling
	if b.DY > 0 && ny >= paddle.Row && paddle.Covers(nx) {
		b.DY = -b.DY
		b.DX = PaddleDeflection(nx, ball.X, paddle, l)
		ny = paddle.Row - 1
		res.HitPaddle = true
	}

	// Bricks, horizontal pass
	if nx != ball.X {
		if col, row, ok := l.BrickCell(nx, ball.Y); ok && grid.Clear(col, row) {
			res.Destroyed = append(res.Destroyed, BrickPos{Col: col, Row: row})
			b.DX = -b.DX
			nx = ball.X + b.DX
		}
	}

	// Bricks, vertical pass with the updated nx
	if ny != ball.Y {
		if col, row, ok := l.BrickCell(nx, ny); ok && grid.Clear(col, row) {
			res.Destroyed = append(res.Destroyed, BrickPos{Col: col, Row: row})
			b.DY = -b.DY
			ny = ball.Y + b.DY
		}
	}

	// Bottom keeps the ball in play; there is no losing condition.
	if ny >= l.Bottom {
		b.DY = -b.DY
		ny = l.Bottom - 1
		res.HitBottom = true
	}

	// A brick reflection can undo a wall or ceiling reflection.
	b.X = core.Clamp(nx, l.LeftWall, l.RightWall)
	b.Y = core.Clamp(ny, l.TopMargin, l.Bottom-1)

	return res
}

// PaddleDeflection returns the horizontal step after a paddle hit at
// column hitX. Off-centre hits angle the ball more; the result is never 0.
// A dead-centre hit sends the ball toward the far side from where it came:
// +1 when the ball was on the left half of the board, -1 otherwise.
func PaddleDeflection(hitX, ballX int, paddle Paddle, l Layout) int {
	hitPos := core.Clamp(hitX-paddle.X, 0, paddle.Width-1)
	dx := core.Clamp(hitPos-paddle.Width/2, -l.MaxDX, l.MaxDX)
	if dx != 0 {
		return dx
	}
	if ballX < l.Width/2 {
		return 1
	}
	return -1
}
