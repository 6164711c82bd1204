package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	BallChar        = '●'
	PaddleTopChar   = '▄'
	PaddleChar      = '█'
	BrickChar       = '█'
	BrickAltChar    = '▓' // Odd columns, so neighbouring bricks stay distinct
	FrameColor      = core.ColorGray
	PaddleColor     = core.ColorCyan
	BallColor       = core.ColorBrightWhite
	overlayMinWidth = 24
)

// brickColors cycles by brick row.
var brickColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorMagenta,
}

// Render draws a snapshot into dst. Brick cells are resolved with
// Layout.BrickCell, the mapping the collision resolver uses.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()
	l := snap.Layout

	dst.DrawBox(core.NewRect(0, 0, l.Width, l.Height), FrameColor)
	renderHUD(snap, dst)

	// Bricks
	for y := l.BrickTop; y < l.BrickTop+l.Rows; y++ {
		for x := 1; x < l.Width-1; x++ {
			pos, ok := snap.BrickAt(x, y)
			if !ok {
				continue
			}
			glyph := BrickChar
			if pos.Col%2 == 1 {
				glyph = BrickAltChar
			}
			dst.SetColored(x, y, glyph, brickColors[pos.Row%len(brickColors)])
		}
	}

	// Paddle, both rows
	p := snap.Paddle
	for x := p.X; x < p.X+p.Width; x++ {
		dst.SetColored(x, p.TopRow(), PaddleTopChar, PaddleColor)
		dst.SetColored(x, p.Row, PaddleChar, PaddleColor)
	}

	dst.SetColored(snap.Ball.X, snap.Ball.Y, BallChar, BallColor)

	if snap.Status == core.StatusWon {
		drawCenteredBox(dst, l, "YOU WIN!", fmt.Sprintf("Cleared in %d ticks", snap.Tick))
	}
}

// renderHUD writes the brick counter into the top margin when there is room.
func renderHUD(snap Snapshot, dst *core.Screen) {
	l := snap.Layout
	if l.TopMargin < 2 {
		return
	}
	total := l.Columns * l.Rows
	dst.DrawText(2, 1, fmt.Sprintf("Bricks: %d/%d", snap.Remaining, total))
}

// drawCenteredBox draws a centered message box inside the playfield.
func drawCenteredBox(dst *core.Screen, l Layout, title, subtitle string) {
	boxW := max(len(title), len(subtitle), overlayMinWidth-4) + 4
	boxH := 5
	boxX := (l.Width - boxW) / 2
	boxY := (l.Height - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorDefault)

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
