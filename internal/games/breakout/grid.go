// Package breakout implements a Breakout/Arkanoid-style brick breaker on a
// coarse integer grid. All coordinates are terminal cells.
package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BrickGrid tracks which bricks remain. Cells only ever flip from present
// to cleared.
type BrickGrid struct {
	cols  int
	rows  int
	cells []bool // row-major: row*cols + col
}

// NewBrickGrid creates a fully populated grid.
func NewBrickGrid(cols, rows int) (*BrickGrid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: brick grid %dx%d", config.ErrInvalidConfig, cols, rows)
	}

	g := &BrickGrid{
		cols:  cols,
		rows:  rows,
		cells: make([]bool, cols*rows),
	}
	for i := range g.cells {
		g.cells[i] = true
	}
	return g, nil
}

// Columns returns the number of brick columns.
func (g *BrickGrid) Columns() int {
	return g.cols
}

// Rows returns the number of brick rows.
func (g *BrickGrid) Rows() int {
	return g.rows
}

// index clamps (col, row) into the grid and returns the cell offset.
func (g *BrickGrid) index(col, row int) int {
	col = core.Clamp(col, 0, g.cols-1)
	row = core.Clamp(row, 0, g.rows-1)
	return row*g.cols + col
}

// Present reports whether the brick at (col, row) is still standing.
func (g *BrickGrid) Present(col, row int) bool {
	return g.cells[g.index(col, row)]
}

// Clear destroys the brick at (col, row).
// Returns true if a brick was removed; clearing an empty cell is a no-op.
func (g *BrickGrid) Clear(col, row int) bool {
	i := g.index(col, row)
	if !g.cells[i] {
		return false
	}
	g.cells[i] = false
	return true
}

// AllCleared reports whether no brick remains.
func (g *BrickGrid) AllCleared() bool {
	for _, present := range g.cells {
		if present {
			return false
		}
	}
	return true
}

// Remaining returns the number of bricks still standing.
func (g *BrickGrid) Remaining() int {
	n := 0
	for _, present := range g.cells {
		if present {
			n++
		}
	}
	return n
}

// cloneCells returns a copy of the presence flags.
func (g *BrickGrid) cloneCells() []bool {
	out := make([]bool, len(g.cells))
	copy(out, g.cells)
	return out
}

// ColumnForX maps a horizontal cell coordinate to a brick column by linear
// proportion over [left, right). Collision detection and rendering both go
// through this function so a hit column always matches the drawn column.
func ColumnForX(x, left, right, cols int) int {
	return core.Clamp((x-left)*cols/(right-left), 0, cols-1)
}
