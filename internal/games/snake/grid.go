package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Cell is a grid position in cell units.
type Cell struct {
	X, Y int
}

// Add returns the neighbouring cell in direction d.
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// BoundaryPolicy decides what happens when the head leaves the grid.
type BoundaryPolicy int

const (
	BoundaryWrap BoundaryPolicy = iota // Toroidal: reappear on the opposite edge
	BoundaryWall                       // Leaving the grid ends the game
)

// ParseBoundaryPolicy maps a config value to a policy.
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	switch s {
	case config.BoundaryWrap:
		return BoundaryWrap, nil
	case config.BoundaryWall:
		return BoundaryWall, nil
	}
	return BoundaryWrap, fmt.Errorf("snake: unknown boundary policy %q", s)
}

func (p BoundaryPolicy) String() string {
	if p == BoundaryWall {
		return config.BoundaryWall
	}
	return config.BoundaryWrap
}

// Grid is the fixed-size playfield.
type Grid struct {
	Width  int
	Height int
	Policy BoundaryPolicy
}

// Bounds returns the playable area.
func (g Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, g.Width, g.Height)
}

// Area returns the number of cells.
func (g Grid) Area() int {
	return g.Bounds().Area()
}

// Contains reports whether c lies on the grid.
func (g Grid) Contains(c Cell) bool {
	return g.Bounds().Contains(c.X, c.Y)
}

// Resolve maps a candidate head position onto the grid.
// With BoundaryWall an off-grid cell is returned unchanged with ok=false.
func (g Grid) Resolve(c Cell) (Cell, bool) {
	if g.Contains(c) {
		return c, true
	}
	if g.Policy == BoundaryWall {
		return c, false
	}
	return Cell{X: core.Wrap(c.X, g.Width), Y: core.Wrap(c.Y, g.Height)}, true
}

// Clamp pulls c onto the grid.
func (g Grid) Clamp(c Cell) Cell {
	return Cell{
		X: core.Clamp(c.X, 0, g.Width-1),
		Y: core.Clamp(c.Y, 0, g.Height-1),
	}
}
