package world

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a malformed query, such as a window with a
// non-positive extent. Windows are never clamped into shape.
var ErrInvalidArgument = errors.New("invalid argument")

// Resolution selects the lattice a window is expressed in.
type Resolution int

const (
	// Coarse samples every 4th block; cell (i, j) is block (4i, 4j).
	Coarse Resolution = iota
	// Fine samples every block.
	Fine
)

// CoarseSpacing is the number of blocks between coarse lattice points.
const CoarseSpacing = 4

// Spacing returns the distance in blocks between neighbouring samples.
func (r Resolution) Spacing() int {
	if r == Coarse {
		return CoarseSpacing
	}
	return 1
}

func (r Resolution) String() string {
	switch r {
	case Coarse:
		return "coarse"
	case Fine:
		return "fine"
	default:
		return fmt.Sprintf("resolution(%d)", int(r))
	}
}

// Pos is a block position on the horizontal plane.
type Pos struct {
	X, Z int
}

// Window is a rectangle of lattice points. X and Z are the minimum corner
// and Width/Depth the number of points along each axis, all in units of the
// resolution the window is sampled at.
type Window struct {
	X, Z         int
	Width, Depth int
}

// Empty reports whether the window covers no points.
func (w Window) Empty() bool {
	return w.Width <= 0 || w.Depth <= 0
}

// Area returns the number of lattice points in the window.
func (w Window) Area() int {
	if w.Empty() {
		return 0
	}
	return w.Width * w.Depth
}

// Contains reports whether lattice point (x, z) is inside the window.
func (w Window) Contains(x, z int) bool {
	return x >= w.X && x < w.X+w.Width && z >= w.Z && z < w.Z+w.Depth
}

func (w Window) String() string {
	return fmt.Sprintf("%dx%d at (%d, %d)", w.Width, w.Depth, w.X, w.Z)
}

func (w Window) validate() error {
	if w.Width <= 0 || w.Depth <= 0 {
		return fmt.Errorf("%w: window %s has a non-positive extent", ErrInvalidArgument, w)
	}
	return nil
}

// CoarseWindowAround returns the coarse window covering the block square
// centred on (x, z) with the given radius.
func CoarseWindowAround(x, z, radius int) Window {
	minX := (x - radius) >> 2
	minZ := (z - radius) >> 2
	maxX := (x + radius) >> 2
	maxZ := (z + radius) >> 2
	return Window{X: minX, Z: minZ, Width: maxX - minX + 1, Depth: maxZ - minZ + 1}
}
