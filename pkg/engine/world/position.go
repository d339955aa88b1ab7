package world

import (
	"fmt"
	"math/rand"
)

// Position is an immutable (x, y) grid coordinate
type Position struct {
	X int
	Y int
}

// Pos is shorthand for Position{X: x, Y: y}
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Step returns the position one cell away in the given direction
func (p Position) Step(dir Direction) Position {
	dx, dy := dir.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Offset returns the position translated by (dx, dy)
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// diagonalOffsets lists NW, NE, SW, SE
var diagonalOffsets = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// Bounds is the size of a grid. It replaces any process-wide width/height
// and is passed explicitly to every helper that needs it.
type Bounds struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the bounds
func (b Bounds) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Area returns Width*Height
func (b Bounds) Area() int {
	return b.Width * b.Height
}

// Random returns a uniformly random position inside the bounds
func (b Bounds) Random(rng *rand.Rand) Position {
	return Position{X: rng.Intn(b.Width), Y: rng.Intn(b.Height)}
}

// Neighbours returns the in-bounds neighbours of p, cardinals first in
// N, S, W, E order, followed by the diagonals when requested.
func (b Bounds) Neighbours(p Position, diagonals bool) []Position {
	out := make([]Position, 0, 8)
	for _, dir := range CardinalDirections() {
		if n := p.Step(dir); b.Contains(n) {
			out = append(out, n)
		}
	}
	if diagonals {
		for _, off := range diagonalOffsets {
			if n := p.Offset(off[0], off[1]); b.Contains(n) {
				out = append(out, n)
			}
		}
	}
	return out
}
