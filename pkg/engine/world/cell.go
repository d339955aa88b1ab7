// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs shared by the map generator and
// whatever consumes its output.
package world

// CellState is the two-valued state of a generation cell
type CellState uint8

// Cell states. Wall is the uncarved value every grid starts with.
const (
	Wall  CellState = 1
	Floor CellState = 0
)

// String returns "wall" or "floor"
func (s CellState) String() string {
	if s == Floor {
		return "floor"
	}
	return "wall"
}

// Symbol returns the single-character symbol used in debug dumps
func (s CellState) Symbol() rune {
	if s == Floor {
		return '.'
	}
	return '#'
}
