package world

import (
	"math/rand"
)

// DefaultSpawnAttempts is how many random positions RandomWalkablePosition tries by default
const DefaultSpawnAttempts = 1000

// Map is a finished W×H grid of tiles
type Map struct {
	bounds Bounds
	tiles  []*Tile
}

// NewMap creates an empty map; every slot is nil until SetTile is called
func NewMap(width, height int) *Map {
	if width <= 0 || height <= 0 {
		panic("Map dimensions must be positive")
	}
	return &Map{
		bounds: Bounds{Width: width, Height: height},
		tiles:  make([]*Tile, width*height),
	}
}

// Width returns the number of columns
func (m *Map) Width() int {
	return m.bounds.Width
}

// Height returns the number of rows
func (m *Map) Height() int {
	return m.bounds.Height
}

// Bounds returns the map dimensions
func (m *Map) Bounds() Bounds {
	return m.bounds
}

// GetTile returns the tile at p, or nil if out of bounds
func (m *Map) GetTile(p Position) *Tile {
	if !m.bounds.Contains(p) {
		return nil
	}
	return m.tiles[p.Y*m.bounds.Width+p.X]
}

// SetTile replaces the tile at p. Returns false if out of bounds.
func (m *Map) SetTile(p Position, t *Tile) bool {
	if !m.bounds.Contains(p) {
		return false
	}
	m.tiles[p.Y*m.bounds.Width+p.X] = t
	return true
}

// ForEach iterates over all tiles in raster order
func (m *Map) ForEach(fn func(p Position, t *Tile)) {
	for y := 0; y < m.bounds.Height; y++ {
		for x := 0; x < m.bounds.Width; x++ {
			fn(Position{X: x, Y: y}, m.tiles[y*m.bounds.Width+x])
		}
	}
}

// IsWalkable returns true if p is in bounds, its tile is walkable and nothing stands on it
func (m *Map) IsWalkable(p Position) bool {
	t := m.GetTile(p)
	if t == nil {
		return false
	}
	return t.Walkable && !t.IsOccupied()
}

// CountWalkable returns the number of walkable tiles, ignoring occupants
func (m *Map) CountWalkable() int {
	n := 0
	for _, t := range m.tiles {
		if t != nil && t.Walkable {
			n++
		}
	}
	return n
}

// RandomWalkablePosition samples random positions until one is walkable.
// Returns false once attempts are used up.
func (m *Map) RandomWalkablePosition(rng *rand.Rand, attempts int) (Position, bool) {
	for i := 0; i < attempts; i++ {
		p := m.bounds.Random(rng)
		if m.IsWalkable(p) {
			return p, true
		}
	}
	return Position{}, false
}
