package world

// CellGrid is a fixed-size W×H matrix of cell states used during generation.
// It is created all-Wall and never resized.
type CellGrid struct {
	bounds Bounds
	cells  []CellState
}

// NewCellGrid creates a grid with every cell set to Wall.
// Non-positive dimensions panic, as they can never describe a map.
func NewCellGrid(width, height int) *CellGrid {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g := &CellGrid{
		bounds: Bounds{Width: width, Height: height},
		cells:  make([]CellState, width*height),
	}
	for i := range g.cells {
		g.cells[i] = Wall
	}
	return g
}

// ParseCellGrid builds a grid from rows of '#' (wall) and '.' (floor).
// Any other rune is treated as wall. Rows shorter than the first are padded with wall.
func ParseCellGrid(rows ...string) *CellGrid {
	if len(rows) == 0 {
		panic("Grid dimensions must be positive")
	}
	width := len([]rune(rows[0]))
	g := NewCellGrid(width, len(rows))
	for y, row := range rows {
		for x, r := range []rune(row) {
			if x >= width {
				break
			}
			if r == '.' {
				g.Set(Pos(x, y), Floor)
			}
		}
	}
	return g
}

// Width returns the number of columns
func (g *CellGrid) Width() int {
	return g.bounds.Width
}

// Height returns the number of rows
func (g *CellGrid) Height() int {
	return g.bounds.Height
}

// Bounds returns the grid dimensions
func (g *CellGrid) Bounds() Bounds {
	return g.bounds
}

// InBounds checks if a position is within grid bounds
func (g *CellGrid) InBounds(p Position) bool {
	return g.bounds.Contains(p)
}

// IsOnPerimeter checks if a position is on the outermost ring of the grid
func (g *CellGrid) IsOnPerimeter(p Position) bool {
	return g.InBounds(p) && (p.X == 0 || p.Y == 0 || p.X == g.bounds.Width-1 || p.Y == g.bounds.Height-1)
}

// Get returns the state at p. The second value is false when p is out of bounds.
func (g *CellGrid) Get(p Position) (CellState, bool) {
	if !g.InBounds(p) {
		return Wall, false
	}
	return g.cells[p.Y*g.bounds.Width+p.X], true
}

// Set changes the state at p. Returns false if out of bounds.
func (g *CellGrid) Set(p Position, s CellState) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[p.Y*g.bounds.Width+p.X] = s
	return true
}

// Carve sets p to Floor. Returns false if out of bounds.
func (g *CellGrid) Carve(p Position) bool {
	return g.Set(p, Floor)
}

// IsWall reports whether p is in bounds and uncarved. Out-of-bounds is not a wall.
func (g *CellGrid) IsWall(p Position) bool {
	s, ok := g.Get(p)
	return ok && s == Wall
}

// IsFloor reports whether p is in bounds and carved
func (g *CellGrid) IsFloor(p Position) bool {
	s, ok := g.Get(p)
	return ok && s == Floor
}

// ForEach iterates over all cells in raster order (row by row)
func (g *CellGrid) ForEach(fn func(p Position, s CellState)) {
	for y := 0; y < g.bounds.Height; y++ {
		for x := 0; x < g.bounds.Width; x++ {
			fn(Position{X: x, Y: y}, g.cells[y*g.bounds.Width+x])
		}
	}
}

// CountFloor returns the number of carved cells
func (g *CellGrid) CountFloor() int {
	n := 0
	for _, s := range g.cells {
		if s == Floor {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid
func (g *CellGrid) Clone() *CellGrid {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)
	return &CellGrid{bounds: g.bounds, cells: cells}
}

// String renders the grid with '#' for walls and '.' for floors, one row per line
func (g *CellGrid) String() string {
	buf := make([]rune, 0, (g.bounds.Width+1)*g.bounds.Height)
	for y := 0; y < g.bounds.Height; y++ {
		for x := 0; x < g.bounds.Width; x++ {
			buf = append(buf, g.cells[y*g.bounds.Width+x].Symbol())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
