package generator

import (
	"math/rand"

	"runedelve/pkg/engine/world"
)

// Connection budgets passed to CanCarve
const (
	// isolatedCarve is used for room cells and maze seeds: no floor may touch the cell
	isolatedCarve = 0
	// corridorCarve lets a maze extend from exactly one existing corridor cell
	corridorCarve = 1
	// doorwayNeighbours is the exact number of floor neighbours a merge doorway must have
	doorwayNeighbours = 2
)

// diagonals lists NW, NE, SW, SE offsets
var diagonals = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// Carveable returns true if p is inside the grid and still a wall
func Carveable(grid *world.CellGrid, p world.Position) bool {
	return grid.IsWall(p)
}

// CountSurroundingTiles counts the in-bounds floor cells around p,
// cardinals only unless checkDiagonals is set.
func CountSurroundingTiles(grid *world.CellGrid, p world.Position, checkDiagonals bool) int {
	count := 0
	for _, dir := range world.CardinalDirections() {
		if grid.IsFloor(p.Step(dir)) {
			count++
		}
	}
	if checkDiagonals {
		for _, d := range diagonals {
			if grid.IsFloor(p.Offset(d[0], d[1])) {
				count++
			}
		}
	}
	return count
}

// CanCarve decides whether the wall at p may become floor.
// At most allowedConnections floor cells may already touch p. The approach
// direction is the direction of travel into p, away from the last cardinal
// floor neighbour found in N, S, W, E order.
func CanCarve(grid *world.CellGrid, p world.Position, allowedConnections int, checkDiagonals bool) bool {
	if !Carveable(grid, p) {
		return false
	}

	count := 0
	approach := world.None
	for _, dir := range world.CardinalDirections() {
		if grid.IsFloor(p.Step(dir)) {
			count++
			approach = dir.Opposite()
		}
	}
	if checkDiagonals {
		for _, d := range diagonals {
			if grid.IsFloor(p.Offset(d[0], d[1])) {
				count++
			}
		}
	}

	if count > allowedConnections {
		return false
	}
	return CanCarveFrom(grid, p, approach)
}

// CanCarveFrom checks the five cells ahead of travel are all walls, so a new
// corridor cell can never sit beside another corridor and open a 2-wide strip.
// With no approach direction all four cardinal neighbours must be walls.
// Out-of-bounds cells are not walls, which keeps the outer ring uncarved.
func CanCarveFrom(grid *world.CellGrid, p world.Position, approach world.Direction) bool {
	for _, q := range footprint(p, approach) {
		if !grid.IsWall(q) {
			return false
		}
	}
	return true
}

// footprint returns the cells that must stay wall for a carve at p travelling in dir
func footprint(p world.Position, dir world.Direction) []world.Position {
	if !dir.IsCardinal() {
		return []world.Position{
			p.Step(world.North),
			p.Step(world.South),
			p.Step(world.West),
			p.Step(world.East),
		}
	}

	// (px, py) is perpendicular to the direction of travel
	dx, dy := dir.Delta()
	px, py := dy, dx
	return []world.Position{
		p.Offset(-px, -py),
		p.Offset(dx-px, dy-py),
		p.Offset(dx, dy),
		p.Offset(dx+px, dy+py),
		p.Offset(px, py),
	}
}

// FindCarveableSpot returns an isolated wall cell suitable for seeding a new maze.
// Cells are tried in random order; false means no such cell exists anywhere.
func FindCarveableSpot(grid *world.CellGrid, rng *rand.Rand) (world.Position, bool) {
	width := grid.Width()
	for _, i := range rng.Perm(grid.Bounds().Area()) {
		p := world.Pos(i%width, i/width)
		if Carveable(grid, p) && CanCarve(grid, p, isolatedCarve, true) {
			return p, true
		}
	}
	return world.Position{}, false
}

// carveableNeighbours returns the cardinal neighbours of p that are still wall, shuffled
func carveableNeighbours(grid *world.CellGrid, p world.Position, rng *rand.Rand) []world.Position {
	out := make([]world.Position, 0, 4)
	for _, dir := range world.CardinalDirections() {
		if n := p.Step(dir); Carveable(grid, n) {
			out = append(out, n)
		}
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
