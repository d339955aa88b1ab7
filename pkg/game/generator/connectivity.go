package generator

import (
	"github.com/zyedidia/generic/mapset"

	"runedelve/pkg/engine/world"
)

// Reachable collects the floor cells reachable from start via N/S/W/E
func Reachable(cells *world.CellGrid, start world.Position) mapset.Set[world.Position] {
	visited := mapset.New[world.Position]()
	if !cells.IsFloor(start) {
		return visited
	}

	queue := []world.Position{start}
	visited.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, dir := range world.CardinalDirections() {
			n := current.Step(dir)
			if cells.IsFloor(n) && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited
}

// CountRegions returns the number of 4-connected floor regions
func CountRegions(cells *world.CellGrid) int {
	seen := mapset.New[world.Position]()
	regions := 0
	cells.ForEach(func(p world.Position, s world.CellState) {
		if s != world.Floor || seen.Has(p) {
			return
		}
		regions++
		Reachable(cells, p).Each(func(q world.Position) {
			seen.Put(q)
		})
	})
	return regions
}

// IsConnected returns true if every floor cell reaches every other one
func IsConnected(cells *world.CellGrid) bool {
	return CountRegions(cells) <= 1
}
