package generator

import (
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/stack"

	"runedelve/pkg/engine/world"
)

// DefaultMergeBudgetFactor multiplies the region count to bound merge attempts
const DefaultMergeBudgetFactor = 5

// accumulatorTopology is the region every other region is merged into
const accumulatorTopology = 1

// TopologyGrid labels each floor cell with the id of its connected region.
// 0 means unassigned and is only ever found on walls once labelling completes.
type TopologyGrid struct {
	bounds world.Bounds
	ids    []int
	maxID  int
}

func newTopologyGrid(b world.Bounds) *TopologyGrid {
	return &TopologyGrid{bounds: b, ids: make([]int, b.Area())}
}

// At returns the region id at p, or 0 if p is out of bounds
func (t *TopologyGrid) At(p world.Position) int {
	if !t.bounds.Contains(p) {
		return 0
	}
	return t.ids[p.Y*t.bounds.Width+p.X]
}

func (t *TopologyGrid) set(p world.Position, id int) {
	t.ids[p.Y*t.bounds.Width+p.X] = id
}

// MaxID returns the highest id handed out
func (t *TopologyGrid) MaxID() int {
	return t.maxID
}

// Count returns the number of cells labelled id
func (t *TopologyGrid) Count(id int) int {
	n := 0
	for _, v := range t.ids {
		if v == id {
			n++
		}
	}
	return n
}

// IDs returns the sorted ids still present on the grid
func (t *TopologyGrid) IDs() []int {
	seen := make(map[int]bool)
	for _, v := range t.ids {
		if v != 0 {
			seen[v] = true
		}
	}
	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// relabel rewrites every cell of from to to
func (t *TopologyGrid) relabel(from, to int) {
	for i, v := range t.ids {
		if v == from {
			t.ids[i] = to
		}
	}
}

// CombineOutcome is the end state of Combine
type CombineOutcome int

const (
	// Connected means every region was merged into one
	Connected CombineOutcome = iota
	// BudgetExhausted means some regions could not be merged in time
	BudgetExhausted
)

func (o CombineOutcome) String() string {
	if o == Connected {
		return "connected"
	}
	return "budget-exhausted"
}

// CombineReport summarises a Combine run
type CombineReport struct {
	Regions  int
	Merged   int
	Attempts int
	Budget   int
	Doors    []world.Position
	Unmerged []int
	Outcome  CombineOutcome
}

// TopologyCombinator merges disconnected floor regions by knocking out
// single wall cells that sit between two of them.
type TopologyCombinator struct {
	cells        *world.CellGrid
	rng          *rand.Rand
	log          logrus.FieldLogger
	budgetFactor int
	topology     *TopologyGrid
	doors        []world.Position
}

// NewTopologyCombinator creates a combinator over cells
func NewTopologyCombinator(cells *world.CellGrid, rng *rand.Rand, budgetFactor int, log logrus.FieldLogger) *TopologyCombinator {
	return &TopologyCombinator{
		cells:        cells,
		rng:          rng,
		log:          log,
		budgetFactor: budgetFactor,
	}
}

// Initialize labels every floor region with a fresh id, seeding flood fills in raster order
func (c *TopologyCombinator) Initialize() *TopologyGrid {
	c.topology = newTopologyGrid(c.cells.Bounds())
	c.cells.ForEach(func(p world.Position, s world.CellState) {
		if s != world.Floor || c.topology.At(p) != 0 {
			return
		}
		c.topology.maxID++
		c.floodFill(p, c.topology.maxID)
	})
	return c.topology
}

// floodFill labels the 4-connected floor region containing start
func (c *TopologyCombinator) floodFill(start world.Position, id int) {
	pending := stack.New[world.Position]()
	pending.Push(start)
	for pending.Size() > 0 {
		p := pending.Pop()
		if !c.cells.IsFloor(p) || c.topology.At(p) != 0 {
			continue
		}
		c.topology.set(p, id)
		for _, dir := range world.CardinalDirections() {
			pending.Push(p.Step(dir))
		}
	}
}

// Combine merges every region into region 1, retrying failed regions later
// until the queue empties or maxID*budgetFactor attempts have been made.
func (c *TopologyCombinator) Combine() CombineReport {
	if c.topology == nil {
		c.Initialize()
	}

	maxID := c.topology.MaxID()
	report := CombineReport{
		Regions: maxID,
		Budget:  maxID * c.budgetFactor,
	}

	queue := make([]int, 0, maxID)
	for id := accumulatorTopology + 1; id <= maxID; id++ {
		queue = append(queue, id)
	}

	for len(queue) > 0 && report.Attempts < report.Budget {
		id := queue[0]
		queue = queue[1:]
		report.Attempts++

		if c.CombineTopology(accumulatorTopology, id) {
			report.Merged++
			continue
		}
		queue = append(queue, id)
	}
	report.Doors = c.Doors()

	if len(queue) == 0 {
		report.Outcome = Connected
		return report
	}

	sort.Ints(queue)
	report.Unmerged = queue
	report.Outcome = BudgetExhausted
	c.log.WithFields(logrus.Fields{
		"regions":  report.Regions,
		"attempts": report.Attempts,
		"unmerged": len(queue),
	}).Warn("topology merge budget exhausted, map is not fully connected")
	return report
}

// CombineTopology opens one doorway between regions a and b and relabels b as a.
// Candidates are tried in random order; a doorway must have exactly two floor neighbours.
func (c *TopologyCombinator) CombineTopology(a, b int) bool {
	if c.topology == nil {
		c.Initialize()
	}
	if a == b {
		return true
	}

	edges := c.Edges(a, b)
	c.rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	for _, door := range edges {
		if CountSurroundingTiles(c.cells, door, false) != doorwayNeighbours {
			continue
		}
		c.cells.Carve(door)
		c.topology.relabel(b, a)
		c.topology.set(door, a)
		c.doors = append(c.doors, door)
		return true
	}
	return false
}

// Edges returns every wall cell with a cardinal neighbour in region a and one in region b
func (c *TopologyCombinator) Edges(a, b int) []world.Position {
	if c.topology == nil {
		c.Initialize()
	}

	var edges []world.Position
	c.cells.ForEach(func(p world.Position, s world.CellState) {
		if s != world.Wall {
			return
		}
		touchesA, touchesB := false, false
		for _, dir := range world.CardinalDirections() {
			switch c.topology.At(p.Step(dir)) {
			case a:
				touchesA = true
			case b:
				touchesB = true
			}
		}
		if touchesA && touchesB {
			edges = append(edges, p)
		}
	})
	return edges
}

// Doors returns the doorways carved so far, in carve order
func (c *TopologyCombinator) Doors() []world.Position {
	out := make([]world.Position, len(c.doors))
	copy(out, c.doors)
	return out
}

// Topology returns the current region grid, nil before Initialize
func (c *TopologyCombinator) Topology() *TopologyGrid {
	return c.topology
}
