package generator

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/stack"

	"runedelve/pkg/engine/world"
)

// DefaultMazeIterations caps the number of Iterate calls of a single maze run
const DefaultMazeIterations = 50000

// Step is the result of one maze iteration
type Step int

const (
	// Carved means a cell was carved and the run continues
	Carved Step = iota
	// Finished means the stack emptied: the run is complete
	Finished
	// ForcedStop means the iteration ceiling was reached
	ForcedStop
)

func (s Step) String() string {
	switch s {
	case Carved:
		return "carved"
	case Finished:
		return "finished"
	case ForcedStop:
		return "forced-stop"
	default:
		return "unknown"
	}
}

// MazeReport summarises one maze run
type MazeReport struct {
	Seed   world.Position
	Carved int
	Final  Step
}

// MazeRecursiveBacktrackGenerator carves single-width corridors from a seed
// with a stack-based depth-first backtracker. One instance carves one run.
type MazeRecursiveBacktrackGenerator struct {
	cells         *world.CellGrid
	rng           *rand.Rand
	log           logrus.FieldLogger
	seed          world.Position
	stack         *stack.Stack[world.Position]
	maxIterations int
	iterations    int
	carved        int
	done          bool
}

// NewMazeGenerator carves seed and queues its neighbours
func NewMazeGenerator(cells *world.CellGrid, seed world.Position, rng *rand.Rand, maxIterations int, log logrus.FieldLogger) *MazeRecursiveBacktrackGenerator {
	m := &MazeRecursiveBacktrackGenerator{
		cells:         cells,
		rng:           rng,
		log:           log,
		seed:          seed,
		stack:         stack.New[world.Position](),
		maxIterations: maxIterations,
	}
	if cells.Carve(seed) {
		m.carved++
		m.push(seed)
	}
	return m
}

func (m *MazeRecursiveBacktrackGenerator) push(p world.Position) {
	for _, n := range carveableNeighbours(m.cells, p, m.rng) {
		m.stack.Push(n)
	}
}

// Iterate carves the next legal cell. Stale stack entries, invalidated by
// carving done since they were pushed, are discarded.
func (m *MazeRecursiveBacktrackGenerator) Iterate() (world.Position, Step) {
	if m.done {
		return world.Position{}, Finished
	}
	if m.iterations >= m.maxIterations {
		m.done = true
		m.log.WithFields(logrus.Fields{
			"seed":       m.seed.String(),
			"iterations": m.iterations,
			"carved":     m.carved,
		}).Warn("maze run hit its iteration ceiling, stopping")
		return world.Position{}, ForcedStop
	}
	m.iterations++

	for m.stack.Size() > 0 {
		p := m.stack.Pop()
		if !CanCarve(m.cells, p, corridorCarve, false) {
			continue
		}
		m.cells.Carve(p)
		m.carved++
		m.push(p)
		return p, Carved
	}

	m.done = true
	return world.Position{}, Finished
}

// Run drives Iterate until the run finishes or is stopped
func (m *MazeRecursiveBacktrackGenerator) Run() MazeReport {
	step := Carved
	for step == Carved {
		_, step = m.Iterate()
	}
	return MazeReport{Seed: m.seed, Carved: m.carved, Final: step}
}

// Carved returns the number of cells carved so far, seed included
func (m *MazeRecursiveBacktrackGenerator) Carved() int {
	return m.carved
}

// Cells returns the shared grid (not a copy)
func (m *MazeRecursiveBacktrackGenerator) Cells() *world.CellGrid {
	return m.cells
}
