package generator

import (
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"runedelve/pkg/engine/world"
	"runedelve/pkg/logger"
)

func newTestCombinator(cells *world.CellGrid, seed int64) *TopologyCombinator {
	return NewTopologyCombinator(cells, rand.New(rand.NewSource(seed)), DefaultMergeBudgetFactor, logger.Discard())
}

func TestTopology_InitializeLabelsRegionsInRasterOrder(t *testing.T) {
	cells := world.ParseCellGrid(
		"#######",
		"#..#.##",
		"#..#.##",
		"#######",
		"#.....#",
		"#######",
	)
	topo := newTestCombinator(cells, 1).Initialize()

	if topo.MaxID() != 3 {
		t.Fatalf("MaxID() = %d, want 3", topo.MaxID())
	}
	checks := map[world.Position]int{
		world.Pos(1, 1): 1,
		world.Pos(2, 2): 1,
		world.Pos(4, 1): 2,
		world.Pos(4, 2): 2,
		world.Pos(3, 4): 3,
		world.Pos(0, 0): 0,
		world.Pos(3, 1): 0,
	}
	for p, want := range checks {
		if got := topo.At(p); got != want {
			t.Errorf("At(%v) = %d, want %d", p, got, want)
		}
	}
	if topo.Count(1) != 4 || topo.Count(2) != 2 || topo.Count(3) != 5 {
		t.Errorf("region sizes = %d, %d, %d, want 4, 2, 5", topo.Count(1), topo.Count(2), topo.Count(3))
	}
}

func TestTopology_MergesTwoRooms(t *testing.T) {
	cells := world.ParseCellGrid(
		"#########",
		"#...#...#",
		"#...#...#",
		"#...#...#",
		"#########",
	)
	comb := newTestCombinator(cells, 5)
	topo := comb.Initialize()

	edges := comb.Edges(1, 2)
	if len(edges) != 3 {
		t.Fatalf("Edges(1, 2) = %v, want the three cells of column 4", edges)
	}
	for _, e := range edges {
		if e.X != 4 {
			t.Errorf("edge %v not in the dividing column", e)
		}
	}

	report := comb.Combine()
	if report.Outcome != Connected || report.Merged != 1 || report.Regions != 2 {
		t.Errorf("report = %+v, want connected with one merge of two regions", report)
	}
	if topo.At(world.Pos(1, 1)) != topo.At(world.Pos(7, 3)) {
		t.Errorf("blocks have ids %d and %d after merge", topo.At(world.Pos(1, 1)), topo.At(world.Pos(7, 3)))
	}
	if ids := topo.IDs(); len(ids) != 1 || ids[0] != 1 {
		t.Errorf("IDs() = %v, want [1]", ids)
	}

	doors := 0
	for y := 1; y <= 3; y++ {
		p := world.Pos(4, y)
		if !cells.IsFloor(p) {
			continue
		}
		doors++
		if n := CountSurroundingTiles(cells, p, false); n != 2 {
			t.Errorf("doorway %v has %d floor neighbours, want 2", p, n)
		}
		if topo.At(p) != 1 {
			t.Errorf("doorway %v labelled %d, want 1", p, topo.At(p))
		}
	}
	if doors != 1 {
		t.Errorf("carved %d doorways, want 1", doors)
	}
	if len(report.Doors) != 1 || report.Doors[0].X != 4 {
		t.Errorf("report.Doors = %v, want one doorway in column 4", report.Doors)
	}
	if !IsConnected(cells) {
		t.Error("grid not connected after merge")
	}
}

func TestTopology_RetriesRegionsNotTouchingTheFirst(t *testing.T) {
	cells := world.ParseCellGrid(
		"###########",
		"#..#####..#",
		"###########",
		"#.........#",
		"###########",
	)
	comb := newTestCombinator(cells, 3)
	comb.Initialize()

	report := comb.Combine()
	if report.Outcome != Connected {
		t.Fatalf("Outcome = %v, want connected", report.Outcome)
	}
	if report.Merged != 2 {
		t.Errorf("Merged = %d, want 2", report.Merged)
	}
	// region 2 fails first, region 3 merges, then region 2 merges through it
	if report.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", report.Attempts)
	}
	if !IsConnected(cells) {
		t.Errorf("grid not connected:\n%s", cells)
	}
}

func TestTopology_BudgetExhausted(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	cells := world.ParseCellGrid(
		"#########",
		"#..###..#",
		"#..###..#",
		"#########",
	)
	comb := NewTopologyCombinator(cells, rand.New(rand.NewSource(1)), DefaultMergeBudgetFactor, log)
	comb.Initialize()
	before := cells.String()

	report := comb.Combine()
	if report.Outcome != BudgetExhausted {
		t.Fatalf("Outcome = %v, want budget-exhausted", report.Outcome)
	}
	if report.Attempts != 2*DefaultMergeBudgetFactor || report.Budget != 2*DefaultMergeBudgetFactor {
		t.Errorf("Attempts = %d Budget = %d, want %d", report.Attempts, report.Budget, 2*DefaultMergeBudgetFactor)
	}
	if len(report.Unmerged) != 1 || report.Unmerged[0] != 2 {
		t.Errorf("Unmerged = %v, want [2]", report.Unmerged)
	}
	if cells.String() != before {
		t.Error("grid changed although no doorway was possible")
	}
	if entry := hook.LastEntry(); entry == nil || entry.Level != logrus.WarnLevel {
		t.Errorf("expected a warning, got %v", entry)
	}
}

func TestTopology_NoFloor(t *testing.T) {
	cells := world.NewCellGrid(5, 5)
	report := newTestCombinator(cells, 1).Combine()
	if report.Outcome != Connected || report.Regions != 0 || report.Attempts != 0 {
		t.Errorf("report = %+v, want an empty connected report", report)
	}
}

func TestTopology_DoorwayNeedsExactlyTwoNeighbours(t *testing.T) {
	cells := world.ParseCellGrid(
		"#######",
		"#.#####",
		"#..#..#",
		"#.#####",
		"#######",
	)
	// (3,2) is the only edge and has exactly two floor neighbours
	comb := newTestCombinator(cells, 1)
	comb.Initialize()
	if !comb.CombineTopology(1, 2) {
		t.Fatal("CombineTopology(1, 2) = false, want true")
	}
	if !cells.IsFloor(world.Pos(3, 2)) {
		t.Error("doorway (3,2) not carved")
	}

	cells = world.ParseCellGrid(
		"#######",
		"###.###",
		"#..#..#",
		"#######",
	)
	// (3,2) touches region 1 (north), region 2 (west) and region 3 (east)
	comb = newTestCombinator(cells, 1)
	topo := comb.Initialize()
	if topo.MaxID() != 3 {
		t.Fatalf("MaxID() = %d, want 3", topo.MaxID())
	}
	if comb.CombineTopology(2, 3) {
		t.Error("CombineTopology(2, 3) through a three-neighbour cell = true, want false")
	}
	if cells.IsFloor(world.Pos(3, 2)) {
		t.Error("three-neighbour cell was carved")
	}
}
