package generator

import (
	"math/rand"
	"testing"

	"runedelve/pkg/engine/world"
)

// roomsTouch returns true if b overlaps a grown by one cell in every direction
func roomsTouch(a, b Room) bool {
	return b.X <= a.X+a.Width && b.X+b.Width >= a.X &&
		b.Y <= a.Y+a.Height && b.Y+b.Height >= a.Y
}

func TestRoomGenerator_PlacesIsolatedOddRooms(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		cells := world.NewCellGrid(41, 41)
		gen := NewRoomGenerator(cells, rand.New(rand.NewSource(seed)), DefaultRoomAttempts)
		report := gen.Generate()

		if len(report.Rooms) == 0 {
			t.Fatalf("seed %d: no rooms placed on a 41x41 grid", seed)
		}
		if !gen.Exhausted() {
			t.Errorf("seed %d: generator not exhausted after Generate", seed)
		}

		area := 0
		for i, room := range report.Rooms {
			if room.X%2 != 1 || room.Y%2 != 1 {
				t.Errorf("seed %d: room %d corner (%d,%d) is not odd", seed, i, room.X, room.Y)
			}
			short, long := room.Width, room.Height
			if short > long {
				short, long = long, short
			}
			if short < minRoomSize || short > maxRoomSize || long-short < minRoomRectangularity || long-short > maxRoomRectangularity {
				t.Errorf("seed %d: room %d has size %dx%d", seed, i, room.Width, room.Height)
			}
			area += room.Width * room.Height
			for j := i + 1; j < len(report.Rooms); j++ {
				if roomsTouch(room, report.Rooms[j]) {
					t.Errorf("seed %d: rooms %d %+v and %d %+v touch", seed, i, room, j, report.Rooms[j])
				}
			}
		}

		cells.ForEach(func(p world.Position, s world.CellState) {
			if s != world.Floor {
				return
			}
			inside := false
			for _, room := range report.Rooms {
				if room.Contains(p) {
					inside = true
					break
				}
			}
			if !inside {
				t.Errorf("seed %d: floor cell %v is outside every room", seed, p)
			}
			if cells.IsOnPerimeter(p) {
				t.Errorf("seed %d: room cell %v on the perimeter", seed, p)
			}
		})
		if got := cells.CountFloor(); got != area {
			t.Errorf("seed %d: floor cells = %d, want room area %d", seed, got, area)
		}
	}
}

func TestRoomGenerator_ZeroAttempts(t *testing.T) {
	cells := world.NewCellGrid(41, 41)
	gen := NewRoomGenerator(cells, rand.New(rand.NewSource(1)), 0)

	placement := gen.AddRoom()
	if placement.Outcome != Exhausted {
		t.Errorf("AddRoom().Outcome = %v, want exhausted", placement.Outcome)
	}
	report := gen.Generate()
	if len(report.Rooms) != 0 || report.Attempts != 0 {
		t.Errorf("report = %+v, want no rooms and no attempts", report)
	}
	if cells.CountFloor() != 0 {
		t.Error("grid was carved with a zero attempt budget")
	}
}

func TestRoomGenerator_TooSmallExhausts(t *testing.T) {
	cells := world.NewCellGrid(6, 6)
	gen := NewRoomGenerator(cells, rand.New(rand.NewSource(3)), 25)
	report := gen.Generate()

	if len(report.Rooms) != 0 {
		t.Errorf("placed %d rooms on a 6x6 grid, want 0", len(report.Rooms))
	}
	if report.Attempts != 25 {
		t.Errorf("Attempts = %d, want 25", report.Attempts)
	}
}

func TestRoomGenerator_StaysExhausted(t *testing.T) {
	cells := world.NewCellGrid(31, 31)
	gen := NewRoomGenerator(cells, rand.New(rand.NewSource(9)), 50)
	gen.Generate()
	before := cells.String()

	if p := gen.AddRoom(); p.Outcome != Exhausted {
		t.Errorf("AddRoom after exhaustion = %v, want exhausted", p.Outcome)
	}
	if cells.String() != before {
		t.Error("exhausted generator still carved cells")
	}
	if gen.Cells() != cells {
		t.Error("Cells() does not return the shared grid")
	}
}

func TestSnapOdd(t *testing.T) {
	for v, want := range map[int]int{0: 1, 1: 1, 2: 3, 3: 3, 10: 11} {
		if got := snapOdd(v); got != want {
			t.Errorf("snapOdd(%d) = %d, want %d", v, got, want)
		}
	}
}
