package generator

import (
	"math/rand"

	"runedelve/pkg/engine/world"
)

// DefaultRoomAttempts is how many consecutive failed placements end room generation
const DefaultRoomAttempts = 500

// Room geometry limits
const (
	minRoomSize           = 4
	maxRoomSize           = 7
	minRoomRectangularity = 1
	maxRoomRectangularity = 3
)

// Outcome is the result of a bounded retry loop
type Outcome int

const (
	// Placed means the attempt succeeded within its budget
	Placed Outcome = iota
	// Exhausted means the budget ran out without success
	Exhausted
)

func (o Outcome) String() string {
	if o == Placed {
		return "placed"
	}
	return "exhausted"
}

// Room is an axis-aligned rectangle of carved cells
type Room struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether p lies inside the room
func (r Room) Contains(p world.Position) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Center returns the middle cell of the room
func (r Room) Center() world.Position {
	return world.Pos(r.X+r.Width/2, r.Y+r.Height/2)
}

// Placement is the result of AddRoom
type Placement struct {
	Outcome  Outcome
	Room     Room
	Attempts int
}

// RoomReport summarises a full Generate run
type RoomReport struct {
	Rooms    []Room
	Attempts int
}

// RoomGenerator stamps non-touching rectangular rooms into a grid until it
// fails maxAttempts times in a row. Rooms are never removed.
type RoomGenerator struct {
	cells       *world.CellGrid
	rng         *rand.Rand
	maxAttempts int

	rooms     []Room
	attempts  int
	exhausted bool
}

// NewRoomGenerator creates a room generator working on cells in place
func NewRoomGenerator(cells *world.CellGrid, rng *rand.Rand, maxAttempts int) *RoomGenerator {
	if maxAttempts < 0 {
		maxAttempts = 0
	}
	return &RoomGenerator{
		cells:       cells,
		rng:         rng,
		maxAttempts: maxAttempts,
	}
}

// Generate places rooms until a placement exhausts its attempts
func (r *RoomGenerator) Generate() RoomReport {
	for r.AddRoom().Outcome == Placed {
	}
	return RoomReport{Rooms: r.Rooms(), Attempts: r.attempts}
}

// AddRoom tries up to maxAttempts random rooms. Once one call is exhausted
// the generator stays exhausted.
func (r *RoomGenerator) AddRoom() Placement {
	if r.exhausted {
		return Placement{Outcome: Exhausted}
	}

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		r.attempts++
		if room, ok := r.GenerateRoom(); ok {
			return Placement{Outcome: Placed, Room: room, Attempts: attempt}
		}
	}

	r.exhausted = true
	return Placement{Outcome: Exhausted, Attempts: r.maxAttempts}
}

// GenerateRoom makes a single placement attempt with random geometry.
// The top-left corner is snapped to odd coordinates.
func (r *RoomGenerator) GenerateRoom() (Room, bool) {
	size := randRange(r.rng, minRoomSize, maxRoomSize)
	rectangularity := randRange(r.rng, minRoomRectangularity, maxRoomRectangularity)

	var width, height int
	if r.rng.Float64() > 0.5 {
		height = size
		width = size + rectangularity
	} else {
		width = size
		height = size + rectangularity
	}

	maxX := r.cells.Width() - width - 2
	maxY := r.cells.Height() - height - 2
	if maxX < 0 || maxY < 0 {
		return Room{}, false
	}

	x := snapOdd(randRange(r.rng, 0, maxX))
	y := snapOdd(randRange(r.rng, 0, maxY))
	room := Room{X: x, Y: y, Width: width, Height: height}

	if !r.isSpaceAvailable(room) {
		return Room{}, false
	}

	for i := room.X; i < room.X+room.Width; i++ {
		for j := room.Y; j < room.Y+room.Height; j++ {
			r.cells.Carve(world.Pos(i, j))
		}
	}
	r.rooms = append(r.rooms, room)
	return room, true
}

// isSpaceAvailable requires every cell of the rectangle to be carveable with no
// floor touching it, diagonals included
func (r *RoomGenerator) isSpaceAvailable(room Room) bool {
	for i := room.X; i < room.X+room.Width; i++ {
		for j := room.Y; j < room.Y+room.Height; j++ {
			if !CanCarve(r.cells, world.Pos(i, j), isolatedCarve, true) {
				return false
			}
		}
	}
	return true
}

// Exhausted returns true once room placement has stopped for good
func (r *RoomGenerator) Exhausted() bool {
	return r.exhausted
}

// Rooms returns a copy of the placed rooms
func (r *RoomGenerator) Rooms() []Room {
	out := make([]Room, len(r.rooms))
	copy(out, r.rooms)
	return out
}

// Cells returns the shared grid
func (r *RoomGenerator) Cells() *world.CellGrid {
	return r.cells
}

// snapOdd maps v to floor(v/2)*2 + 1
func snapOdd(v int) int {
	return v/2*2 + 1
}

// randRange returns a random int in [min, max]
func randRange(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}
