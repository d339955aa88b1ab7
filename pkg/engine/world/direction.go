package world

// Direction represents a cardinal direction of travel
type Direction int

// Direction constants. None marks an isolated carve with no approach.
const (
	None Direction = iota
	North
	South
	West
	East
)

// CardinalDirections returns the four cardinal directions in scan order (N, S, W, E)
func CardinalDirections() []Direction {
	return []Direction{North, South, West, East}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case None:
		return "None"
	case North:
		return "North"
	case South:
		return "South"
	case West:
		return "West"
	case East:
		return "East"
	default:
		return "Unknown"
	}
}

// IsCardinal returns true if the direction is one of North, South, West or East
func (d Direction) IsCardinal() bool {
	return d >= North && d <= East
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the x and y offsets for this direction. Y grows southwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case West:
		return -1, 0
	case East:
		return 1, 0
	default:
		return 0, 0
	}
}
