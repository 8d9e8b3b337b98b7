package world

// Direction is the side of an exit a new feature grows toward.
type Direction int

const (
	North Direction = iota
	South
	West
	East

	// DirectionCount is the number of cardinal directions.
	DirectionCount
)

// Directions lists the order in which attachment is attempted.
var Directions = [DirectionCount]Direction{North, South, West, East}

// Delta returns the step from an attach point back to the feature it extends.
// A feature built North of its source grows toward lower y, so the source sits at y+1.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case West:
		return 1, 0
	case East:
		return -1, 0
	default:
		return 0, 0
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	default:
		return "unknown"
	}
}
