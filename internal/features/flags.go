// Package features derives per-tile geometry features from a finished tile map.
package features

// Flags is the set of geometry features a tile needs.
type Flags uint16

const (
	NorthWestFloor Flags = 1 << iota
	NorthEastFloor
	SouthWestFloor
	SouthEastFloor
	NorthWall
	SouthWall
	EastWall
	WestWall
	NorthWallCap
	SouthWallCap
	EastWallCap
	WestWallCap
	VertDoorway
	HorizDoorway
)

const (
	// AllFloor covers the whole tile with floor.
	AllFloor = NorthWestFloor | NorthEastFloor | SouthWestFloor | SouthEastFloor
	// AllWalls is every wall segment.
	AllWalls = NorthWall | SouthWall | EastWall | WestWall
	// AllCaps is every wall cap.
	AllCaps = NorthWallCap | SouthWallCap | EastWallCap | WestWallCap
	// Doorway is either doorway marker.
	Doorway = VertDoorway | HorizDoorway
)

// Has returns true if every flag in f is set.
func (fl Flags) Has(f Flags) bool {
	return fl&f == f
}

// Any returns true if at least one flag in f is set.
func (fl Flags) Any(f Flags) bool {
	return fl&f != 0
}

// Side is one of the four cardinal sides of a tile. North is +z.
type Side int

const (
	SideNorth Side = iota
	SideSouth
	SideEast
	SideWest

	sideCount
)

// Sides lists the cardinal sides in the order geometry is emitted.
var Sides = [sideCount]Side{SideNorth, SideSouth, SideEast, SideWest}

// Offset returns the grid step toward the side.
func (s Side) Offset() (dx, dy int) {
	switch s {
	case SideNorth:
		return 0, 1
	case SideSouth:
		return 0, -1
	case SideEast:
		return 1, 0
	case SideWest:
		return -1, 0
	default:
		return 0, 0
	}
}

// Wall returns the wall segment flag running toward the side.
func (s Side) Wall() Flags {
	return NorthWall << Flags(s)
}

// Cap returns the wall cap flag closing the side.
func (s Side) Cap() Flags {
	return NorthWallCap << Flags(s)
}

// Floor returns the two floor quadrants bordering the side.
func (s Side) Floor() Flags {
	switch s {
	case SideNorth:
		return NorthWestFloor | NorthEastFloor
	case SideSouth:
		return SouthWestFloor | SouthEastFloor
	case SideEast:
		return NorthEastFloor | SouthEastFloor
	case SideWest:
		return NorthWestFloor | SouthWestFloor
	default:
		return 0
	}
}

// Opposite returns the side across the tile.
func (s Side) Opposite() Side {
	switch s {
	case SideNorth:
		return SideSouth
	case SideSouth:
		return SideNorth
	case SideEast:
		return SideWest
	default:
		return SideEast
	}
}

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideNorth:
		return "north"
	case SideSouth:
		return "south"
	case SideEast:
		return "east"
	case SideWest:
		return "west"
	default:
		return "unknown"
	}
}
