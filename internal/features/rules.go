package features

import "github.com/samdwyer/dungeoncrawl/internal/world"

// neighborhood is the 3x3 block of tiles around a wall.
type neighborhood struct {
	side                 [sideCount]world.Tile
	northWest, northEast world.Tile
	southWest, southEast world.Tile
}

func readNeighborhood(m *world.TileMap, x, y int) neighborhood {
	var n neighborhood
	for _, s := range Sides {
		dx, dy := s.Offset()
		n.side[s] = m.GetTile(x+dx, y+dy)
	}
	n.northWest = m.GetTile(x-1, y+1)
	n.northEast = m.GetTile(x+1, y+1)
	n.southWest = m.GetTile(x-1, y-1)
	n.southEast = m.GetTile(x+1, y-1)
	return n
}

func (n neighborhood) open(s Side) bool {
	return openFloor(n.side[s])
}

// openFloor is true for tiles meshed as plain floor. Stairs and open doors
// have no geometry of their own.
func openFloor(t world.Tile) bool {
	return t.IsOpen() || t.IsStairs() || t == world.TileOpenDoor
}

func (n neighborhood) openCount() int {
	c := 0
	for _, s := range Sides {
		if n.open(s) {
			c++
		}
	}
	return c
}

// floorReachable is true for tiles whose floor a wall quadrant continues.
func floorReachable(t world.Tile) bool {
	return openFloor(t) || t == world.TileClosedDoor
}

// sideRule describes how an open neighbor on one side frames the wall.
type sideRule struct {
	side Side
	// across are the sides whose segments line an opening on side.
	across [2]Side
}

// sideRules are applied in order; later rules may clear segments set by earlier ones.
var sideRules = [sideCount]sideRule{
	{side: SideNorth, across: [2]Side{SideWest, SideEast}},
	{side: SideSouth, across: [2]Side{SideWest, SideEast}},
	{side: SideEast, across: [2]Side{SideNorth, SideSouth}},
	{side: SideWest, across: [2]Side{SideNorth, SideSouth}},
}

var diagonalRules = [...]struct {
	floor Flags
	tile  func(neighborhood) world.Tile
}{
	{NorthWestFloor, func(n neighborhood) world.Tile { return n.northWest }},
	{NorthEastFloor, func(n neighborhood) world.Tile { return n.northEast }},
	{SouthWestFloor, func(n neighborhood) world.Tile { return n.southWest }},
	{SouthEastFloor, func(n neighborhood) world.Tile { return n.southEast }},
}

// wallFeatures derives the features of a wall tile from its neighbors:
// diagonal quadrants, then each cardinal side, then the pillar fallback,
// then caps.
func wallFeatures(n neighborhood) Flags {
	var f Flags

	for _, d := range diagonalRules {
		if floorReachable(d.tile(n)) {
			f |= d.floor
		}
	}

	for _, r := range sideRules {
		t := n.side[r.side]
		switch {
		case openFloor(t):
			f |= r.side.Floor()
			for _, a := range r.across {
				f |= a.Wall()
			}
			for _, a := range r.across {
				if n.open(a) {
					f &^= a.Wall()
				}
			}
		case t == world.TileClosedDoor:
			// door jambs are always capped
			f |= r.side.Floor() | r.side.Wall() | r.side.Cap()
		case t == world.TileWall && f.Any(r.side.Floor()):
			f |= r.side.Wall()
		}
	}

	f |= pillarWalls(n)

	for _, s := range Sides {
		if f.Has(s.Wall()) && n.side[s] != world.TileWall {
			f |= s.Cap()
		}
	}
	return f
}

// pillarWalls keeps a wall stub visible when open floor surrounds it.
// With three open sides the segment points away from the remaining wall;
// with four, every segment is drawn.
func pillarWalls(n neighborhood) Flags {
	switch n.openCount() {
	case 4:
		return AllWalls
	case 3:
		for _, s := range Sides {
			if n.side[s] == world.TileWall {
				return s.Opposite().Wall()
			}
		}
	}
	return 0
}

// doorFeatures marks a door tile as full floor plus the passage direction.
func doorFeatures(n neighborhood) Flags {
	if n.side[SideNorth].IsPassable() && n.side[SideSouth].IsPassable() {
		return AllFloor | VertDoorway
	}
	return AllFloor | HorizDoorway
}
