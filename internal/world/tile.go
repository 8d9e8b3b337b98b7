// Package world provides dungeon generation and tile map management.
package world

// Tile represents a single map tile.
type Tile uint8

const (
	// TileUnused is empty space not yet claimed by any feature.
	TileUnused Tile = iota
	// TileFloor is the interior of a room.
	TileFloor
	// TileCorridor is the interior of a corridor.
	TileCorridor
	// TileWall borders every room and corridor.
	TileWall
	// TileClosedDoor joins a corridor to a room.
	TileClosedDoor
	// TileOpenDoor is an opened door.
	TileOpenDoor
	// TileUpStairs leads to the floor above.
	TileUpStairs
	// TileDownStairs leads to the floor below.
	TileDownStairs
	// TileVoid replaces TileUnused once generation is finished.
	TileVoid
	// TileOpen replaces TileFloor and TileCorridor once generation is finished.
	TileOpen
)

var tileRunes = [...]rune{
	TileUnused:     ' ',
	TileFloor:      '.',
	TileCorridor:   ',',
	TileWall:       '#',
	TileClosedDoor: '+',
	TileOpenDoor:   '-',
	TileUpStairs:   '<',
	TileDownStairs: '>',
	TileVoid:       '.',
	TileOpen:       ' ',
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	if int(t) < len(tileRunes) {
		return tileRunes[t]
	}
	return '?'
}

// IsVoid returns true for space that holds no geometry.
func (t Tile) IsVoid() bool {
	return t == TileUnused || t == TileVoid
}

// IsOpen returns true for walkable room and corridor space.
func (t Tile) IsOpen() bool {
	return t == TileOpen || t == TileFloor || t == TileCorridor
}

// IsDoor returns true for either door state.
func (t Tile) IsDoor() bool {
	return t == TileClosedDoor || t == TileOpenDoor
}

// IsStairs returns true for either stair symbol.
func (t Tile) IsStairs() bool {
	return t == TileUpStairs || t == TileDownStairs
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t.IsOpen() || t.IsDoor() || t.IsStairs()
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileUnused:
		return "unused"
	case TileFloor:
		return "floor"
	case TileCorridor:
		return "corridor"
	case TileWall:
		return "wall"
	case TileClosedDoor:
		return "closed door"
	case TileOpenDoor:
		return "open door"
	case TileUpStairs:
		return "up stairs"
	case TileDownStairs:
		return "down stairs"
	case TileVoid:
		return "void"
	case TileOpen:
		return "open"
	default:
		return "unknown"
	}
}
