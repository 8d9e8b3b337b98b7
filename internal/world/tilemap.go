package world

import "strings"

const (
	// Default world dimensions
	DefaultWidth  = 96
	DefaultHeight = 96
)

// TileMap is a fixed-size grid of tiles plus the rooms and exits placed on it.
type TileMap struct {
	width  int
	height int
	tiles  []Tile
	rooms  []Rect
	placed []Rect
	exits  []Rect
}

// NewTileMap creates a tile map filled with unused space.
func NewTileMap(width, height int) *TileMap {
	return &TileMap{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
		rooms:  make([]Rect, 0),
		placed: make([]Rect, 0),
		exits:  make([]Rect, 0),
	}
}

// Width returns the number of columns.
func (m *TileMap) Width() int { return m.width }

// Height returns the number of rows.
func (m *TileMap) Height() int { return m.height }

// Rooms returns the rooms that have not yet received a stair.
func (m *TileMap) Rooms() []Rect { return m.rooms }

// PlacedRooms returns every room placed, in placement order.
func (m *TileMap) PlacedRooms() []Rect { return m.placed }

// Exits returns the edge strips still available for attachment.
func (m *TileMap) Exits() []Rect { return m.exits }

// InBounds returns true if the position is on the grid.
func (m *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// GetTile returns the tile at the given position, or TileVoid off the grid.
func (m *TileMap) GetTile(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileVoid
	}
	return m.tiles[x+y*m.width]
}

// SetTile writes a tile. The position must be in bounds.
func (m *TileMap) SetTile(x, y int, t Tile) {
	m.tiles[x+y*m.width] = t
}

// PlaceRect fills the rect with fill and rings it with walls.
// It writes nothing and returns false if the rect leaves the one-tile margin
// of the world or any interior tile is already in use.
func (m *TileMap) PlaceRect(r Rect, fill Tile) bool {
	if r.X < 1 || r.Y < 1 || r.X+r.XSize >= m.width-1 || r.Y+r.YSize >= m.height-1 {
		return false
	}

	for y := r.Y; y < r.Y+r.YSize; y++ {
		for x := r.X; x < r.X+r.XSize; x++ {
			if m.GetTile(x, y) != TileUnused {
				return false
			}
		}
	}

	for y := r.Y - 1; y <= r.Y+r.YSize; y++ {
		for x := r.X - 1; x <= r.X+r.XSize; x++ {
			if r.Contains(x, y) {
				m.SetTile(x, y, fill)
			} else {
				m.SetTile(x, y, TileWall)
			}
		}
	}
	return true
}

// Finalize turns unused space into void and rooms and corridors into open
// floor. It returns the number of tiles that hold geometry.
func (m *TileMap) Finalize() int {
	count := 0
	for i, t := range m.tiles {
		switch t {
		case TileUnused:
			m.tiles[i] = TileVoid
		case TileFloor, TileCorridor:
			m.tiles[i] = TileOpen
			count++
		case TileVoid:
		default:
			count++
		}
	}
	return count
}

// Count returns how many tiles hold the given symbol.
func (m *TileMap) Count(t Tile) int {
	n := 0
	for _, tile := range m.tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// UpStairsLocation scans rows from y = 0 for the first up stair.
// ok is false when no stair was placed.
func (m *TileMap) UpStairsLocation() (x, z float32, ok bool) {
	for y := 0; y < m.height; y++ {
		for col := 0; col < m.width; col++ {
			if m.GetTile(col, y) == TileUpStairs {
				return float32(col), float32(y), true
			}
		}
	}
	return 0, 0, false
}

// String renders the grid as text with the highest row first.
func (m *TileMap) String() string {
	var b strings.Builder
	b.Grow((m.width + 1) * m.height)
	for y := m.height - 1; y >= 0; y-- {
		for x := 0; x < m.width; x++ {
			b.WriteRune(m.GetTile(x, y).Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Snapshot returns a copy of the grid in row-major order.
func (m *TileMap) Snapshot() []Tile {
	out := make([]Tile, len(m.tiles))
	copy(out, m.tiles)
	return out
}
