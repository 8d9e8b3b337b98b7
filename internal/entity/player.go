// Package entity provides the actors that move around a generated floor.
package entity

import "github.com/samdwyer/dungeoncrawl/internal/world"

// Grid is the tile lookup a player moves over.
type Grid interface {
	GetTile(x, y int) world.Tile
}

// Player is the single explorer shown by the preview.
type Player struct {
	X, Y   int  // Current tile position; y grows northward
	Symbol rune // Display symbol
}

// NewPlayer creates a player at the given tile.
func NewPlayer(x, y int) *Player {
	return &Player{
		X:      x,
		Y:      y,
		Symbol: '@',
	}
}

// SpawnAt places a player on the tile containing the world position (x, z),
// as returned by UpStairsLocation.
func SpawnAt(x, z float32) *Player {
	return NewPlayer(int(x), int(z))
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// TryMove moves by the given delta if the destination is passable and
// reports whether it did.
func (p *Player) TryMove(g Grid, dx, dy int) bool {
	if !g.GetTile(p.X+dx, p.Y+dy).IsPassable() {
		return false
	}
	p.Move(dx, dy)
	return true
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}
