package entity

import (
	"testing"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func TestTryMove(t *testing.T) {
	m := world.NewTileMap(5, 5)
	m.SetTile(1, 1, world.TileUpStairs)
	m.SetTile(2, 1, world.TileOpen)
	m.SetTile(3, 1, world.TileClosedDoor)
	m.SetTile(4, 1, world.TileWall)
	m.SetTile(1, 2, world.TileVoid)

	p := SpawnAt(1, 1)
	if x, y := p.Position(); x != 1 || y != 1 {
		t.Fatalf("spawn = (%d,%d), want (1,1)", x, y)
	}

	tests := []struct {
		name   string
		dx, dy int
		moved  bool
		wantX  int
		wantY  int
	}{
		{"into void", 0, 1, false, 1, 1},
		{"onto open floor", 1, 0, true, 2, 1},
		{"through door", 1, 0, true, 3, 1},
		{"into wall", 1, 0, false, 3, 1},
		{"off map", 0, -5, false, 3, 1},
	}

	for _, tt := range tests {
		if got := p.TryMove(m, tt.dx, tt.dy); got != tt.moved {
			t.Errorf("%s: moved = %v, want %v", tt.name, got, tt.moved)
		}
		if p.X != tt.wantX || p.Y != tt.wantY {
			t.Errorf("%s: position = (%d,%d), want (%d,%d)", tt.name, p.X, p.Y, tt.wantX, tt.wantY)
		}
	}
}
