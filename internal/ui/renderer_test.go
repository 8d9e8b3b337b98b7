package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func TestViewport(t *testing.T) {
	tests := []struct {
		name              string
		mapW, mapH        int
		viewW, viewH      int
		focusX, focusY    int
		wantLeft, wantTop int
	}{
		{"map fits", 10, 10, 20, 20, 5, 5, 0, 9},
		{"centered", 100, 100, 20, 10, 50, 50, 40, 54},
		{"clamped low", 100, 100, 20, 10, 2, 1, 0, 9},
		{"clamped high", 100, 100, 20, 10, 99, 99, 80, 99},
	}

	for _, tt := range tests {
		left, top := Viewport(tt.mapW, tt.mapH, tt.viewW, tt.viewH, tt.focusX, tt.focusY)
		if left != tt.wantLeft || top != tt.wantTop {
			t.Errorf("%s: Viewport = (%d,%d), want (%d,%d)", tt.name, left, top, tt.wantLeft, tt.wantTop)
		}
	}
}

func newTestRenderer(t *testing.T, w, h int) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(w, h)

	p, err := gamedata.LoadPalette()
	if err != nil {
		t.Fatalf("LoadPalette: %v", err)
	}
	return NewRenderer(NewScreenFrom(sim), p), sim
}

func runeAt(s tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestRenderDrawsNorthAtTop(t *testing.T) {
	r, sim := newTestRenderer(t, 10, 5)

	m := world.NewTileMap(3, 3)
	m.SetTile(0, 2, world.TileWall)
	m.SetTile(2, 0, world.TileClosedDoor)
	m.SetTile(1, 1, world.TileOpen)

	r.Render(m, entity.NewPlayer(1, 1), "hello")

	if got := runeAt(sim, 0, 0); got != '#' {
		t.Errorf("top-left = %q, want '#'", got)
	}
	if got := runeAt(sim, 2, 2); got != '+' {
		t.Errorf("bottom-right = %q, want '+'", got)
	}
	if got := runeAt(sim, 1, 1); got != '@' {
		t.Errorf("player cell = %q, want '@'", got)
	}
	if got := runeAt(sim, 0, 4); got != 'h' {
		t.Errorf("status line starts with %q, want 'h'", got)
	}
}

func TestRenderMessageTruncates(t *testing.T) {
	r, sim := newTestRenderer(t, 6, 2)

	r.RenderMessage("abcdefghij", 1)

	if got := runeAt(sim, 0, 1); got != 'a' {
		t.Errorf("first cell = %q, want 'a'", got)
	}
	if got := runeAt(sim, 5, 1); got != '…' {
		t.Errorf("last cell = %q, want ellipsis", got)
	}
}
