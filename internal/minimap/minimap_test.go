package minimap

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func testPalette(t *testing.T) *gamedata.Palette {
	t.Helper()
	p, err := gamedata.LoadPalette()
	if err != nil {
		t.Fatalf("LoadPalette: %v", err)
	}
	return p
}

func TestRenderOrientation(t *testing.T) {
	p := testPalette(t)
	m := world.NewTileMap(3, 2)
	m.SetTile(0, 0, world.TileWall)
	m.SetTile(2, 1, world.TileUpStairs)

	img := Render(context.Background(), m, p, 1)
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds = %v, want 3x2", b)
	}

	// Row y=0 is drawn at the bottom.
	if got, want := img.RGBAAt(0, 1), gamedata.RGBA(p.Tile("wall")); got != want {
		t.Errorf("wall pixel = %v, want %v", got, want)
	}
	if got, want := img.RGBAAt(2, 0), gamedata.RGBA(p.Tile("up stairs")); got != want {
		t.Errorf("stair pixel = %v, want %v", got, want)
	}
	if got, want := img.RGBAAt(1, 0), gamedata.RGBA(p.Tile("unused")); got != want {
		t.Errorf("unused pixel = %v, want %v", got, want)
	}
}

func TestRenderScale(t *testing.T) {
	p := testPalette(t)
	m := world.NewTileMap(4, 3)
	m.SetTile(1, 2, world.TileWall)

	img := Render(context.Background(), m, p, DefaultScale)
	if b := img.Bounds(); b.Dx() != 4*DefaultScale || b.Dy() != 3*DefaultScale {
		t.Fatalf("bounds = %v, want %dx%d", b, 4*DefaultScale, 3*DefaultScale)
	}

	want := gamedata.RGBA(p.Tile("wall"))
	for dy := 0; dy < DefaultScale; dy++ {
		for dx := 0; dx < DefaultScale; dx++ {
			if got := img.RGBAAt(DefaultScale+dx, dy); got != want {
				t.Fatalf("scaled pixel (%d,%d) = %v, want %v", DefaultScale+dx, dy, got, want)
			}
		}
	}

	if small := Render(context.Background(), m, p, 0); small.Bounds().Dx() != 4 {
		t.Errorf("scale 0 should clamp to 1, got width %d", small.Bounds().Dx())
	}
}

func TestEncode(t *testing.T) {
	p := testPalette(t)
	m := world.NewTileMap(8, 8)

	var buf bytes.Buffer
	if err := Encode(context.Background(), &buf, m, p, 2); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("decoded bounds = %v, want 16x16", b)
	}
}
