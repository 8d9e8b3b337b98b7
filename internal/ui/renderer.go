package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Renderer handles drawing the tile map to the screen.
type Renderer struct {
	screen *Screen
	styles map[world.Tile]tcell.Style
	player tcell.Style
	status tcell.Style
}

// NewRenderer creates a new renderer for the given screen and palette.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	bg := gamedata.TCellColor(palette.Background)
	r := &Renderer{
		screen: screen,
		styles: make(map[world.Tile]tcell.Style),
		player: tcell.StyleDefault.
			Background(bg).
			Foreground(gamedata.TCellColor(palette.Player)).
			Bold(true),
		status: tcell.StyleDefault.
			Background(bg).
			Foreground(gamedata.TCellColor(palette.Status)),
	}
	for t := world.TileUnused; t <= world.TileOpen; t++ {
		r.styles[t] = tcell.StyleDefault.
			Background(bg).
			Foreground(gamedata.TCellColor(palette.Tile(t.String())))
	}
	return r
}

// Viewport returns the map column shown at the left edge and the map row
// shown at the top of a viewW x viewH view centered on (focusX, focusY).
// Rows are drawn highest first, so top is the largest visible y.
func Viewport(mapW, mapH, viewW, viewH, focusX, focusY int) (left, top int) {
	left = clamp(focusX-viewW/2, 0, max(mapW-viewW, 0))
	bottom := clamp(focusY-viewH/2, 0, max(mapH-viewH, 0))
	top = min(bottom+viewH, mapH) - 1
	return left, top
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Render draws the map, the player when non-nil, and a status line on the
// bottom row. Without a player the view is anchored at the map's top-left.
func (r *Renderer) Render(m *world.TileMap, player *entity.Player, status string) {
	r.screen.Clear()

	w, h := r.screen.Size()
	viewH := max(h-1, 0)

	focusX, focusY := 0, m.Height()-1
	if player != nil {
		focusX, focusY = player.X, player.Y
	}
	left, top := Viewport(m.Width(), m.Height(), w, viewH, focusX, focusY)
	if player == nil {
		left, top = 0, m.Height()-1
	}

	for row := 0; row < viewH; row++ {
		y := top - row
		if y < 0 {
			break
		}
		for col := 0; col < w; col++ {
			x := left + col
			if x >= m.Width() {
				break
			}
			tile := m.GetTile(x, y)
			r.screen.SetContent(col, row, tile.Rune(), r.getTileStyle(tile))
		}
	}

	if player != nil {
		r.screen.SetContent(player.X-left, top-player.Y, player.Symbol, r.player)
	}

	r.RenderMessage(status, h-1)
	r.screen.Show()
}

// getTileStyle returns the palette style for a tile type.
func (r *Renderer) getTileStyle(tile world.Tile) tcell.Style {
	if s, ok := r.styles[tile]; ok {
		return s
	}
	return tcell.StyleDefault
}

// RenderMessage displays a message on row y, truncated to the screen width.
func (r *Renderer) RenderMessage(msg string, y int) {
	w, _ := r.screen.Size()
	msg = runewidth.Truncate(msg, w, "…")
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, r.status)
		x += runewidth.RuneWidth(ch)
	}
}
