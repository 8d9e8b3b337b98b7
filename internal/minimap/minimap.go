// Package minimap renders a tile map as a small top-down PNG overview.
package minimap

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/image/draw"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// DefaultScale is the number of pixels per tile along each axis.
const DefaultScale = 4

// Render draws one pixel per tile and scales the result by scale.
// The highest row is drawn at the top of the image, matching TileMap.String.
func Render(ctx context.Context, m *world.TileMap, p *gamedata.Palette, scale int) *image.RGBA {
	tracer := telemetry.Tracer("minimap")
	_, span := tracer.Start(ctx, "minimap.render")
	defer span.End()

	if scale < 1 {
		scale = 1
	}
	span.SetAttributes(
		attribute.Int("map.width", m.Width()),
		attribute.Int("map.height", m.Height()),
		attribute.Int("minimap.scale", scale),
	)

	src := image.NewRGBA(image.Rect(0, 0, m.Width(), m.Height()))
	for y := 0; y < m.Height(); y++ {
		row := m.Height() - 1 - y
		for x := 0; x < m.Width(); x++ {
			src.SetRGBA(x, row, gamedata.RGBA(p.Tile(m.GetTile(x, y).String())))
		}
	}
	if scale == 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, m.Width()*scale, m.Height()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Encode renders the map and writes it to w as PNG.
func Encode(ctx context.Context, w io.Writer, m *world.TileMap, p *gamedata.Palette, scale int) error {
	img := Render(ctx, m, p, scale)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode minimap: %w", err)
	}
	return nil
}
