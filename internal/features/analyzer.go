package features

import (
	"context"
	"runtime"

	"github.com/lucasb-eyer/go-colorful"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// GridCell is the geometry record of one non-void tile.
type GridCell struct {
	X, Z     int // Grid position
	Tile     world.Tile
	Position [3]float32 // World position of the tile's low corner; y is the floor height
	TexCoord [2]float32 // Texture anchor
	Normal   [3]float32
	Color    [3]float32 // Flat tint
	Features Flags
}

// Options tunes Analyze.
type Options struct {
	// Tint is stored as every cell's color.
	Tint colorful.Color
	// Parallelism bounds the number of rows analyzed at once. Zero means GOMAXPROCS.
	Parallelism int
}

// Analyze builds one GridCell per non-void tile of a finished map, in
// row-major order. Rows are analyzed concurrently; the map must not change
// while Analyze runs.
func Analyze(ctx context.Context, m *world.TileMap, opts Options) ([]GridCell, error) {
	tracer := telemetry.Tracer("features")
	ctx, span := tracer.Start(ctx, "features.analyze")
	defer span.End()

	// Count first so the cell slice is allocated once.
	offsets := make([]int, m.Height()+1)
	for y := 0; y < m.Height(); y++ {
		n := 0
		for x := 0; x < m.Width(); x++ {
			if !m.GetTile(x, y).IsVoid() {
				n++
			}
		}
		offsets[y+1] = offsets[y] + n
	}
	cells := make([]GridCell, offsets[m.Height()])

	tint := [3]float32{float32(opts.Tint.R), float32(opts.Tint.G), float32(opts.Tint.B)}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit(opts.Parallelism))
	for y := 0; y < m.Height(); y++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			i := offsets[y]
			for x := 0; x < m.Width(); x++ {
				t := m.GetTile(x, y)
				if t.IsVoid() {
					continue
				}
				cells[i] = Cell(m, x, y)
				cells[i].Color = tint
				i++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("features.cells", len(cells)),
		attribute.Int("features.parallelism", limit(opts.Parallelism)),
	)
	return cells, nil
}

// Cell derives the geometry record of the tile at (x, y) with no tint.
func Cell(m *world.TileMap, x, y int) GridCell {
	t := m.GetTile(x, y)
	c := GridCell{
		X:        x,
		Z:        y,
		Tile:     t,
		Position: [3]float32{float32(x), 0, float32(y)},
		TexCoord: [2]float32{0, 1},
	}

	switch {
	case t == world.TileWall:
		c.Features = wallFeatures(readNeighborhood(m, x, y))
	case t == world.TileClosedDoor:
		c.Features = doorFeatures(readNeighborhood(m, x, y))
		c.Normal[1] = 1
	default:
		c.Features = AllFloor
		c.Normal[1] = 1
	}
	return c
}

func limit(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}
