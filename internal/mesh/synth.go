package mesh

import (
	"context"
	"runtime"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/dungeoncrawl/internal/features"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

// Options tunes Synthesize.
type Options struct {
	// Parallelism bounds the number of cell batches built at once. Zero means GOMAXPROCS.
	Parallelism int
}

// Synthesize emits floor, wall and wall cap geometry for every cell, in cell
// order, into one mesh. Indices simply count the emitted vertices.
func Synthesize(ctx context.Context, cells []features.GridCell, opts Options) (*Mesh, error) {
	tracer := telemetry.Tracer("mesh")
	ctx, span := tracer.Start(ctx, "mesh.synthesize")
	defer span.End()

	workers := opts.Parallelism
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	perCell := make([][]Vertex, len(cells))
	batch := (len(cells) + workers - 1) / workers
	if batch == 0 {
		batch = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(cells); start += batch {
		end := min(start+batch, len(cells))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				perCell[i] = AppendCell(nil, cells[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	total := 0
	for _, vs := range perCell {
		total += len(vs)
	}

	m := &Mesh{
		Vertices: make([]Vertex, 0, total),
		Indices:  make([]uint32, total),
	}
	for _, vs := range perCell {
		m.Vertices = append(m.Vertices, vs...)
	}
	for i := range m.Indices {
		m.Indices[i] = uint32(i)
	}

	span.SetAttributes(
		attribute.Int("mesh.cells", len(cells)),
		attribute.Int("mesh.vertices", m.VertexCount()),
		attribute.Int("mesh.indices", m.IndexCount()),
	)
	return m, nil
}

// AppendCell appends all geometry of one cell: floor, then walls, then caps.
func AppendCell(dst []Vertex, c features.GridCell) []Vertex {
	dst = AppendFloor(dst, c)
	dst = AppendWalls(dst, c)
	dst = AppendWallCaps(dst, c)
	return dst
}

// AppendFloor appends one whole-tile quad when all four quadrants are set,
// otherwise one half-size quad per set quadrant.
func AppendFloor(dst []Vertex, c features.GridCell) []Vertex {
	if c.Features.Has(features.AllFloor) {
		return floorQuad(dst, c, 0, 0, 1)
	}
	for _, q := range quadrantOffsets {
		if c.Features.Has(q.flag) {
			dst = floorQuad(dst, c, q.x, q.z, 0.5)
		}
	}
	return dst
}

func floorQuad(dst []Vertex, c features.GridCell, xo, zo, size float32) []Vertex {
	up := [3]float32{0, 1, 0}
	at := func(dx, dz float32) Vertex {
		return cellVertex(c, dx, 0, dz, c.TexCoord[0]+dx, c.TexCoord[1]-dz, up)
	}
	return quad(dst,
		at(xo, zo),
		at(xo, zo+size),
		at(xo+size, zo+size),
		at(xo+size, zo),
	)
}

// AppendWalls appends, per wall segment, a top cap at full wall height and
// three stacked panels, each with a front and a back face.
func AppendWalls(dst []Vertex, c features.GridCell) []Vertex {
	for _, s := range features.Sides {
		if !c.Features.Has(s.Wall()) {
			continue
		}
		w := wallSpecs[s].shape(s, c.Features)

		top := func(dx, dz float32) Vertex {
			return cellVertex(c, dx, wallHeight, dz, c.TexCoord[0]+dx, c.TexCoord[1]-dz, [3]float32{0, 1, 0})
		}
		dst = quad(dst,
			top(w.offsetX+w.widthX, w.offsetZ),
			top(w.offsetX+w.widthX, w.offsetZ+w.widthZ),
			top(w.offsetX, w.offsetZ+w.widthZ),
			top(w.offsetX, w.offsetZ),
		)

		front := [3]float32{w.frontNormal[0], c.Normal[1], w.frontNormal[1]}
		back := [3]float32{w.backNormal[0], c.Normal[1], w.backNormal[1]}
		for j := 0; j < wallHeight; j++ {
			dst = panel(dst, c, float32(j),
				w.offsetX+w.frontX, w.offsetZ,
				w.offsetX, w.offsetZ+w.frontZ,
				front)
			dst = panel(dst, c, float32(j),
				w.offsetX+w.backX, w.offsetZ+w.backZ,
				w.offsetX+w.backEndX, w.offsetZ+w.backEndZ,
				back)
		}
	}
	return dst
}

// AppendWallCaps appends three stacked panels closing each capped wall end.
func AppendWallCaps(dst []Vertex, c features.GridCell) []Vertex {
	for _, s := range features.Sides {
		if !c.Features.Has(s.Cap()) {
			continue
		}
		cp := capShapes[s]
		normal := [3]float32{cp.normal[0], c.Normal[1], cp.normal[1]}
		for j := 0; j < wallHeight; j++ {
			dst = panel(dst, c, float32(j),
				cp.offsetX, cp.offsetZ,
				cp.offsetX+cp.widthX, cp.offsetZ+cp.widthZ,
				normal)
		}
	}
	return dst
}

// panel appends a one-unit-tall vertical quad from (x0, z0) to (x1, z1)
// starting at height y, with the texture stretched once across it.
func panel(dst []Vertex, c features.GridCell, y, x0, z0, x1, z1 float32, normal [3]float32) []Vertex {
	tu, tv := c.TexCoord[0], c.TexCoord[1]
	return quad(dst,
		cellVertex(c, x0, y, z0, tu, tv, normal),
		cellVertex(c, x0, y+1, z0, tu, tv-1, normal),
		cellVertex(c, x1, y+1, z1, tu+1, tv-1, normal),
		cellVertex(c, x1, y, z1, tu+1, tv, normal),
	)
}

// cellVertex places a vertex relative to the cell's low corner, tinted with the cell color.
func cellVertex(c features.GridCell, dx, dy, dz, u, v float32, normal [3]float32) Vertex {
	return Vertex{
		Position: [3]float32{c.Position[0] + dx, c.Position[1] + dy, c.Position[2] + dz},
		TexCoord: [2]float32{u, v},
		Normal:   normal,
		Color:    [4]float32{c.Color[0], c.Color[1], c.Color[2], 1},
	}
}
