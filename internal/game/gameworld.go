package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/features"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/mesh"
	"github.com/samdwyer/dungeoncrawl/internal/rng"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Textures holds the ground and wall texture handles. They are passed
// through to the render backend unmodified.
type Textures struct {
	Ground any
	Wall   any
}

// GameWorld generates a dungeon floor and holds the mesh built from it.
type GameWorld struct {
	cfg      Config
	textures Textures
	tint     colorful.Color
	logger   *slog.Logger
	source   func(seed int64) rng.Source

	runID    uuid.UUID
	seed     int64
	tiles    *world.TileMap
	cells    []features.GridCell
	cellAt   []int32 // tile index -> cell index, -1 for void
	mesh     *mesh.Mesh
	warnings []error
}

// Option configures a GameWorld.
type Option func(*GameWorld)

// WithLogger sets the logger that receives generation warnings and
// diagnostics failures.
func WithLogger(l *slog.Logger) Option {
	return func(w *GameWorld) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithSource replaces the random source constructor.
func WithSource(fn func(seed int64) rng.Source) Option {
	return func(w *GameWorld) {
		if fn != nil {
			w.source = fn
		}
	}
}

// NewGameWorld validates cfg and returns an empty world. Call Init to build it.
func NewGameWorld(cfg Config, textures Textures, opts ...Option) (*GameWorld, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	tint, err := gamedata.ParseHexColor(cfg.Tint)
	if err != nil {
		return nil, fmt.Errorf("tint: %w", err)
	}

	w := &GameWorld{
		cfg:      cfg,
		textures: textures,
		tint:     tint,
		logger:   slog.New(slog.DiscardHandler),
		source:   func(seed int64) rng.Source { return rng.NewSeeded(seed) },
		mesh:     &mesh.Mesh{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Init generates the floor using the configured seed, or a time-based one
// when the seed is 0, then builds the mesh and writes diagnostics.
func (w *GameWorld) Init(ctx context.Context) error {
	seed := w.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return w.build(ctx, seed)
}

// Regenerate discards the current floor and builds a new one from a fresh seed.
func (w *GameWorld) Regenerate(ctx context.Context) error {
	return w.build(ctx, time.Now().UnixNano())
}

func (w *GameWorld) build(ctx context.Context, seed int64) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.build_world")
	defer span.End()

	runID := uuid.New()
	span.SetAttributes(
		attribute.String("world.run_id", runID.String()),
		attribute.Int64("world.seed", seed),
	)

	gen := world.NewGenerator(w.cfg.Width, w.cfg.Height, w.source(seed), world.WithLogger(w.logger))
	res := gen.GenerateRandomWorld(ctx, w.cfg.MaxFeatures)

	cells, err := features.Analyze(ctx, res.Map, features.Options{
		Tint:        w.tint,
		Parallelism: w.cfg.Parallelism,
	})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("analyze world: %w", err)
	}

	m, err := mesh.Synthesize(ctx, cells, mesh.Options{Parallelism: w.cfg.Parallelism})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("build mesh: %w", err)
	}

	w.runID = runID
	w.seed = seed
	w.tiles = res.Map
	w.cells = cells
	w.cellAt = indexCells(res.Map, cells)
	w.mesh = m
	w.warnings = res.Warnings

	span.SetAttributes(
		attribute.Int("world.features", res.Features),
		attribute.Int("world.cells", len(cells)),
		attribute.Int("world.vertices", m.VertexCount()),
		attribute.Bool("world.complete", res.Complete()),
	)
	w.logger.Info("world built",
		"run_id", runID.String(),
		"seed", seed,
		"features", res.Features,
		"vertices", m.VertexCount(),
		"warnings", len(res.Warnings),
	)

	if err := w.writeDiagnostics(ctx); err != nil {
		// Diagnostics are best effort; the world is still usable.
		w.logger.Warn("diagnostics not written", "err", err)
		span.RecordError(err)
	}
	return nil
}

func indexCells(m *world.TileMap, cells []features.GridCell) []int32 {
	idx := make([]int32, m.Width()*m.Height())
	for i := range idx {
		idx[i] = -1
	}
	for i, c := range cells {
		idx[c.Z*m.Width()+c.X] = int32(i)
	}
	return idx
}

// Vertices returns the mesh vertices.
func (w *GameWorld) Vertices() []mesh.Vertex { return w.mesh.Vertices }

// Indices returns the mesh indices.
func (w *GameWorld) Indices() []uint32 { return w.mesh.Indices }

// VertexCount returns the number of mesh vertices.
func (w *GameWorld) VertexCount() int { return w.mesh.VertexCount() }

// IndexCount returns the number of indices to draw.
func (w *GameWorld) IndexCount() int { return w.mesh.IndexCount() }

// VertexBytes returns the vertex buffer ready for upload.
func (w *GameWorld) VertexBytes() []byte { return w.mesh.VertexBytes() }

// IndexBytes returns the index buffer ready for upload.
func (w *GameWorld) IndexBytes() []byte { return w.mesh.IndexBytes() }

// VertexLayout describes VertexBytes to the render backend.
func (w *GameWorld) VertexLayout() []gputypes.VertexBufferLayout { return mesh.VertexLayout() }

// GroundTexture returns the ground texture handle given to NewGameWorld.
func (w *GameWorld) GroundTexture() any { return w.textures.Ground }

// WallTexture returns the wall texture handle given to NewGameWorld.
func (w *GameWorld) WallTexture() any { return w.textures.Wall }

// WorldSize returns the world dimensions in tiles.
func (w *GameWorld) WorldSize() (length, width int) { return w.cfg.Width, w.cfg.Height }

// UpStairsLocation returns the up stair position. ok is false before Init
// or when generation could not place the stair.
func (w *GameWorld) UpStairsLocation() (x, z float32, ok bool) {
	if w.tiles == nil {
		return 0, 0, false
	}
	return w.tiles.UpStairsLocation()
}

// TileNormal returns the surface normal stored for the tile at (x, z):
// (0,1,0) for floors and doors, the zero vector for walls, void and
// out-of-bounds tiles.
func (w *GameWorld) TileNormal(x, z int) [3]float32 {
	if w.tiles == nil || !w.tiles.InBounds(x, z) {
		return [3]float32{}
	}
	i := w.cellAt[z*w.tiles.Width()+x]
	if i < 0 {
		return [3]float32{}
	}
	return w.cells[i].Normal
}

// TileMap returns the finished tile map, or nil before Init.
func (w *GameWorld) TileMap() *world.TileMap { return w.tiles }

// Warnings returns the shortfalls reported by the last generation.
func (w *GameWorld) Warnings() []error { return w.warnings }

// Seed returns the seed of the last generation.
func (w *GameWorld) Seed() int64 { return w.seed }

// RunID identifies the last generation in logs, traces and diagnostics.
func (w *GameWorld) RunID() uuid.UUID { return w.runID }
