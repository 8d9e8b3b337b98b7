package world

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/rng"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

const (
	// DefaultMaxFeatures is the room and corridor budget of a standard floor.
	DefaultMaxFeatures = 60

	minRoomSize        = 3
	maxRoomSize        = 6
	minCorridorLength  = 3
	maxCorridorLength  = 6
	roomChance         = 50 // percent; corridors get the rest
	maxFeatureAttempts = 1000
)

// Generator builds a single dungeon floor on a TileMap.
// Each placement depends on every earlier one, so a Generator must not be shared between goroutines.
type Generator struct {
	m      *TileMap
	rng    rng.Source
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger that receives generation warnings.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// Result is the outcome of one generation run.
type Result struct {
	Map      *TileMap
	Features int     // rooms and corridors placed, including the first room
	Cells    int     // tiles holding geometry after Finalize
	Warnings []error // shortfalls that did not stop generation
}

// Complete returns true if every requested feature and both stairs were placed.
func (r *Result) Complete() bool {
	return len(r.Warnings) == 0
}

// NewGenerator creates a generator over a fresh, unused tile map.
func NewGenerator(width, height int, src rng.Source, opts ...Option) *Generator {
	g := &Generator{
		m:      NewTileMap(width, height),
		rng:    src,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Map returns the tile map being generated.
func (g *Generator) Map() *TileMap {
	return g.m
}

// GenerateRandomWorld places the first room at the world center, grows up to
// maxFeatures-1 more features from it, then drops one up and one down stair.
// Shortfalls are reported in Result.Warnings; the map is always returned.
func (g *Generator) GenerateRandomWorld(ctx context.Context, maxFeatures int) *Result {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	res := &Result{Map: g.m}

	firstDir := Direction(g.rng.Intn(int(DirectionCount)))
	if g.MakeRoom(g.m.width/2, g.m.height/2, firstDir, true) {
		res.Features = 1
	} else {
		res.Warnings = append(res.Warnings,
			fmt.Errorf("%w: unable to place the first room: %w", ErrGenerationIncomplete, ErrPlacementRejected))
	}

	for i := 1; i < maxFeatures; i++ {
		if !g.CreateFeature() {
			res.Warnings = append(res.Warnings,
				fmt.Errorf("%w: unable to place more features (placed %d)", ErrGenerationIncomplete, i))
			break
		}
		res.Features++
	}

	if !g.PlaceObject(TileUpStairs) {
		res.Warnings = append(res.Warnings, fmt.Errorf("%w: unable to place up stairs", ErrGenerationIncomplete))
	}
	if !g.PlaceObject(TileDownStairs) {
		res.Warnings = append(res.Warnings, fmt.Errorf("%w: unable to place down stairs", ErrGenerationIncomplete))
	}

	res.Cells = g.m.Finalize()

	for _, w := range res.Warnings {
		g.logger.Warn("dungeon generation shortfall", "err", w)
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", g.m.width),
		attribute.Int("dungeon.height", g.m.height),
		attribute.Int("dungeon.max_features", maxFeatures),
		attribute.Int("dungeon.features", res.Features),
		attribute.Int("dungeon.cells", res.Cells),
		attribute.Int("dungeon.warnings", len(res.Warnings)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return res
}

// CreateFeature picks random exits and tries to grow a feature from them,
// giving up after maxFeatureAttempts tries or when no exits remain.
// The exit used is removed on success.
func (g *Generator) CreateFeature() bool {
	for i := 0; i < maxFeatureAttempts; i++ {
		if len(g.m.exits) == 0 {
			break
		}

		r := g.rng.Intn(len(g.m.exits))
		exit := g.m.exits[r]
		x := g.rng.IntRange(exit.X, exit.X+exit.XSize-1)
		y := g.rng.IntRange(exit.Y, exit.Y+exit.YSize-1)

		for _, dir := range Directions {
			if g.CreateFeatureAt(x, y, dir) {
				g.m.exits = append(g.m.exits[:r], g.m.exits[r+1:]...)
				return true
			}
		}
	}
	return false
}

// CreateFeatureAt grows a room or corridor from (x, y) in dir. The tile one
// step back from dir must already be floor or corridor. On success (x, y)
// becomes a door, or plain corridor when two corridors are joined.
func (g *Generator) CreateFeatureAt(x, y int, dir Direction) bool {
	dx, dy := dir.Delta()
	source := g.m.GetTile(x+dx, y+dy)
	if source != TileFloor && source != TileCorridor {
		return false
	}

	if g.rng.Intn(100) < roomChance {
		if g.MakeRoom(x, y, dir, false) {
			g.m.SetTile(x, y, TileClosedDoor)
			return true
		}
		return false
	}

	if g.MakeCorridor(x, y, dir) {
		if source == TileFloor {
			g.m.SetTile(x, y, TileClosedDoor)
		} else {
			g.m.SetTile(x, y, TileCorridor)
		}
		return true
	}
	return false
}

// MakeRoom places a 3..6 by 3..6 room whose edge touches (x, y) and which
// grows away from it in dir. Exits are added on every side except the one
// the room was entered from; the first room exposes all four.
func (g *Generator) MakeRoom(x, y int, dir Direction, firstRoom bool) bool {
	room := Rect{
		XSize: g.rng.IntRange(minRoomSize, maxRoomSize),
		YSize: g.rng.IntRange(minRoomSize, maxRoomSize),
	}

	switch dir {
	case North:
		room.X = x - room.XSize/2
		room.Y = y - room.YSize
	case South:
		room.X = x - room.XSize/2
		room.Y = y + 1
	case West:
		room.X = x - room.XSize
		room.Y = y - room.YSize/2
	case East:
		room.X = x + 1
		room.Y = y - room.YSize/2
	}

	if !g.m.PlaceRect(room, TileFloor) {
		g.logger.Debug("room rejected", "rect", room, "dir", dir, "err", ErrPlacementRejected)
		return false
	}

	g.m.rooms = append(g.m.rooms, room)
	g.m.placed = append(g.m.placed, room)

	if dir != South || firstRoom {
		g.m.exits = append(g.m.exits, Rect{X: room.X, Y: room.Y - 1, XSize: room.XSize, YSize: 1})
	}
	if dir != North || firstRoom {
		g.m.exits = append(g.m.exits, Rect{X: room.X, Y: room.Y + room.YSize, XSize: room.XSize, YSize: 1})
	}
	if dir != East || firstRoom {
		g.m.exits = append(g.m.exits, Rect{X: room.X - 1, Y: room.Y, XSize: 1, YSize: room.YSize})
	}
	if dir != West || firstRoom {
		g.m.exits = append(g.m.exits, Rect{X: room.X + room.XSize, Y: room.Y, XSize: 1, YSize: room.YSize})
	}
	return true
}

// MakeCorridor places a one-wide corridor of length 3..6 touching (x, y).
// A corridor running across dir is shifted randomly along its length, which
// is what gives the layout its jogs. Exits are only added along the long axis.
func (g *Generator) MakeCorridor(x, y int, dir Direction) bool {
	corridor := Rect{X: x, Y: y}

	if g.rng.Bool(rng.DefaultProbability) {
		// horizontal
		corridor.XSize = g.rng.IntRange(minCorridorLength, maxCorridorLength)
		corridor.YSize = 1

		switch dir {
		case North:
			corridor.Y = y - 1
			if g.rng.Bool(rng.DefaultProbability) {
				corridor.X = x - corridor.XSize + 1
			}
		case South:
			corridor.Y = y + 1
			if g.rng.Bool(rng.DefaultProbability) {
				corridor.X = x - corridor.XSize + 1
			}
		case West:
			corridor.X = x - corridor.XSize
		case East:
			corridor.X = x + 1
		}
	} else {
		// vertical
		corridor.XSize = 1
		corridor.YSize = g.rng.IntRange(minCorridorLength, maxCorridorLength)

		switch dir {
		case North:
			corridor.Y = y - corridor.YSize
		case South:
			corridor.Y = y + 1
		case West:
			corridor.X = x - 1
			if g.rng.Bool(rng.DefaultProbability) {
				corridor.Y = y - corridor.YSize + 1
			}
		case East:
			corridor.X = x + 1
			if g.rng.Bool(rng.DefaultProbability) {
				corridor.Y = y - corridor.YSize + 1
			}
		}
	}

	if !g.m.PlaceRect(corridor, TileCorridor) {
		g.logger.Debug("corridor rejected", "rect", corridor, "dir", dir, "err", ErrPlacementRejected)
		return false
	}

	if dir != South && corridor.XSize != 1 {
		g.m.exits = append(g.m.exits, Rect{X: corridor.X, Y: corridor.Y - 1, XSize: corridor.XSize, YSize: 1})
	}
	if dir != North && corridor.XSize != 1 {
		g.m.exits = append(g.m.exits, Rect{X: corridor.X, Y: corridor.Y + corridor.YSize, XSize: corridor.XSize, YSize: 1})
	}
	if dir != East && corridor.YSize != 1 {
		g.m.exits = append(g.m.exits, Rect{X: corridor.X - 1, Y: corridor.Y, XSize: 1, YSize: corridor.YSize})
	}
	if dir != West && corridor.YSize != 1 {
		g.m.exits = append(g.m.exits, Rect{X: corridor.X + corridor.XSize, Y: corridor.Y, XSize: 1, YSize: corridor.YSize})
	}
	return true
}

// PlaceObject puts t on a random interior tile of a random remaining room.
// It makes a single attempt and fails if that tile is no longer plain floor.
// A room that receives an object is removed from the room list.
func (g *Generator) PlaceObject(t Tile) bool {
	if len(g.m.rooms) == 0 {
		return false
	}

	r := g.rng.Intn(len(g.m.rooms))
	room := g.m.rooms[r]
	x := g.rng.IntRange(room.X+1, room.X+room.XSize-2)
	y := g.rng.IntRange(room.Y+1, room.Y+room.YSize-2)

	if g.m.GetTile(x, y) != TileFloor {
		return false
	}

	g.m.SetTile(x, y, t)
	g.m.rooms = append(g.m.rooms[:r], g.m.rooms[r+1:]...)
	return true
}
