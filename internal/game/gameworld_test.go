package game

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samdwyer/dungeoncrawl/internal/mesh"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 12345
	cfg.DiagnosticsDir = t.TempDir()
	return cfg
}

func newTestWorld(t *testing.T, cfg Config) *GameWorld {
	t.Helper()
	w, err := NewGameWorld(cfg, Textures{Ground: "ground", Wall: 7})
	if err != nil {
		t.Fatalf("NewGameWorld: %v", err)
	}
	if err := w.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return w
}

func TestGameWorldInit(t *testing.T) {
	w := newTestWorld(t, testConfig(t))

	if w.VertexCount() == 0 {
		t.Fatal("expected a non-empty mesh")
	}
	if w.IndexCount() != w.VertexCount() {
		t.Errorf("IndexCount = %d, want %d", w.IndexCount(), w.VertexCount())
	}
	for i, idx := range w.Indices() {
		if idx != uint32(i) {
			t.Fatalf("index %d = %d, want %d", i, idx, i)
		}
	}
	if len(w.Vertices()) != w.VertexCount() {
		t.Errorf("Vertices length = %d, want %d", len(w.Vertices()), w.VertexCount())
	}
	if got, want := len(w.VertexBytes()), w.VertexCount()*mesh.VertexStride; got != want {
		t.Errorf("VertexBytes length = %d, want %d", got, want)
	}
	if got, want := len(w.IndexBytes()), w.IndexCount()*4; got != want {
		t.Errorf("IndexBytes length = %d, want %d", got, want)
	}
	if len(w.VertexLayout()) != 1 {
		t.Errorf("expected one vertex buffer layout, got %d", len(w.VertexLayout()))
	}

	if w.GroundTexture() != "ground" || w.WallTexture() != 7 {
		t.Errorf("textures not forwarded unmodified: %v %v", w.GroundTexture(), w.WallTexture())
	}
	if l, wd := w.WorldSize(); l != world.DefaultWidth || wd != world.DefaultHeight {
		t.Errorf("WorldSize = %dx%d, want %dx%d", l, wd, world.DefaultWidth, world.DefaultHeight)
	}
	if w.Seed() != 12345 {
		t.Errorf("Seed = %d, want 12345", w.Seed())
	}
}

func TestGameWorldReproducible(t *testing.T) {
	a := newTestWorld(t, testConfig(t))
	b := newTestWorld(t, testConfig(t))

	if a.TileMap().String() != b.TileMap().String() {
		t.Fatal("same seed produced different maps")
	}
	if a.VertexCount() != b.VertexCount() {
		t.Fatalf("same seed produced %d and %d vertices", a.VertexCount(), b.VertexCount())
	}
	for i := range a.Vertices() {
		if a.Vertices()[i] != b.Vertices()[i] {
			t.Fatalf("vertex %d differs", i)
		}
	}
	if a.RunID() == b.RunID() {
		t.Error("each build should get its own run id")
	}
}

func TestGameWorldParallelMatchesSequential(t *testing.T) {
	seq := testConfig(t)
	seq.Parallelism = 1
	par := testConfig(t)
	par.Parallelism = 8

	a := newTestWorld(t, seq)
	b := newTestWorld(t, par)

	if string(a.VertexBytes()) != string(b.VertexBytes()) {
		t.Fatal("parallel mesh differs from sequential mesh")
	}
}

func TestUpStairsLocation(t *testing.T) {
	w, err := NewGameWorld(testConfig(t), Textures{})
	if err != nil {
		t.Fatalf("NewGameWorld: %v", err)
	}
	if _, _, ok := w.UpStairsLocation(); ok {
		t.Error("UpStairsLocation should report !ok before Init")
	}

	if err := w.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	x, z, ok := w.UpStairsLocation()
	if !ok {
		t.Skip("generation placed no up stairs for this seed")
	}
	if got := w.TileMap().GetTile(int(x), int(z)); got != world.TileUpStairs {
		t.Errorf("tile at up stairs location = %v", got)
	}
}

func TestTileNormal(t *testing.T) {
	w := newTestWorld(t, testConfig(t))
	m := w.TileMap()

	up := [3]float32{0, 1, 0}
	var zero [3]float32

	var sawOpen, sawWall, sawVoid bool
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			got := w.TileNormal(x, y)
			switch tile := m.GetTile(x, y); {
			case tile == world.TileWall:
				sawWall = true
				if got != zero {
					t.Fatalf("wall normal at (%d,%d) = %v", x, y, got)
				}
			case tile.IsVoid():
				sawVoid = true
				if got != zero {
					t.Fatalf("void normal at (%d,%d) = %v", x, y, got)
				}
			default:
				sawOpen = true
				if got != up {
					t.Fatalf("%v normal at (%d,%d) = %v", tile, x, y, got)
				}
			}
		}
	}
	if !sawOpen || !sawWall || !sawVoid {
		t.Errorf("expected open, wall and void tiles; got %v %v %v", sawOpen, sawWall, sawVoid)
	}

	if got := w.TileNormal(-1, 0); got != zero {
		t.Errorf("out-of-bounds normal = %v", got)
	}
}

func TestTintFlowsToVertices(t *testing.T) {
	cfg := testConfig(t)
	cfg.Tint = "#FF0000"
	w := newTestWorld(t, cfg)

	for i, v := range w.Vertices() {
		if v.Color != [4]float32{1, 0, 0, 1} {
			t.Fatalf("vertex %d color = %v", i, v.Color)
		}
	}
}

func TestRegenerate(t *testing.T) {
	w := newTestWorld(t, testConfig(t))
	first := w.RunID()

	if err := w.Regenerate(context.Background()); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	if w.RunID() == first {
		t.Error("Regenerate should start a new run")
	}
	if w.VertexCount() == 0 {
		t.Error("Regenerate produced an empty mesh")
	}
	if len(w.cells) == 0 || len(w.cellAt) != w.TileMap().Width()*w.TileMap().Height() {
		t.Error("cell index not rebuilt")
	}
}

func TestInitCanceled(t *testing.T) {
	w, err := NewGameWorld(testConfig(t), Textures{})
	if err != nil {
		t.Fatalf("NewGameWorld: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := w.Init(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Init error = %v, want context.Canceled", err)
	}
	if w.TileMap() != nil {
		t.Error("canceled Init should not publish a map")
	}
}

func TestDiagnosticsFiles(t *testing.T) {
	cfg := testConfig(t)
	cfg.Minimap = true
	cfg.MinimapScale = 2
	w := newTestWorld(t, cfg)

	text, err := os.ReadFile(filepath.Join(cfg.DiagnosticsDir, MapFile))
	if err != nil {
		t.Fatalf("read %s: %v", MapFile, err)
	}
	if string(text) != w.TileMap().String() {
		t.Error("map file does not match the tile map")
	}

	log, err := os.ReadFile(filepath.Join(cfg.DiagnosticsDir, ErrorFile))
	if err != nil {
		t.Fatalf("read %s: %v", ErrorFile, err)
	}
	lines := strings.Split(strings.TrimSpace(string(log)), "\n")
	if !strings.Contains(lines[0], w.RunID().String()) {
		t.Errorf("error log header = %q, want run id", lines[0])
	}
	if got, want := len(lines)-1, len(w.Warnings()); got != want {
		t.Errorf("error log has %d warnings, want %d", got, want)
	}

	if _, err := os.Stat(filepath.Join(cfg.DiagnosticsDir, MinimapFile)); err != nil {
		t.Errorf("minimap not written: %v", err)
	}
}

func TestDiagnosticsDisabled(t *testing.T) {
	cfg := testConfig(t)
	dir := cfg.DiagnosticsDir
	cfg.DiagnosticsDir = ""
	newTestWorld(t, cfg)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no diagnostics files, found %d", len(entries))
	}
}

func TestDiagnosticsFailureDoesNotFailInit(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(cfg.DiagnosticsDir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.DiagnosticsDir = filepath.Join(blocker, "sub")

	w := newTestWorld(t, cfg)
	if w.VertexCount() == 0 {
		t.Error("world should still be built")
	}
}

func TestNewGameWorldRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tint = "red"
	if _, err := NewGameWorld(cfg, Textures{}); err == nil {
		t.Error("expected error for bad tint")
	}
}
