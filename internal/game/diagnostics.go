package game

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/minimap"
)

// Diagnostics file names, written to Config.DiagnosticsDir and replaced on every build.
const (
	MapFile     = "game_world.txt"
	ErrorFile   = "world-gen-error.txt"
	MinimapFile = "minimap.png"
)

// writeDiagnostics dumps the text map and the warning log, plus the minimap
// when enabled. An empty DiagnosticsDir disables it.
func (w *GameWorld) writeDiagnostics(ctx context.Context) error {
	dir := w.cfg.DiagnosticsDir
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create diagnostics dir: %w", err)
	}

	var errs []error
	if err := writeFile(dir, MapFile, []byte(w.tiles.String())); err != nil {
		errs = append(errs, err)
	}

	var log bytes.Buffer
	fmt.Fprintf(&log, "# run %s seed %d\n", w.runID, w.seed)
	for _, warn := range w.warnings {
		fmt.Fprintln(&log, warn)
	}
	if err := writeFile(dir, ErrorFile, log.Bytes()); err != nil {
		errs = append(errs, err)
	}

	if w.cfg.Minimap {
		if err := w.writeMinimap(ctx, dir); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (w *GameWorld) writeMinimap(ctx context.Context, dir string) error {
	p, err := gamedata.LoadPalette()
	if err != nil {
		return fmt.Errorf("load palette: %w", err)
	}
	var buf bytes.Buffer
	if err := minimap.Encode(ctx, &buf, w.tiles, p, w.cfg.MinimapScale); err != nil {
		return err
	}
	return writeFile(dir, MinimapFile, buf.Bytes())
}

func writeFile(dir, name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
