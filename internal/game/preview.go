package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
)

// Preview is a terminal viewer for a built GameWorld.
type Preview struct {
	world    *GameWorld
	screen   *ui.Screen
	renderer *ui.Renderer
	player   *entity.Player
	state    State
	running  bool
	message  string
}

// NewPreview opens the terminal and prepares a viewer for w.
func NewPreview(w *GameWorld) (*Preview, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newPreview(w, screen)
}

func newPreview(w *GameWorld, screen *ui.Screen) (*Preview, error) {
	palette, err := gamedata.LoadPalette()
	if err != nil {
		screen.Close()
		return nil, fmt.Errorf("load palette: %w", err)
	}

	p := &Preview{
		world:    w,
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		state:    StateExplore,
		running:  true,
	}
	p.spawn(context.Background())
	return p, nil
}

// spawn places the player on the up stairs, or the map center when the
// floor has none.
func (p *Preview) spawn(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "preview.spawn")
	defer span.End()

	if x, z, ok := p.world.UpStairsLocation(); ok {
		p.player = entity.SpawnAt(x, z)
		span.SetAttributes(
			attribute.Int("player.start_x", p.player.X),
			attribute.Int("player.start_y", p.player.Y),
		)
	} else {
		w, h := p.world.WorldSize()
		p.player = entity.NewPlayer(w/2, h/2)
		span.SetAttributes(attribute.String("warning", "no up stairs, using fallback position"))
	}
}

// Run executes the preview loop until the user quits.
func (p *Preview) Run(ctx context.Context) error {
	defer p.screen.Close()

	for p.running {
		p.render()
		if err := p.handleInput(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (p *Preview) render() {
	player := p.player
	if p.state == StateOverview {
		player = nil
	}
	p.renderer.Render(p.world.TileMap(), player, p.statusLine())
}

func (p *Preview) statusLine() string {
	status := fmt.Sprintf("[%s] seed %d  pos %d,%d  verts %d",
		p.state, p.world.Seed(), p.player.X, p.player.Y, p.world.VertexCount())
	if n := len(p.world.Warnings()); n > 0 {
		status += fmt.Sprintf("  warnings %d", n)
	}
	if p.message != "" {
		status += "  " + p.message
	}
	return status + "  (arrows move, tab mode, r regenerate, q quit)"
}

// handleInput processes a single input event.
func (p *Preview) handleInput(ctx context.Context) error {
	ev := p.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return p.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		p.screen.Sync()
	case nil:
		// The screen was finalized.
		p.running = false
	}
	return nil
}

// handleKeyEvent processes keyboard input. North is up on screen.
func (p *Preview) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	p.message = ""

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		p.running = false

	case tcell.KeyUp:
		p.tryMove(0, 1)
	case tcell.KeyDown:
		p.tryMove(0, -1)
	case tcell.KeyLeft:
		p.tryMove(-1, 0)
	case tcell.KeyRight:
		p.tryMove(1, 0)

	case tcell.KeyTab:
		p.state = p.state.Next()

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			p.running = false
		case 'r', 'R':
			if err := p.world.Regenerate(ctx); err != nil {
				return err
			}
			p.spawn(ctx)
			p.message = "regenerated"
		}
	}
	return nil
}

// tryMove moves the player unless the destination is blocked.
func (p *Preview) tryMove(dx, dy int) {
	if p.state != StateExplore {
		return
	}
	if !p.player.TryMove(p.world.TileMap(), dx, dy) {
		p.message = "blocked"
	}
}
