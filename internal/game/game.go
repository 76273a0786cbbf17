package game

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonsight/internal/logging"
	"github.com/samdwyer/dungeonsight/internal/telemetry"
	"github.com/samdwyer/dungeonsight/internal/ui"
	"github.com/samdwyer/dungeonsight/internal/world"
)

// Game holds the entire game state.
type Game struct {
	cfg       Config
	screen    *ui.Screen
	renderer  *ui.Renderer
	generator *world.Generator
	session   *Session
	state     State
	dungeons  int
	running   bool
	logger    *log.Logger
}

// New creates a new game instance drawing to screen.
func New(cfg Config, screen *ui.Screen, logger *log.Logger) *Game {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		generator: world.NewGenerator(world.NewRandom(cfg.Seed),
			world.WithParams(cfg.Params),
			world.WithLogger(logger),
		),
		state:   StateExplore,
		running: true,
		logger:  logger,
	}
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	err := g.newDungeon(ctx)
	initSpan.End()
	if err != nil {
		g.screen.Close()
		return err
	}

	for g.running {
		g.renderer.Render(g.view())
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// newDungeon replaces the current dungeon and session.
func (g *Game) newDungeon(ctx context.Context) error {
	res := g.generator.Generate(ctx, g.cfg.Width, g.cfg.Height)
	session, err := NewSession(ctx, res, g.cfg.FOVRadius, g.logger)
	if err != nil {
		return err
	}

	g.session = session
	g.dungeons++

	x, y := session.Party().Position()
	g.logger.Info("entered dungeon",
		"number", g.dungeons,
		"rooms", len(res.Rooms),
		"x", x,
		"y", y,
	)
	return nil
}

// view describes the current frame.
func (g *Game) view() ui.View {
	s := g.session
	x, y := s.Party().Position()
	status := fmt.Sprintf("#%d %s (%d,%d) seen %d moves %d  [arrows] move [m]ap [n]ew [q]uit",
		g.dungeons, g.state, x, y, s.Explored().Len(), s.Moves())

	return ui.View{
		Dungeon:   s.Dungeon(),
		Party:     s.Party(),
		Visible:   s.Visible(),
		Explored:  s.Explored(),
		RevealAll: g.state == StateMap,
		Status:    status,
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case nil:
		// Screen finalized.
		g.running = false
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(ctx, 0, -1)
	case tcell.KeyDown:
		g.tryMove(ctx, 0, 1)
	case tcell.KeyLeft:
		g.tryMove(ctx, -1, 0)
	case tcell.KeyRight:
		g.tryMove(ctx, 1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'm', 'M':
			g.state = g.state.Toggle()
		case 'n', 'N':
			if err := g.newDungeon(ctx); err != nil {
				g.logger.Error("could not generate dungeon", "error", err)
				g.running = false
			}
		}
	}
}

// tryMove attempts to move the party by the given delta.
func (g *Game) tryMove(ctx context.Context, dx, dy int) {
	_, span := telemetry.Tracer("game").Start(ctx, "party.move")
	defer span.End()

	moved := g.session.TryMove(ctx, dx, dy)
	span.SetAttributes(
		attribute.Int("move.dx", dx),
		attribute.Int("move.dy", dy),
		attribute.Bool("move.ok", moved),
	)
}
