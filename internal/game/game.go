package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Hausk/eclipse/internal/telemetry"
	"github.com/Hausk/eclipse/internal/ui"
	"github.com/Hausk/eclipse/internal/world"
)

const (
	// nearbyRadius is how far the status bar looks for roaming entities.
	nearbyRadius = 8.0

	controlsHint = "Move: arrows/ZQSD/WASD  Act: 1 2 3  Quit: Esc"
)

// Game is the terminal front end: it reads input, drives the engine one frame
// at a time and renders the result.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *Engine
	move     world.Vec3
	running  bool
}

// New creates a new game instance on the real terminal.
func New(cfg Config, opts ...Option) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, cfg, opts...)
}

// NewWithScreen creates a game drawing to an existing screen.
func NewWithScreen(screen *ui.Screen, cfg Config, opts ...Option) (*Game, error) {
	engine, err := NewEngine(cfg, opts...)
	if err != nil {
		screen.Close()
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		engine:   engine,
		running:  true,
	}, nil
}

// Engine returns the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	initCtx, initSpan := tracer.Start(ctx, "game.init")
	g.engine.Init(initCtx)
	initSpan.SetAttributes(
		attribute.Int("entities.spawned", len(g.engine.Entities())),
		attribute.Float64("field.half_width", g.engine.Field().HalfWidth),
	)
	initSpan.End()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go g.screen.Forward(events, done)

	frame := time.Second / time.Duration(g.engine.Config().FrameRate)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	g.render()

	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case ev := <-events:
			g.handleEvent(ctx, ev)
		case now := <-ticker.C:
			g.engine.Tick(ctx, now.Sub(last), g.move)
			last = now
			// Terminals report key presses, not releases: one press is one step.
			g.move = world.Vec3{}
			g.render()
		}
	}

	g.screen.Close()
	return nil
}

func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
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
		g.push(0, -1)
	case tcell.KeyDown:
		g.push(0, 1)
	case tcell.KeyLeft:
		g.push(-1, 0)
	case tcell.KeyRight:
		g.push(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'z', 'Z', 'w', 'W':
			g.push(0, -1)
		case 's', 'S':
			g.push(0, 1)
		case 'q', 'Q', 'a', 'A':
			g.push(-1, 0)
		case 'd', 'D':
			g.push(1, 0)
		case '1':
			g.engine.SubmitPlayerAction(ctx, ActionAttack)
		case '2':
			g.engine.SubmitPlayerAction(ctx, ActionDefend)
		case '3':
			g.engine.SubmitPlayerAction(ctx, ActionFlee)
		}
	}
}

// push adds a direction on the X/Z plane to the pending move.
func (g *Game) push(dx, dz float64) {
	g.move = g.move.Add(world.Vec3{X: dx, Z: dz})
}

func (g *Game) render() {
	g.renderer.Render(g.frame())
}

// frame snapshots the engine for the renderer.
func (g *Game) frame() ui.Frame {
	e := g.engine
	f := ui.Frame{
		Field:        e.Field(),
		Player:       e.PlayerStats(),
		PlayerPos:    e.PlayerPosition(),
		PlayerSymbol: e.PlayerSymbol(),
		PlayerColor:  e.PlayerColor(),
		Entities:     e.Entities(),
		Nearby:       e.Nearby(nearbyRadius),
		Message:      controlsHint,
	}

	if s := e.Session(); s != nil {
		f.Combat = &ui.CombatView{
			Enemy:      s.Enemy().Stats,
			Player:     s.Player(),
			Log:        s.Log(),
			PlayerTurn: s.IsPlayerTurn(),
			Defending:  s.IsDefending(),
			Phase:      s.Phase().String(),
			Outcome:    s.Outcome().String(),
		}
	}
	return f
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
