package game

import (
	"context"
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/Hausk/eclipse/internal/gamedata"
	"github.com/Hausk/eclipse/internal/ui"
	"github.com/Hausk/eclipse/internal/world"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	screen, err := ui.NewScreenFrom(tcell.NewSimulationScreen(""))
	if err != nil {
		t.Fatalf("NewScreenFrom() error = %v", err)
	}
	cfg := DefaultConfig()
	cfg.EntityCount = 0
	g, err := NewWithScreen(screen, cfg,
		WithRand(rand.New(rand.NewSource(1))),
		WithRoller(neutralRolls()),
		WithEnemies(gamedata.NewEnemyRegistry([]gamedata.EnemyDef{testSlime})),
		WithPlayerDef(&testPlayer),
	)
	if err != nil {
		t.Fatalf("NewWithScreen() error = %v", err)
	}
	t.Cleanup(g.Close)
	return g
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestMovementKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want world.Vec3
	}{
		{"arrow up", key(tcell.KeyUp), world.Vec3{Z: -1}},
		{"arrow down", key(tcell.KeyDown), world.Vec3{Z: 1}},
		{"arrow left", key(tcell.KeyLeft), world.Vec3{X: -1}},
		{"arrow right", key(tcell.KeyRight), world.Vec3{X: 1}},
		{"z forward", runeKey('z'), world.Vec3{Z: -1}},
		{"w forward", runeKey('w'), world.Vec3{Z: -1}},
		{"s back", runeKey('s'), world.Vec3{Z: 1}},
		{"q left", runeKey('q'), world.Vec3{X: -1}},
		{"a left", runeKey('a'), world.Vec3{X: -1}},
		{"d right", runeKey('d'), world.Vec3{X: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.handleKeyEvent(context.Background(), tt.ev)
			if g.move != tt.want {
				t.Errorf("move = %v, want %v", g.move, tt.want)
			}
		})
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tcell.Key{tcell.KeyEscape, tcell.KeyCtrlC} {
		g := newTestGame(t)
		g.handleKeyEvent(context.Background(), key(k))
		if g.running {
			t.Errorf("key %v should stop the game", k)
		}
	}
}

func TestActionKeysDriveCombat(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t)
	e := g.Engine()
	placeEnemy(e, testSlime, 1, 0)
	e.Tick(ctx, frame, world.Vec3{})

	g.handleKeyEvent(ctx, runeKey('1'))
	enemy, _ := e.CurrentEnemy()
	if enemy.Stats.HP != 16 {
		t.Errorf("enemy HP after '1' = %d, want 16", enemy.Stats.HP)
	}

	e.Tick(ctx, e.Config().TurnDelay, world.Vec3{})
	g.handleKeyEvent(ctx, runeKey('2'))
	if !e.Session().IsDefending() {
		t.Error("'2' should defend")
	}
}

func TestFrameSnapshot(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t)
	e := g.Engine()

	f := g.frame()
	if f.Combat != nil {
		t.Error("exploration frame should have no combat HUD")
	}
	if f.PlayerSymbol != '@' || f.Player.HP != 100 {
		t.Errorf("frame player = %q %d", f.PlayerSymbol, f.Player.HP)
	}
	// The test definition has no colour, so the fallback applies.
	if f.PlayerColor != tcell.ColorYellow {
		t.Errorf("frame player colour = %v, want yellow", f.PlayerColor)
	}
	if f.Message != controlsHint {
		t.Errorf("frame message = %q, want %q", f.Message, controlsHint)
	}

	placeEnemy(e, testSlime, 1, 0)
	e.Tick(ctx, frame, world.Vec3{})

	f = g.frame()
	if f.Combat == nil {
		t.Fatal("combat frame should carry the HUD")
	}
	if f.Combat.Enemy.Name != "Corrupted Slime" || !f.Combat.PlayerTurn || f.Combat.Phase != "player_turn" {
		t.Errorf("combat view = %+v", *f.Combat)
	}
	g.render()
}
