package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/Hausk/eclipse/internal/encounter"
	"github.com/Hausk/eclipse/internal/entity"
	"github.com/Hausk/eclipse/internal/world"
)

func newTestScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	s, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() error = %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(s.Close)
	return s, sim
}

func row(sim tcell.SimulationScreen, y int) string {
	w, _ := sim.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(sim tcell.SimulationScreen) string {
	_, h := sim.Size()
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		lines[y] = row(sim, y)
	}
	return strings.Join(lines, "\n")
}

func testFrame() Frame {
	return Frame{
		Field: world.NewField(25),
		Player: entity.StatBlock{
			Name: "Hauskiel", Level: 1,
			HP: 100, MaxHP: 100, MP: 50, MaxMP: 50,
			Attack: 15, Defense: 8, Speed: 100,
		},
		PlayerPos:    world.Vec3{Y: world.PlayerHeight},
		PlayerSymbol: '@',
	}
}

func TestRenderExploreStatusLine(t *testing.T) {
	s, sim := newTestScreen(t, 80, 24)
	r := NewRenderer(s)

	f := testFrame()
	f.Nearby = []encounter.Sighting{{ID: "a", Name: "Cave Bat", Level: 2, Distance: 3.25}}
	r.Render(f)

	status := row(sim, 0)
	for _, want := range []string{"Hauskiel Lv1", "HP 100/100", "MP 50/50", "[explore]"} {
		if !strings.Contains(status, want) {
			t.Errorf("status line = %q, want it to contain %q", status, want)
		}
	}
	if nearby := row(sim, 1); !strings.Contains(nearby, "Cave Bat Lv2 (3.2m)") {
		t.Errorf("nearby line = %q, want Cave Bat sighting", nearby)
	}
}

func TestRenderPlayerAtFieldCentre(t *testing.T) {
	s, sim := newTestScreen(t, 81, 23)
	r := NewRenderer(s)

	r.Render(testFrame())

	// 81 columns and 21 map rows put the origin on cell (40, 10) of the map.
	got, _, _, _ := sim.GetContent(40, mapTop+10)
	if got != '@' {
		t.Errorf("cell at field centre = %q, want '@'", got)
	}
}

func TestRenderNoNearby(t *testing.T) {
	s, sim := newTestScreen(t, 80, 24)
	r := NewRenderer(s)

	r.Render(testFrame())

	if nearby := row(sim, 1); !strings.HasPrefix(nearby, "Nearby: none") {
		t.Errorf("nearby line = %q, want %q prefix", nearby, "Nearby: none")
	}
}

func TestRenderCombatHUD(t *testing.T) {
	s, sim := newTestScreen(t, 80, 24)
	r := NewRenderer(s)

	f := testFrame()
	f.Combat = &CombatView{
		Enemy:      entity.StatBlock{Name: "Corrupted Slime", Level: 1, HP: 16, MaxHP: 30},
		Player:     f.Player,
		Log:        []string{"Combat against Corrupted Slime!", "You deal 14 damage!"},
		PlayerTurn: true,
		Phase:      "player_turn",
		Outcome:    "none",
	}
	r.Render(f)

	text := screenText(sim)
	for _, want := range []string{
		"Corrupted Slime Lv1",
		"16/30",
		"You deal 14 damage!",
		"[1] Attack  [2] Defend  [3] Flee",
		"[combat]",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("screen missing %q", want)
		}
	}
}

func TestRenderCombatHUDShowsOnlyRecentLog(t *testing.T) {
	s, sim := newTestScreen(t, 80, 24)
	r := NewRenderer(s)

	f := testFrame()
	f.Combat = &CombatView{
		Enemy:   entity.StatBlock{Name: "Cave Bat", Level: 2, HP: 0, MaxHP: 20},
		Player:  f.Player,
		Log:     []string{"line-a", "line-b", "line-c", "line-d", "line-e"},
		Outcome: "victory",
	}
	r.Render(f)

	text := screenText(sim)
	if strings.Contains(text, "line-a") {
		t.Error("oldest log line should be scrolled out of the HUD")
	}
	for _, want := range []string{"line-b", "line-e", "VICTORY"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen missing %q", want)
		}
	}
}

func TestHPBar(t *testing.T) {
	tests := []struct {
		name  string
		hp    int
		maxHP int
		want  string
	}{
		{"full", 10, 10, "[##########]"},
		{"half", 5, 10, "[#####-----]"},
		{"empty", 0, 10, "[----------]"},
		{"sliver", 1, 100, "[#---------]"},
		{"overheal", 20, 10, "[##########]"},
		{"no max", 5, 0, "[----------]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hpBar(tt.hp, tt.maxHP, 10); got != tt.want {
				t.Errorf("hpBar(%d, %d) = %q, want %q", tt.hp, tt.maxHP, got, tt.want)
			}
		})
	}
}

func TestProjectCorners(t *testing.T) {
	f := world.NewField(10)

	tests := []struct {
		name  string
		p     world.Vec3
		wantX int
		wantY int
	}{
		{"min corner", world.Vec3{X: -10, Z: -10}, 0, 0},
		{"max corner", world.Vec3{X: 10, Z: 10}, 20, 10},
		{"outside clamps", world.Vec3{X: 99, Z: -99}, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := project(f, tt.p, 21, 11)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("project(%v) = (%d, %d), want (%d, %d)", tt.p, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRenderPlayerColour(t *testing.T) {
	tests := []struct {
		name  string
		color tcell.Color
		want  tcell.Color
	}{
		{"from definition", tcell.NewHexColor(0xFFD700), tcell.NewHexColor(0xFFD700)},
		{"unset falls back to yellow", tcell.ColorDefault, tcell.ColorYellow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, sim := newTestScreen(t, 81, 23)
			r := NewRenderer(s)

			f := testFrame()
			f.PlayerColor = tt.color
			r.Render(f)

			_, _, style, _ := sim.GetContent(40, mapTop+10)
			if fg, _, _ := style.Decompose(); fg != tt.want {
				t.Errorf("player foreground = %v, want %v", fg, tt.want)
			}
		})
	}
}

func TestRenderMessageOnBottomRow(t *testing.T) {
	s, sim := newTestScreen(t, 80, 24)
	r := NewRenderer(s)

	f := testFrame()
	f.Message = "Move: arrows  Quit: Esc"
	r.Render(f)

	if got := row(sim, 23); !strings.HasPrefix(got, f.Message) {
		t.Errorf("bottom row = %q, want %q prefix", got, f.Message)
	}
}

func TestRenderNoMessageKeepsField(t *testing.T) {
	s, sim := newTestScreen(t, 80, 24)
	r := NewRenderer(s)

	r.Render(testFrame())

	if got := row(sim, 23); got != strings.Repeat(".", 80) {
		t.Errorf("bottom row = %q, want field only", got)
	}
}

func TestRenderCombatHUDTurnOrder(t *testing.T) {
	s, sim := newTestScreen(t, 80, 24)
	r := NewRenderer(s)

	f := testFrame()
	f.Combat = &CombatView{
		Enemy:      entity.StatBlock{Name: "Corrupted Slime", Level: 1, HP: 30, MaxHP: 30, Speed: 80},
		Player:     f.Player,
		PlayerTurn: true,
		Outcome:    "none",
	}
	r.Render(f)

	want := "Turn order: Hauskiel (100) > Corrupted Slime (80)"
	if !strings.Contains(screenText(sim), want) {
		t.Errorf("screen missing %q", want)
	}
}

func TestTurnOrder(t *testing.T) {
	player := entity.StatBlock{Name: "Hauskiel", Speed: 100}

	tests := []struct {
		name  string
		speed int
		want  string
	}{
		{"player faster", 80, "Turn order: Hauskiel (100) > Slime (80)"},
		{"enemy faster", 140, "Turn order: Slime (140) > Hauskiel (100)"},
		{"tie goes to player", 100, "Turn order: Hauskiel (100) > Slime (100)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CombatView{Player: player, Enemy: entity.StatBlock{Name: "Slime", Speed: tt.speed}}
			if got := turnOrder(c); got != tt.want {
				t.Errorf("turnOrder() = %q, want %q", got, tt.want)
			}
		})
	}
}
