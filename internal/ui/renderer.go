package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/Hausk/eclipse/internal/encounter"
	"github.com/Hausk/eclipse/internal/entity"
	"github.com/Hausk/eclipse/internal/world"
)

const (
	mapTop      = 2
	hudWidth    = 48
	hudLogLines = 4
	hpBarWidth  = 20
)

// Frame is everything drawn in one pass.
type Frame struct {
	Field        world.Field
	Player       entity.StatBlock
	PlayerPos    world.Vec3
	PlayerSymbol rune
	PlayerColor  tcell.Color
	Entities     []*entity.RoamingEntity
	Nearby       []encounter.Sighting
	Combat       *CombatView
	// Message is drawn on the bottom row when set.
	Message      string
}

// CombatView is the combat HUD content. Nil when exploring.
type CombatView struct {
	Enemy      entity.StatBlock
	Player     entity.StatBlock
	Log        []string
	PlayerTurn bool
	Defending  bool
	Phase      string
	Outcome    string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the field, the roaming entities, the player and, during
// combat, the HUD on top.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()
	w, h := r.screen.Size()

	r.drawStatus(f, w)
	r.drawNearby(f, w)

	mapH := h - mapTop
	if mapH > 0 && w > 0 {
		r.drawField(w, mapH)
		for _, e := range f.Entities {
			x, y := project(f.Field, e.Position, w, mapH)
			r.screen.SetContent(x, mapTop+y, e.Symbol(), tcell.StyleDefault.Foreground(e.Color()))
		}
		color := f.PlayerColor
		if color == tcell.ColorDefault {
			color = tcell.ColorYellow
		}
		x, y := project(f.Field, f.PlayerPos, w, mapH)
		playerStyle := tcell.StyleDefault.
			Foreground(color).
			Bold(true)
		r.screen.SetContent(x, mapTop+y, f.PlayerSymbol, playerStyle)
	}

	if f.Combat != nil {
		r.drawCombat(*f.Combat, w, h)
	}

	if f.Message != "" && h > mapTop {
		r.RenderMessage(truncate(f.Message, w), h-1)
	}

	r.screen.Show()
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.drawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (r *Renderer) drawStatus(f Frame, w int) {
	mode := "explore"
	if f.Combat != nil {
		mode = "combat"
	}
	line := fmt.Sprintf("%s Lv%d  HP %d/%d  MP %d/%d  (%.1f, %.1f)  [%s]",
		f.Player.Name, f.Player.Level,
		f.Player.HP, f.Player.MaxHP,
		f.Player.MP, f.Player.MaxMP,
		f.PlayerPos.X, f.PlayerPos.Z, mode)
	r.drawText(0, 0, truncate(line, w), tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
}

func (r *Renderer) drawNearby(f Frame, w int) {
	parts := make([]string, 0, len(f.Nearby))
	for _, s := range f.Nearby {
		parts = append(parts, fmt.Sprintf("%s Lv%d (%.1fm)", s.Name, s.Level, s.Distance))
	}
	line := "Nearby: none"
	if len(parts) > 0 {
		line = "Nearby: " + strings.Join(parts, ", ")
	}
	r.drawText(0, 1, truncate(line, w), tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (r *Renderer) drawField(w, h int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, mapTop+y, '.', style)
		}
	}
}

func (r *Renderer) drawCombat(c CombatView, w, h int) {
	boxW := hudWidth
	if boxW > w-2 {
		boxW = w - 2
	}
	boxH := 8 + hudLogLines + 2
	if boxW < 10 || boxH > h-mapTop {
		return
	}
	x0 := (w - boxW) / 2
	y0 := mapTop + (h-mapTop-boxH)/2
	r.drawBox(x0, y0, boxW, boxH)

	inner := boxW - 4
	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	row := y0 + 1

	r.drawText(x0+2, row, truncate(fmt.Sprintf("%s Lv%d", c.Enemy.Name, c.Enemy.Level), inner), text.Foreground(tcell.ColorRed).Bold(true))
	row++
	r.drawText(x0+2, row, truncate(hpLine(c.Enemy), inner), text)
	row++
	r.drawText(x0+2, row, truncate(fmt.Sprintf("%s Lv%d", c.Player.Name, c.Player.Level), inner), text.Foreground(tcell.ColorYellow).Bold(true))
	row++
	r.drawText(x0+2, row, truncate(hpLine(c.Player), inner), text)
	row++
	r.drawText(x0+2, row, truncate(turnOrder(c), inner), text.Foreground(tcell.ColorGray))
	row++

	log := c.Log
	if len(log) > hudLogLines {
		log = log[len(log)-hudLogLines:]
	}
	row++
	for i := 0; i < hudLogLines; i++ {
		if i < len(log) {
			r.drawText(x0+2, row, truncate(log[i], inner), text.Foreground(tcell.ColorSilver))
		}
		row++
	}
	row++

	var hint string
	switch {
	case c.Outcome != "" && c.Outcome != "none":
		hint = strings.ToUpper(c.Outcome)
	case c.PlayerTurn:
		hint = "[1] Attack  [2] Defend  [3] Flee"
		if c.Defending {
			hint += "  (defending)"
		}
	default:
		hint = "Enemy turn..."
	}
	r.drawText(x0+2, row, truncate(hint, inner), text.Bold(true))
}

func (r *Renderer) drawBox(x0, y0, w, h int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			ch := ' '
			switch {
			case (y == y0 || y == y0+h-1) && (x == x0 || x == x0+w-1):
				ch = '+'
			case y == y0 || y == y0+h-1:
				ch = '-'
			case x == x0 || x == x0+w-1:
				ch = '|'
			}
			r.screen.SetContent(x, y, ch, style)
		}
	}
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}

// project maps a world position on the X/Z plane onto a w by h grid.
// The field's -Z edge is the top row.
func project(f world.Field, p world.Vec3, w, h int) (int, int) {
	span := 2 * f.HalfWidth
	if span <= 0 {
		return w / 2, h / 2
	}
	p = f.Clamp(p)
	x := int(math.Round((p.X + f.HalfWidth) / span * float64(w-1)))
	y := int(math.Round((p.Z + f.HalfWidth) / span * float64(h-1)))
	return x, y
}

// turnOrder lists both sides fastest first; the player wins ties.
func turnOrder(c CombatView) string {
	first, second := c.Player, c.Enemy
	if c.Enemy.Speed > c.Player.Speed {
		first, second = c.Enemy, c.Player
	}
	return fmt.Sprintf("Turn order: %s (%d) > %s (%d)", first.Name, first.Speed, second.Name, second.Speed)
}

func hpLine(s entity.StatBlock) string {
	return fmt.Sprintf("HP %s %d/%d", hpBar(s.HP, s.MaxHP, hpBarWidth), s.HP, s.MaxHP)
}

func hpBar(hp, maxHP, width int) string {
	filled := 0
	if maxHP > 0 && hp > 0 {
		filled = hp * width / maxHP
		filled = max(1, min(filled, width))
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}
