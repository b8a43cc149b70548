package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Hausk/eclipse/internal/gamedata"
	"github.com/Hausk/eclipse/internal/world"
)

// PlayerID identifies the player in combat sessions and events.
const PlayerID = "player"

// Player is the persistent player character: stats survive between encounters.
type Player struct {
	Stats     StatBlock
	Position  world.Vec3
	MoveSpeed float64
	Symbol    rune
	Color     tcell.Color
}

// NewPlayer creates the player from its definition at the field origin.
func NewPlayer(def *gamedata.PlayerDef) *Player {
	return &Player{
		Stats: StatBlock{
			Name:    def.Name,
			Level:   def.Level,
			HP:      def.HP,
			MaxHP:   def.HP,
			MP:      def.MP,
			MaxMP:   def.MP,
			Attack:  def.Attack,
			Defense: def.Defense,
			Speed:   def.Speed,
		},
		Position:  world.Vec3{Y: world.PlayerHeight},
		MoveSpeed: def.MoveSpeed,
		Symbol:    def.GlyphRune(),
		Color:     def.TCellColor(),
	}
}

// Move steps the player along dir (normalised) by MoveSpeed, staying on the field.
func (p *Player) Move(dir world.Vec3, field world.Field) {
	dir.Y = 0
	if dir.Length() == 0 {
		return
	}
	p.Position = field.Clamp(p.Position.Add(dir.Normalize().Scale(p.MoveSpeed)))
}
