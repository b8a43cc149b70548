package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/Hausk/eclipse/internal/gamedata"
	"github.com/Hausk/eclipse/internal/world"
)

// RoamingEntity is a hostile creature wandering the exploration field.
type RoamingEntity struct {
	ID       string
	Def      *gamedata.EnemyDef
	Position world.Vec3
	Stats    StatBlock
}

// NewRoamingEntity creates an entity from a data-driven definition with a fresh ID.
func NewRoamingEntity(def *gamedata.EnemyDef, pos world.Vec3) *RoamingEntity {
	return &RoamingEntity{
		ID:       uuid.NewString(),
		Def:      def,
		Position: pos,
		Stats:    StatsFromEnemyDef(def),
	}
}

// StatsFromEnemyDef builds a full-health stat block from an enemy definition.
func StatsFromEnemyDef(def *gamedata.EnemyDef) StatBlock {
	return StatBlock{
		Name:    def.Name,
		Level:   def.Level,
		HP:      def.HP,
		MaxHP:   def.HP,
		MP:      def.MP,
		MaxMP:   def.MP,
		Attack:  def.Attack,
		Defense: def.Defense,
		Speed:   def.Speed,
	}
}

// Symbol returns the display glyph.
func (e *RoamingEntity) Symbol() rune {
	if e.Def == nil {
		return '?'
	}
	return e.Def.GlyphRune()
}

// Color returns the tcell color for this entity.
func (e *RoamingEntity) Color() tcell.Color {
	if e.Def == nil {
		return tcell.ColorPurple
	}
	return e.Def.TCellColor()
}
