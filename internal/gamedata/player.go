package gamedata

import "github.com/gdamore/tcell/v2"

// PlayerDef defines the starting player character loaded from JSON.
type PlayerDef struct {
	Name      string  `json:"name"`
	Glyph     string  `json:"glyph"`
	Color     string  `json:"color"`
	Level     int     `json:"level"`
	HP        int     `json:"hp"`
	MP        int     `json:"mp"`
	Attack    int     `json:"attack"`
	Defense   int     `json:"defense"`
	Speed     int     `json:"speed"`
	MoveSpeed float64 `json:"moveSpeed"` // World units per movement step
}

// GlyphRune returns the glyph as a rune for rendering.
func (p *PlayerDef) GlyphRune() rune {
	if len(p.Glyph) == 0 {
		return '@'
	}
	return rune(p.Glyph[0])
}

// TCellColor returns the color as a tcell.Color, yellow when unset or invalid.
func (p *PlayerDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(p.Color)
	if err != nil {
		return tcell.ColorYellow
	}
	return color
}

// LoadPlayer loads the player definition from the embedded player.json file.
func LoadPlayer() (*PlayerDef, error) {
	def, err := Load[PlayerDef]("player.json")
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// MustLoadPlayer loads the player definition, panicking on error.
func MustLoadPlayer() *PlayerDef {
	def, err := LoadPlayer()
	if err != nil {
		panic(err)
	}
	return def
}
