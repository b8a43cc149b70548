package gamedata

import "github.com/gdamore/tcell/v2"

// EnemyDef defines a roaming enemy type loaded from JSON.
type EnemyDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "corrupted_slime")
	Name        string `json:"name"`        // Display name (e.g., "Corrupted Slime")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "s")
	Color       string `json:"color"`       // Hex color code (e.g., "#3050FF")
	Level       int    `json:"level"`       // Displayed level
	HP          int    `json:"hp"`          // Base hit points
	MP          int    `json:"mp"`          // Base mana points
	Attack      int    `json:"attack"`      // Base attack power
	Defense     int    `json:"defense"`     // Base defense value
	Speed       int    `json:"speed"`       // Base speed
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
