// Package game runs the exploration loop and the turn-based combat sessions
// it hands control to.
package game

// State represents the current engine mode.
type State int

const (
	// StateExplore is the default mode where the player moves and encounters trigger.
	StateExplore State = iota
	// StateCombat suspends movement while a combat session is active.
	StateCombat
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateCombat:
		return "combat"
	default:
		return "unknown"
	}
}
