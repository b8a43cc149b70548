package entity

import "github.com/Hausk/eclipse/internal/combat"

// Role tags which side of an encounter a combatant fights on.
type Role int

const (
	RolePlayer Role = iota
	RoleEnemy
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Combatant wraps a stat block with its role in a combat session.
type Combatant struct {
	Role  Role
	ID    string
	Stats *StatBlock
}

// NewCombatant creates a combatant over the given stat block.
func NewCombatant(role Role, id string, stats *StatBlock) *Combatant {
	return &Combatant{Role: role, ID: id, Stats: stats}
}

// =============================================================================
// combat.Combatant implementation
// =============================================================================

// GetName returns the combatant's name.
func (c *Combatant) GetName() string { return c.Stats.Name }

// IsAlive returns true if the combatant has HP remaining.
func (c *Combatant) IsAlive() bool { return c.Stats.IsAlive() }

// GetHP returns current HP.
func (c *Combatant) GetHP() int { return c.Stats.HP }

// GetMaxHP returns maximum HP.
func (c *Combatant) GetMaxHP() int { return c.Stats.MaxHP }

// GetAttack returns attack stat.
func (c *Combatant) GetAttack() int { return c.Stats.Attack }

// GetDefense returns defense stat.
func (c *Combatant) GetDefense() int { return c.Stats.Defense }

// TakeDamage reduces HP and returns actual damage taken.
func (c *Combatant) TakeDamage(amount int) int { return c.Stats.TakeDamage(amount) }

var _ combat.Combatant = (*Combatant)(nil)
