// Package entity provides the player, roaming enemies and their stat blocks.
package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidStatBlock is returned by Validate for out-of-range stats.
var ErrInvalidStatBlock = errors.New("invalid stat block")

// StatBlock holds the combat-relevant attributes of any combatant.
// HP and MP stay within [0, max]; use the mutation methods rather than
// assigning the fields directly.
type StatBlock struct {
	Name    string
	Level   int
	HP      int
	MaxHP   int
	MP      int
	MaxMP   int
	Attack  int
	Defense int
	Speed   int
}

// Validate checks the stat block invariants.
func (s StatBlock) Validate() error {
	switch {
	case s.MaxHP < 0 || s.HP < 0 || s.HP > s.MaxHP:
		return fmt.Errorf("%s: hp %d/%d: %w", s.Name, s.HP, s.MaxHP, ErrInvalidStatBlock)
	case s.MaxMP < 0 || s.MP < 0 || s.MP > s.MaxMP:
		return fmt.Errorf("%s: mp %d/%d: %w", s.Name, s.MP, s.MaxMP, ErrInvalidStatBlock)
	case s.Attack < 0 || s.Defense < 0 || s.Speed < 0:
		return fmt.Errorf("%s: negative attack/defense/speed: %w", s.Name, ErrInvalidStatBlock)
	}
	return nil
}

// IsAlive returns true if HP remains.
func (s *StatBlock) IsAlive() bool { return s.HP > 0 }

// TakeDamage reduces HP and returns actual damage taken.
func (s *StatBlock) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > s.HP {
		actual = s.HP
	}
	s.HP -= actual
	return actual
}

// Heal restores HP and returns actual amount healed.
func (s *StatBlock) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if s.HP+actual > s.MaxHP {
		actual = s.MaxHP - s.HP
	}
	s.HP += actual
	return actual
}

// SpendMP reduces MP and returns false if insufficient.
func (s *StatBlock) SpendMP(amount int) bool {
	if amount < 0 || s.MP < amount {
		return false
	}
	s.MP -= amount
	return true
}

// RestoreMP restores MP and returns actual amount restored.
func (s *StatBlock) RestoreMP(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if s.MP+actual > s.MaxMP {
		actual = s.MaxMP - s.MP
	}
	s.MP += actual
	return actual
}

// Restore refills HP and MP to their maximums.
func (s *StatBlock) Restore() {
	s.HP = s.MaxHP
	s.MP = s.MaxMP
}
