package gamedata

import (
	"errors"
	"fmt"
)

// ErrInvalidStats is returned when a definition carries impossible combat stats.
var ErrInvalidStats = errors.New("invalid stats")

func checkStats(name string, hp, mp, attack, defense, speed int) error {
	switch {
	case hp <= 0:
		return fmt.Errorf("%s: hp %d must be positive: %w", name, hp, ErrInvalidStats)
	case mp < 0:
		return fmt.Errorf("%s: mp %d is negative: %w", name, mp, ErrInvalidStats)
	case attack < 0, defense < 0, speed < 0:
		return fmt.Errorf("%s: attack/defense/speed must be non-negative: %w", name, ErrInvalidStats)
	}
	return nil
}

func (f *EnemiesFile) validate() error {
	seen := make(map[string]bool, len(f.Enemies))
	for _, e := range f.Enemies {
		if e.ID == "" {
			return fmt.Errorf("enemy %q has no id: %w", e.Name, ErrInvalidStats)
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate enemy id %q", e.ID)
		}
		seen[e.ID] = true
		if e.SpawnWeight < 0 {
			return fmt.Errorf("%s: negative spawn weight %d", e.ID, e.SpawnWeight)
		}
		if err := checkStats(e.ID, e.HP, e.MP, e.Attack, e.Defense, e.Speed); err != nil {
			return err
		}
	}
	return nil
}

func (p *PlayerDef) validate() error {
	if p.MoveSpeed < 0 {
		return fmt.Errorf("%s: negative move speed %v", p.Name, p.MoveSpeed)
	}
	return checkStats(p.Name, p.HP, p.MP, p.Attack, p.Defense, p.Speed)
}
