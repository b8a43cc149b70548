// Package combat provides damage and flee resolution for turn-based encounters.
package combat

import "math"

// Combatant is the interface for any entity that can take part in an attack.
type Combatant interface {
	GetName() string
	IsAlive() bool

	GetHP() int
	GetMaxHP() int
	GetAttack() int
	GetDefense() int

	TakeDamage(amount int) int // Returns actual damage taken
}

// Roller is the random source used by the resolver. *rand.Rand satisfies it.
type Roller interface {
	Float64() float64
}

// Policy holds the numeric balancing rules for attacks and fleeing.
type Policy struct {
	VarianceMin    float64 // Lower bound of the damage variance band
	VarianceMax    float64 // Upper bound of the damage variance band
	CritChance     float64 // Probability that an attack is critical
	CritMultiplier int     // Multiplier applied to raw damage on a critical
	FleeChance     float64 // Probability that a flee attempt succeeds
}

// DefaultPolicy returns the canonical balancing rules.
func DefaultPolicy() Policy {
	return Policy{
		VarianceMin:    0.8,
		VarianceMax:    1.2,
		CritChance:     0.15,
		CritMultiplier: 2,
		FleeChance:     0.5,
	}
}

// Hit describes one resolved attack.
type Hit struct {
	Variance  float64
	Critical  bool
	Defending bool
	Damage    int // Damage computed by the formula (always >= 1)
	Applied   int // Damage actually removed from the target's HP
}

// Resolver rolls and applies attacks and flee attempts.
type Resolver struct {
	policy Policy
	rng    Roller
}

// NewResolver creates a resolver using the given policy and random source.
func NewResolver(policy Policy, rng Roller) *Resolver {
	return &Resolver{policy: policy, rng: rng}
}

// Policy returns the resolver's balancing rules.
func (r *Resolver) Policy() Policy {
	return r.policy
}

// Attack rolls variance and critical, then applies the damage to the target.
// The variance roll is drawn before the critical roll.
func (r *Resolver) Attack(attacker, target Combatant, defending bool) Hit {
	variance := r.policy.VarianceMin + r.rng.Float64()*(r.policy.VarianceMax-r.policy.VarianceMin)
	critical := r.rng.Float64() < r.policy.CritChance

	damage := CalculateDamage(attacker.GetAttack(), target.GetDefense(), variance, critMultiplier(r.policy, critical), defending)

	return Hit{
		Variance:  variance,
		Critical:  critical,
		Defending: defending,
		Damage:    damage,
		Applied:   target.TakeDamage(damage),
	}
}

// RollFlee returns true if a flee attempt succeeds.
func (r *Resolver) RollFlee() bool {
	return r.rng.Float64() < r.policy.FleeChance
}

// CalculateDamage computes attack damage without applying it:
//
//	raw    = floor(attack * variance) * multiplier
//	damage = raw - floor(defense / 2)
//	damage = floor(damage / 2) when the target is defending
//	damage = max(1, damage)
func CalculateDamage(attack, defense int, variance float64, multiplier int, defending bool) int {
	if multiplier < 1 {
		multiplier = 1
	}
	raw := int(math.Floor(float64(attack)*variance)) * multiplier
	damage := raw - defense/2
	if defending {
		damage = floorHalf(damage)
	}
	if damage < 1 {
		damage = 1
	}
	return damage
}

func critMultiplier(p Policy, critical bool) int {
	if !critical {
		return 1
	}
	return p.CritMultiplier
}

// floorHalf divides by two rounding towards negative infinity.
func floorHalf(n int) int {
	if n < 0 {
		return -((-n + 1) / 2)
	}
	return n / 2
}
