// Package combat provides the dice rolls and hit point arithmetic of a battle.
package combat

// Rand is the random source behind every roll. *rand.Rand satisfies it,
// and tests substitute scripted sources to make outcomes reproducible.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Combatant is the interface for anything that can take hits and be healed.
// Both the player and enemies implement this interface.
type Combatant interface {
	GetName() string
	GetHP() int
	GetMaxHP() int

	TakeDamage(amount int) int // Returns actual damage taken
	Heal(amount int) int       // Returns actual amount healed
}

// EffectResult contains the outcome of one roll applied to a target.
type EffectResult struct {
	Rolled   int  // Amount rolled before clamping
	Damage   int  // Damage actually removed from the target
	Healing  int  // HP actually restored
	Defeated bool // Target HP reached zero
}

// Resolver rolls damage and healing and applies them to combatants.
type Resolver struct {
	rng Rand
}

// NewResolver creates a resolver drawing from rng.
func NewResolver(rng Rand) *Resolver {
	return &Resolver{rng: rng}
}

// Roll returns base plus a bonus in [0, spread). A spread below 1 adds nothing.
func (r *Resolver) Roll(base, spread int) int {
	if spread <= 1 {
		return base
	}
	return base + r.rng.Intn(spread)
}

// Chance returns true with probability p.
func (r *Resolver) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return r.rng.Float64() < p
}

// Strike deals base+bonus damage to target. HP never drops below zero.
func (r *Resolver) Strike(base, spread int, target Combatant) EffectResult {
	rolled := r.Roll(base, spread)
	dealt := target.TakeDamage(rolled)
	return EffectResult{
		Rolled:   rolled,
		Damage:   dealt,
		Defeated: target.GetHP() <= 0,
	}
}

// Mend heals target by base+bonus. HP never exceeds its maximum.
func (r *Resolver) Mend(base, spread int, target Combatant) EffectResult {
	rolled := r.Roll(base, spread)
	return EffectResult{
		Rolled:  rolled,
		Healing: target.Heal(rolled),
	}
}
