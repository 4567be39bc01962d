// Package combat resolves attack exchanges between two combatants.
package combat

import "github.com/samdwyer/tinyworld/internal/dice"

// Combatant is the interface for any entity that can participate in combat.
// Both the player and the opponent implement this interface.
type Combatant interface {
	// Identity
	GetName() string
	IsAlive() bool

	// Stats
	GetHP() int
	GetMaxHP() int
	DamageRange() (minDamage, maxDamage int)
	GetHitChance() float64

	// Mutations
	TakeDamage(amount int) int // Returns actual damage taken
}

// bonusHolder is implemented by combatants carrying a flat damage bonus.
type bonusHolder interface {
	GetAttackBonus() int
}

// StrikeResult describes a single attack.
type StrikeResult struct {
	Attacker string
	Target   string
	Hit      bool
	Rolled   int // Damage rolled, bonus included; zero on a miss
	Damage   int // Damage actually applied after clamping at zero HP
}

// RoundResult describes one full exchange.
type RoundResult struct {
	Strike  StrikeResult
	Counter *StrikeResult // Nil when the defender fell to the strike
	Outcome Outcome
}

// Resolver rolls hits and damage against an injected source.
type Resolver struct {
	src dice.Source
}

// NewResolver creates a new resolver drawing from src.
func NewResolver(src dice.Source) *Resolver {
	return &Resolver{src: src}
}

// Strike resolves an attack whose damage is rolled before the hit check.
// The attacker's bonus, if any, is added to the rolled damage.
func (r *Resolver) Strike(attacker, target Combatant) StrikeResult {
	minDmg, maxDmg := attacker.DamageRange()
	damage := dice.Between(r.src, minDmg, maxDmg)
	if b, ok := attacker.(bonusHolder); ok {
		damage += b.GetAttackBonus()
	}

	result := StrikeResult{Attacker: attacker.GetName(), Target: target.GetName()}
	if dice.Chance(r.src, attacker.GetHitChance()) {
		result.Hit = true
		result.Rolled = damage
		result.Damage = target.TakeDamage(damage)
	}
	return result
}

// Counter resolves an attack that checks for a hit before rolling damage.
func (r *Resolver) Counter(attacker, target Combatant) StrikeResult {
	result := StrikeResult{Attacker: attacker.GetName(), Target: target.GetName()}
	if !dice.Chance(r.src, attacker.GetHitChance()) {
		return result
	}

	minDmg, maxDmg := attacker.DamageRange()
	result.Hit = true
	result.Rolled = dice.Between(r.src, minDmg, maxDmg)
	result.Damage = target.TakeDamage(result.Rolled)
	return result
}

// Round runs one exchange: the player strikes, and the opponent counters
// only if it is still standing.
func (r *Resolver) Round(player, opponent Combatant) RoundResult {
	result := RoundResult{
		Strike:  r.Strike(player, opponent),
		Outcome: OutcomeContinue,
	}

	if !opponent.IsAlive() {
		result.Outcome = OutcomeVictory
		return result
	}

	counter := r.Counter(opponent, player)
	result.Counter = &counter

	if !player.IsAlive() {
		result.Outcome = OutcomeDefeat
	}
	return result
}
