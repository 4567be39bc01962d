// Package entity provides the player, the opponent, and the item.
package entity

import "github.com/samdwyer/tinyworld/internal/world"

// Character holds the state shared by the player and the opponent.
type Character struct {
	Name      string
	Pos       world.Position
	HP, MaxHP int

	// Combat stats
	MinDamage int
	MaxDamage int
	HitChance float64 // Probability in [0,1]
}

// Position returns the character's current position.
func (c *Character) Position() world.Position { return c.Pos }

// SetPosition updates the character's position.
// Callers validate against the grid first.
func (c *Character) SetPosition(p world.Position) { c.Pos = p }

// GetName returns the character's name.
func (c *Character) GetName() string { return c.Name }

// IsAlive returns true if the character has HP remaining.
func (c *Character) IsAlive() bool { return c.HP > 0 }

// GetHP returns current HP.
func (c *Character) GetHP() int { return c.HP }

// GetMaxHP returns maximum HP.
func (c *Character) GetMaxHP() int { return c.MaxHP }

// DamageRange returns the inclusive damage bounds.
func (c *Character) DamageRange() (int, int) { return c.MinDamage, c.MaxDamage }

// GetHitChance returns the probability of landing a blow.
func (c *Character) GetHitChance() float64 { return c.HitChance }

// TakeDamage reduces HP, never below zero, and returns actual damage taken.
func (c *Character) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > c.HP {
		actual = c.HP
	}
	c.HP -= actual
	return actual
}
