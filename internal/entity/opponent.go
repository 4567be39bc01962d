package entity

import "github.com/samdwyer/tinyworld/internal/dice"

// Opponent is the single NPC. It never leaves the grid, even at zero HP.
type Opponent struct {
	Character
}

// NewOpponent creates an opponent from c, rolling its damage range once
// within the given bounds. The range is fixed for the opponent's lifetime.
func NewOpponent(c Character, minBounds, maxBounds [2]int, src dice.Source) *Opponent {
	c.HP = c.MaxHP
	c.MinDamage = dice.Between(src, minBounds[0], minBounds[1])
	c.MaxDamage = dice.Between(src, maxBounds[0], maxBounds[1])
	if c.MaxDamage < c.MinDamage {
		c.MaxDamage = c.MinDamage
	}
	return &Opponent{Character: c}
}
