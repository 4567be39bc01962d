package entity

import "strings"

// Player is the character controlled by the user.
type Player struct {
	Character
	Inventory   []string // Item names, append-only
	Gold        int
	AttackBonus int
}

// NewPlayer creates a player with full health and an empty inventory.
func NewPlayer(c Character) *Player {
	c.HP = c.MaxHP
	return &Player{
		Character: c,
		Inventory: []string{},
	}
}

// GetAttackBonus returns the flat damage added to every strike.
func (p *Player) GetAttackBonus() int { return p.AttackBonus }

// AddGold credits the player. Negative amounts are ignored.
func (p *Player) AddGold(amount int) {
	if amount > 0 {
		p.Gold += amount
	}
}

// HasItem returns true if the inventory contains name.
func (p *Player) HasItem(name string) bool {
	for _, it := range p.Inventory {
		if it == name {
			return true
		}
	}
	return false
}

// InventoryText returns the inventory as a single display line.
func (p *Player) InventoryText() string {
	if len(p.Inventory) == 0 {
		return "Inv: (empty)"
	}
	return "Inv: " + strings.Join(p.Inventory, ", ")
}
