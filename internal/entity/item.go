package entity

import "github.com/samdwyer/tinyworld/internal/world"

// Item is a pickup that is either lying on the grid or held by the player,
// never both. The transition to held happens once and cannot be undone.
type Item struct {
	Name  string
	Bonus int // Attack bonus granted on pickup

	pos  world.Position
	held bool
}

// NewItem places an item on the grid.
func NewItem(name string, bonus int, pos world.Position) *Item {
	return &Item{Name: name, Bonus: bonus, pos: pos}
}

// Position returns the item's grid position. ok is false once it is held.
func (it *Item) Position() (pos world.Position, ok bool) {
	if it.held {
		return world.Position{}, false
	}
	return it.pos, true
}

// OnGrid returns true while the item lies in the world.
func (it *Item) OnGrid() bool { return !it.held }

// At returns true if the item lies on the grid at p.
func (it *Item) At(p world.Position) bool {
	return !it.held && it.pos == p
}

// PickUp moves the item into p's inventory and applies its bonus.
// It returns false, with no effect, if the item is already held.
func (it *Item) PickUp(p *Player) bool {
	if it.held {
		return false
	}
	it.held = true
	it.pos = world.Position{}
	p.Inventory = append(p.Inventory, it.Name)
	p.AttackBonus = it.Bonus
	return true
}
