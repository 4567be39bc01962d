package game

import "github.com/samdwyer/tinyworld/internal/world"

// recentLogLines is how many log lines the view exposes.
const recentLogLines = 2

// CharacterView is the drawable part of a character.
type CharacterView struct {
	Name      string
	Pos       world.Position
	HP, MaxHP int
}

// View is a read-only snapshot for rendering. Slices are copies.
type View struct {
	Grid          *world.Grid
	Mode          Mode
	Message       string
	RecentLog     []string
	Player        CharacterView
	Opponent      CharacterView
	ItemName      string
	ItemPos       world.Position
	ItemOnGrid    bool
	Inventory     []string
	InventoryText string // "Inv: ..." display line
	Gold          int
}

// View returns the current snapshot.
func (s *Session) View() View {
	itemPos, onGrid := s.item.Position()
	inv := make([]string, len(s.player.Inventory))
	copy(inv, s.player.Inventory)

	return View{
		Grid:          s.grid,
		Mode:          s.mode,
		Message:       s.message,
		RecentLog:     s.log.Last(recentLogLines),
		Player:        characterView(s.player.Name, s.player.Pos, s.player.HP, s.player.MaxHP),
		Opponent:      characterView(s.opponent.Name, s.opponent.Pos, s.opponent.HP, s.opponent.MaxHP),
		ItemName:      s.item.Name,
		ItemPos:       itemPos,
		ItemOnGrid:    onGrid,
		Inventory:     inv,
		InventoryText: s.player.InventoryText(),
		Gold:          s.player.Gold,
	}
}

func characterView(name string, pos world.Position, hp, maxHP int) CharacterView {
	return CharacterView{Name: name, Pos: pos, HP: hp, MaxHP: maxHP}
}
