package game

import (
	"github.com/samdwyer/tinyworld/internal/entity"
	"github.com/samdwyer/tinyworld/internal/world"
)

// Passable returns true if (x, y) is in bounds and open.
func (s *Session) Passable(x, y int) bool {
	return s.grid.Passable(x, y)
}

// MoveEntity moves c one step in direction d if the destination is
// passable and, for anyone but the opponent, not the opponent's tile.
// A blocked move leaves c untouched and returns false.
func (s *Session) MoveEntity(c *entity.Character, d world.Direction) bool {
	next := c.Pos.Add(d)
	if !s.grid.PassableAt(next) {
		return false
	}
	if c != &s.opponent.Character && next == s.opponent.Pos {
		return false
	}
	c.SetPosition(next)
	return true
}

// MovePlayer moves the player one step.
func (s *Session) MovePlayer(d world.Direction) bool {
	return s.MoveEntity(&s.player.Character, d)
}

// Wander moves the opponent one step in the first direction of a random
// ordering that is passable and not the player's tile. If none qualifies
// the opponent stays put. It returns true if the opponent moved.
func (s *Session) Wander() bool {
	for _, i := range s.src.Perm(len(world.Cardinals)) {
		next := s.opponent.Pos.Add(world.Cardinals[i])
		if s.grid.PassableAt(next) && next != s.player.Pos {
			s.opponent.SetPosition(next)
			return true
		}
	}
	return false
}
