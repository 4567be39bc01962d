package game

import "github.com/samdwyer/tinyworld/internal/world"

// Action is an abstract input the session understands.
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionInteract
	ActionShowInventory
	ActionQuit
	ActionAttack
	ActionFlee
)

// String returns the action name used in logs.
func (a Action) String() string {
	switch a {
	case ActionMoveUp:
		return "move_up"
	case ActionMoveDown:
		return "move_down"
	case ActionMoveLeft:
		return "move_left"
	case ActionMoveRight:
		return "move_right"
	case ActionInteract:
		return "interact"
	case ActionShowInventory:
		return "inventory"
	case ActionQuit:
		return "quit"
	case ActionAttack:
		return "attack"
	case ActionFlee:
		return "flee"
	default:
		return "none"
	}
}

// Direction returns the step for a move action.
func (a Action) Direction() (world.Direction, bool) {
	switch a {
	case ActionMoveUp:
		return world.Up, true
	case ActionMoveDown:
		return world.Down, true
	case ActionMoveLeft:
		return world.Left, true
	case ActionMoveRight:
		return world.Right, true
	default:
		return world.Direction{}, false
	}
}
