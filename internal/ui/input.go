package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tinyworld/internal/game"
)

// KeyAction maps a key press to a session action for the given mode.
// Unmapped keys return game.ActionNone.
func KeyAction(mode game.Mode, key tcell.Key, r rune) game.Action {
	if mode == game.ModeCombat {
		return combatKey(key, r)
	}
	return exploreKey(key, r)
}

func exploreKey(key tcell.Key, r rune) game.Action {
	switch key {
	case tcell.KeyUp:
		return game.ActionMoveUp
	case tcell.KeyDown:
		return game.ActionMoveDown
	case tcell.KeyLeft:
		return game.ActionMoveLeft
	case tcell.KeyRight:
		return game.ActionMoveRight
	case tcell.KeyEscape:
		return game.ActionQuit
	case tcell.KeyRune:
		switch unicode.ToLower(r) {
		case 'w':
			return game.ActionMoveUp
		case 's':
			return game.ActionMoveDown
		case 'a':
			return game.ActionMoveLeft
		case 'd':
			return game.ActionMoveRight
		case 'e':
			return game.ActionInteract
		case 'i':
			return game.ActionShowInventory
		case 'q':
			return game.ActionQuit
		}
	}
	return game.ActionNone
}

func combatKey(key tcell.Key, r rune) game.Action {
	switch key {
	case tcell.KeyEnter:
		return game.ActionAttack
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyEscape:
		return game.ActionFlee
	case tcell.KeyRune:
		switch unicode.ToLower(r) {
		case 'e':
			return game.ActionAttack
		case 'r', 'q':
			return game.ActionFlee
		}
	}
	return game.ActionNone
}
