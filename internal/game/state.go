// Package game holds the session state and the rules that mutate it.
package game

// Mode represents the current session mode.
type Mode int

const (
	// ModeExploring is the default mode where the player walks the grid.
	ModeExploring Mode = iota
	// ModeCombat is the duel with the opponent.
	ModeCombat
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeExploring:
		return "explore"
	case ModeCombat:
		return "combat"
	default:
		return "unknown"
	}
}
