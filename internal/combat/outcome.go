package combat

// Outcome is the result of an exchange or encounter.
type Outcome int

const (
	// OutcomeContinue means both sides are still standing.
	OutcomeContinue Outcome = iota
	// OutcomeVictory means the opponent fell.
	OutcomeVictory
	// OutcomeDefeat means the player fell.
	OutcomeDefeat
	// OutcomeFled means the player left the encounter.
	OutcomeFled
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeFled:
		return "fled"
	default:
		return "unknown"
	}
}

// Ends returns true if the outcome closes the encounter.
func (o Outcome) Ends() bool {
	return o == OutcomeVictory || o == OutcomeDefeat || o == OutcomeFled
}
