package world

import "fmt"

// Position is a (column, row) coordinate on the grid.
type Position struct {
	X, Y int
}

// Direction is a unit cardinal step.
type Direction struct {
	DX, DY int
}

// Cardinal steps. Diagonal or zero displacement is never produced.
var (
	Up    = Direction{0, -1}
	Down  = Direction{0, 1}
	Left  = Direction{-1, 0}
	Right = Direction{1, 0}
)

// Cardinals lists the four steps in a fixed order.
var Cardinals = [4]Direction{Up, Down, Left, Right}

// Add returns the position one step in direction d.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Distance returns the Manhattan distance between two positions.
func (p Position) Distance(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// Adjacent returns true if o is exactly one cardinal step away from p.
func (p Position) Adjacent(o Position) bool {
	return p.Distance(o) == 1
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
