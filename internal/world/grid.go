package world

import (
	"errors"
	"fmt"
)

// Grid represents the game map. It is immutable after construction.
type Grid struct {
	width  int
	height int
	tiles  [][]Tile
}

// ParseGrid builds a grid from text rows, one rune per tile.
// Rows must be non-empty, equally long, and use only known tile glyphs.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, errors.New("grid has no rows")
	}

	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, errors.New("grid has an empty first row")
	}

	tiles := make([][]Tile, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("grid row %d has width %d, want %d", y, len(runes), width)
		}
		tiles[y] = make([]Tile, width)
		for x, r := range runes {
			t := Tile(r)
			if !t.IsValid() {
				return nil, fmt.Errorf("grid row %d column %d: unknown tile %q", y, x, r)
			}
			tiles[y][x] = t
		}
	}

	return &Grid{
		width:  width,
		height: len(rows),
		tiles:  tiles,
	}, nil
}

// MustParseGrid is like ParseGrid but panics on error.
func MustParseGrid(rows []string) *Grid {
	g, err := ParseGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds returns true if (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Passable returns true if the given position can be walked on.
// Out-of-bounds coordinates are never passable.
func (g *Grid) Passable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.tiles[y][x].IsPassable()
}

// PassableAt is Passable for a Position.
func (g *Grid) PassableAt(p Position) bool {
	return g.Passable(p.X, p.Y)
}

// Tile returns the tile at the given position. Out-of-bounds reads as a wall.
func (g *Grid) Tile(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.tiles[y][x]
}
