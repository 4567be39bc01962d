// Package world provides the tile grid the game is played on.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileOpen represents walkable grass.
	TileOpen Tile = '.'
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileWater represents impassable water.
	TileWater Tile = '~'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileOpen
}

// IsValid reports whether t is one of the known tile kinds.
func (t Tile) IsValid() bool {
	switch t {
	case TileOpen, TileWall, TileWater:
		return true
	default:
		return false
	}
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileOpen:
		return "open"
	case TileWall:
		return "wall"
	case TileWater:
		return "water"
	default:
		return "unknown"
	}
}
