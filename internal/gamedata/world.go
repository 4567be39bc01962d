package gamedata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/tinyworld/internal/world"
)

// Range is an inclusive integer interval.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Bounds returns the range as a two-element array.
func (r Range) Bounds() [2]int { return [2]int{r.Min, r.Max} }

// PlayerDef defines the player's starting state.
type PlayerDef struct {
	Name      string  `yaml:"name"`
	Glyph     string  `yaml:"glyph"`
	X         int     `yaml:"x"`
	Y         int     `yaml:"y"`
	HP        int     `yaml:"hp"`
	Damage    Range   `yaml:"damage"`
	HitChance float64 `yaml:"hit_chance"`
}

// OpponentDef defines the opponent. Its damage bounds are rolled once.
type OpponentDef struct {
	Name      string  `yaml:"name"`
	Glyph     string  `yaml:"glyph"`
	X         int     `yaml:"x"`
	Y         int     `yaml:"y"`
	HP        int     `yaml:"hp"`
	MinDamage Range   `yaml:"min_damage"` // Bounds for the rolled minimum
	MaxDamage Range   `yaml:"max_damage"` // Bounds for the rolled maximum
	HitChance float64 `yaml:"hit_chance"`
}

// ItemDef defines the single pickup.
type ItemDef struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Bonus int    `yaml:"bonus"` // Attack bonus granted on pickup
}

// World is the structure of world.yaml.
type World struct {
	Map         []string    `yaml:"map"`
	Intro       string      `yaml:"intro"`
	LogCapacity int         `yaml:"log_capacity"`
	VictoryGold int         `yaml:"victory_gold"`
	Player      PlayerDef   `yaml:"player"`
	Opponent    OpponentDef `yaml:"opponent"`
	Item        ItemDef     `yaml:"item"`
	Palette     Palette     `yaml:"palette"`

	grid *world.Grid
}

// LoadWorld loads and validates the embedded world.yaml.
func LoadWorld() (*World, error) {
	w, err := Load[World]("world.yaml")
	if err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world.yaml: %w", err)
	}
	return &w, nil
}

// MustLoadWorld loads the world, panicking on error.
func MustLoadWorld() *World {
	w, err := LoadWorld()
	if err != nil {
		panic(err)
	}
	return w
}

// Grid returns the parsed map. Validate must have succeeded.
func (w *World) Grid() *world.Grid {
	return w.grid
}

// PlayerStart returns the player's starting position.
func (w *World) PlayerStart() world.Position {
	return world.Position{X: w.Player.X, Y: w.Player.Y}
}

// OpponentStart returns the opponent's starting position.
func (w *World) OpponentStart() world.Position {
	return world.Position{X: w.Opponent.X, Y: w.Opponent.Y}
}

// ItemStart returns the item's position.
func (w *World) ItemStart() world.Position {
	return world.Position{X: w.Item.X, Y: w.Item.Y}
}

// Validate parses the map and checks every definition against it.
// All violations are reported together.
func (w *World) Validate() error {
	w.grid = nil
	grid, err := world.ParseGrid(w.Map)
	if err != nil {
		return err
	}

	var errs []string
	check := func(label string, p world.Position) {
		if !grid.PassableAt(p) {
			errs = append(errs, fmt.Sprintf("%s position %s is not passable", label, p))
		}
	}
	check("player", w.PlayerStart())
	check("opponent", w.OpponentStart())
	check("item", w.ItemStart())

	if w.PlayerStart() == w.OpponentStart() {
		errs = append(errs, "player and opponent share a start position")
	}
	if w.ItemStart() == w.OpponentStart() {
		errs = append(errs, "item lies under the opponent")
	}

	if w.Player.HP <= 0 {
		errs = append(errs, fmt.Sprintf("player hp must be > 0, got %d", w.Player.HP))
	}
	if w.Opponent.HP <= 0 {
		errs = append(errs, fmt.Sprintf("opponent hp must be > 0, got %d", w.Opponent.HP))
	}
	errs = appendRange(errs, "player damage", w.Player.Damage)
	errs = appendRange(errs, "opponent min_damage", w.Opponent.MinDamage)
	errs = appendRange(errs, "opponent max_damage", w.Opponent.MaxDamage)
	if w.Opponent.MaxDamage.Min < w.Opponent.MinDamage.Max {
		errs = append(errs, "opponent max_damage.min must be >= min_damage.max")
	}
	errs = appendChance(errs, "player hit_chance", w.Player.HitChance)
	errs = appendChance(errs, "opponent hit_chance", w.Opponent.HitChance)

	if w.Item.Name == "" {
		errs = append(errs, "item name must not be empty")
	}
	if w.Item.Bonus < 0 {
		errs = append(errs, fmt.Sprintf("item bonus must be >= 0, got %d", w.Item.Bonus))
	}
	if w.LogCapacity <= 0 {
		errs = append(errs, fmt.Sprintf("log_capacity must be > 0, got %d", w.LogCapacity))
	}
	if w.VictoryGold < 0 {
		errs = append(errs, fmt.Sprintf("victory_gold must be >= 0, got %d", w.VictoryGold))
	}
	if err := w.Palette.Validate(); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	w.grid = grid
	return nil
}

func appendRange(errs []string, label string, r Range) []string {
	if r.Min < 0 || r.Max < r.Min {
		return append(errs, fmt.Sprintf("%s must satisfy 0 <= min <= max, got %d-%d", label, r.Min, r.Max))
	}
	return errs
}

func appendChance(errs []string, label string, p float64) []string {
	if p < 0 || p > 1 {
		return append(errs, fmt.Sprintf("%s must be in [0,1], got %v", label, p))
	}
	return errs
}
