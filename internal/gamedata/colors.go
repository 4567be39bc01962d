package gamedata

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Palette holds the hex colors used to draw the world.
type Palette struct {
	Open       string `yaml:"open"`
	Water      string `yaml:"water"`
	Wall       string `yaml:"wall"`
	Player     string `yaml:"player"`
	Opponent   string `yaml:"opponent"`
	Item       string `yaml:"item"`
	HPPlayer   string `yaml:"hp_player"`
	HPOpponent string `yaml:"hp_opponent"`
	Text       string `yaml:"text"`
	Hint       string `yaml:"hint"`
}

// ParseHexColor converts "#RRGGBB" (the # is optional) to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %q", hex)
	}
	c := tcell.GetColor("#" + hex)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color: %q", hex)
	}
	return c, nil
}

// Color returns the parsed color, falling back to white.
func Color(hex string) tcell.Color {
	c, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite
	}
	return c
}

// Validate checks that every palette entry parses.
func (p Palette) Validate() error {
	entries := map[string]string{
		"open":        p.Open,
		"water":       p.Water,
		"wall":        p.Wall,
		"player":      p.Player,
		"opponent":    p.Opponent,
		"item":        p.Item,
		"hp_player":   p.HPPlayer,
		"hp_opponent": p.HPOpponent,
		"text":        p.Text,
		"hint":        p.Hint,
	}
	var bad []string
	for name, hex := range entries {
		if _, err := ParseHexColor(hex); err != nil {
			bad = append(bad, name)
		}
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return fmt.Errorf("palette entries with invalid colors: %s", strings.Join(bad, ", "))
	}
	return nil
}
