package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tinyworld/internal/game"
	"github.com/samdwyer/tinyworld/internal/gamedata"
	"github.com/samdwyer/tinyworld/internal/world"
)

const (
	tileWidth   = 2 // Columns per tile, so the map looks square
	hpBarWidth  = 20
	labelWidth  = 8
	logLinesMax = 2
)

// Canvas is the drawing surface the renderer needs. *Screen implements it.
type Canvas interface {
	Clear()
	Show()
	SetContent(x, y int, r rune, style tcell.Style)
}

// Renderer handles drawing the game to the screen. It only reads the view.
type Renderer struct {
	canvas Canvas
	styles styles
	glyphs glyphs
}

type styles struct {
	open, water, wall         tcell.Style
	player, opponent, item    tcell.Style
	hpPlayer, hpOpponent, hud tcell.Style
	hint                      tcell.Style
}

type glyphs struct {
	player, opponent, item rune
}

// NewRenderer creates a renderer drawing with the world's palette and glyphs.
func NewRenderer(canvas Canvas, w *gamedata.World) *Renderer {
	p := w.Palette
	fg := func(hex string) tcell.Style {
		return tcell.StyleDefault.Foreground(gamedata.Color(hex))
	}
	return &Renderer{
		canvas: canvas,
		styles: styles{
			open:       fg(p.Open),
			water:      fg(p.Water),
			wall:       fg(p.Wall),
			player:     fg(p.Player).Bold(true),
			opponent:   fg(p.Opponent).Bold(true),
			item:       fg(p.Item).Bold(true),
			hpPlayer:   fg(p.HPPlayer),
			hpOpponent: fg(p.HPOpponent),
			hud:        fg(p.Text),
			hint:       fg(p.Hint),
		},
		glyphs: glyphs{
			player:   firstRune(w.Player.Glyph, '@'),
			opponent: firstRune(w.Opponent.Glyph, 'K'),
			item:     firstRune(w.Item.Glyph, '*'),
		},
	}
}

// Render draws the map, entities, and HUD for one frame.
func (r *Renderer) Render(v game.View) {
	r.canvas.Clear()

	grid := v.Grid
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			tile := grid.Tile(x, y)
			r.drawCell(world.Position{X: x, Y: y}, tile.Rune(), r.tileStyle(tile))
		}
	}

	if v.ItemOnGrid {
		r.drawCell(v.ItemPos, r.glyphs.item, r.styles.item)
	}
	r.drawCell(v.Opponent.Pos, r.glyphs.opponent, r.styles.opponent)
	r.drawCell(v.Player.Pos, r.glyphs.player, r.styles.player)

	y := grid.Height() + 1
	for _, line := range r.hudLines(v) {
		r.RenderMessage(line.text, y, line.style)
		y++
	}

	r.canvas.Show()
}

// RenderMessage writes msg on row y starting at column 0.
func (r *Renderer) RenderMessage(msg string, y int, style tcell.Style) {
	x := 0
	for _, ch := range msg {
		r.canvas.SetContent(x, y, ch, style)
		x++
	}
}

func (r *Renderer) drawCell(p world.Position, ch rune, style tcell.Style) {
	r.canvas.SetContent(p.X*tileWidth, p.Y, ch, style)
}

// tileStyle returns the appropriate style for a tile type.
func (r *Renderer) tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return r.styles.wall
	case world.TileWater:
		return r.styles.water
	case world.TileOpen:
		return r.styles.open
	default:
		return tcell.StyleDefault
	}
}

type hudLine struct {
	text  string
	style tcell.Style
}

// hudLines lays out the status panel below the map.
func (r *Renderer) hudLines(v game.View) []hudLine {
	lines := []hudLine{
		{statusLine(v.Player), r.styles.hpPlayer},
		{statusLine(v.Opponent), r.styles.hpOpponent},
		{fmt.Sprintf("%s   Gold: %d", v.InventoryText, v.Gold), r.styles.hud},
		{v.Message, r.styles.hud},
	}
	recent := v.RecentLog
	if len(recent) > logLinesMax {
		recent = recent[len(recent)-logLinesMax:]
	}
	for i := 0; i < logLinesMax; i++ {
		text := ""
		if i < len(recent) {
			text = recent[i]
		}
		lines = append(lines, hudLine{text, r.styles.hint})
	}
	return append(lines, hudLine{ControlsHint(v.Mode), r.styles.hint})
}

// statusLine renders "NAME    [#####-----] hp/max".
func statusLine(c game.CharacterView) string {
	name := []rune(strings.ToUpper(c.Name))
	if len(name) > labelWidth-1 {
		name = name[:labelWidth-1]
	}
	return fmt.Sprintf("%-*s[%s] %d/%d", labelWidth, string(name), HPBar(c.HP, c.MaxHP, hpBarWidth), c.HP, c.MaxHP)
}

// HPBar returns a fixed-width bar filled in proportion to hp/maxHP.
func HPBar(hp, maxHP, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if maxHP > 0 && hp > 0 {
		filled = hp * width / maxHP
		if filled > width {
			filled = width
		}
		if filled == 0 {
			filled = 1
		}
	}
	return strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
}

// ControlsHint returns the key help for the mode.
func ControlsHint(m game.Mode) string {
	if m == game.ModeCombat {
		return "[E/Enter] attack  [R/Backspace/Q] run"
	}
	return "[Arrows/WASD] move  [E] interact  [I] inventory  [Q] quit"
}

func firstRune(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}
