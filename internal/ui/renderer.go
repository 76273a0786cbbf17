package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonsight/internal/entity"
	"github.com/samdwyer/dungeonsight/internal/world"
)

// View is everything the renderer needs to draw one frame.
type View struct {
	Dungeon  *world.Grid
	Party    *entity.Party
	Visible  world.VisibleSet
	Explored world.VisibleSet

	// RevealAll draws every tile as if it were visible.
	RevealAll bool
	Status    string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the dungeon, the party and the status line.
// Tiles never seen stay blank, remembered tiles are dimmed.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	for y := 0; y < v.Dungeon.Height; y++ {
		for x := 0; x < v.Dungeon.Width; x++ {
			p := world.Point{X: x, Y: y}
			tile := v.Dungeon.At(p)
			switch {
			case v.RevealAll || v.Visible.Contains(p):
				r.screen.SetContent(x, y, tile.Rune(), r.getTileStyle(tile))
			case v.Explored.Contains(p):
				r.screen.SetContent(x, y, tile.Rune(), rememberedStyle)
			}
		}
	}

	// Draw party on top
	if v.Party != nil {
		partyStyle := tcell.StyleDefault.
			Foreground(tcell.ColorYellow).
			Bold(true)
		r.screen.SetContent(v.Party.Pos.X, v.Party.Pos.Y, v.Party.Symbol, partyStyle)
	}

	if v.Status != "" {
		r.RenderMessage(v.Status, v.Dungeon.Height+1)
	}

	r.screen.Show()
}

var rememberedStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray).Dim(true)

// getTileStyle returns the appropriate style for a tile type.
func (r *Renderer) getTileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage displays a message at row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
