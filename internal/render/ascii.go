// Package render draws grids as text for the command line.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/samdwyer/dungeonsight/internal/world"
)

// Options controls ASCII rendering.
type Options struct {
	// Color styles tiles with ANSI colors.
	Color bool
	// Visible, when non-nil, limits drawing to these tiles; others render
	// as blank.
	Visible world.VisibleSet
	// Marker, when non-nil, is drawn as MarkerRune on top of the map.
	Marker     *world.Point
	MarkerRune rune
}

var (
	wallStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	floorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// Grid renders g one row per line.
func Grid(g *world.Grid, opts Options) string {
	marker := opts.MarkerRune
	if marker == 0 {
		marker = '@'
	}

	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := world.Point{X: x, Y: y}
			switch {
			case opts.Marker != nil && *opts.Marker == p:
				sb.WriteString(style(opts.Color, markerStyle, marker))
			case opts.Visible != nil && !opts.Visible.Contains(p):
				sb.WriteByte(' ')
			default:
				tile := g.At(p)
				s := floorStyle
				if tile == world.TileWall {
					s = wallStyle
				}
				sb.WriteString(style(opts.Color, s, tile.Rune()))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func style(color bool, s lipgloss.Style, r rune) string {
	if !color {
		return string(r)
	}
	return s.Render(string(r))
}
