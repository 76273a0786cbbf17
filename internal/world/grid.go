package world

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Default dungeon dimensions. Both are raised to the minimum grid size.
	DefaultWidth  = 21
	DefaultHeight = 21

	// MinRoomSize is the smallest main room dimension. Grids are never
	// smaller than three rooms across.
	MinRoomSize = 8
	// MaxRoomSize is the largest room dimension.
	MaxRoomSize = 14

	// Corridor width bounds.
	MinCorridorWidth = 4
	MaxCorridorWidth = 6

	minGridSize = 3 * MinRoomSize
)

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Add returns a new point offset by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Neighbors returns the four cardinal neighbors in N, E, S, W order.
func (p Point) Neighbors() [4]Point {
	return [4]Point{
		{p.X, p.Y - 1},
		{p.X + 1, p.Y},
		{p.X, p.Y + 1},
		{p.X - 1, p.Y},
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is a width and height in tiles.
type Size struct {
	Width, Height int
}

// Grid is a fixed-size, row-major buffer of tiles.
//
// A Grid is written only while a Builder owns it. Grids returned from
// generation are read-only and safe to query from multiple goroutines.
type Grid struct {
	Width  int
	Height int
	tiles  []Tile
}

// NewGrid creates a grid filled with walls. Dimensions below the minimum
// grid size are silently raised to it.
func NewGrid(width, height int) *Grid {
	width = max(width, minGridSize)
	height = max(height, minGridSize)
	return newGrid(width, height)
}

func newGrid(width, height int) *Grid {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = TileWall
	}
	return &Grid{
		Width:  width,
		Height: height,
		tiles:  tiles,
	}
}

// ParseGrid builds a grid from rows of '#' (wall) and '.' (floor).
// Unlike NewGrid it does not enforce a minimum size.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("world: empty grid")
	}

	width := len([]rune(rows[0]))
	g := newGrid(width, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("world: row %d has width %d, want %d", y, len(runes), width)
		}
		for x, r := range runes {
			tile, ok := tileFromRune(r)
			if !ok {
				return nil, fmt.Errorf("world: unknown tile %q at (%d,%d)", r, x, y)
			}
			g.tiles[y*width+x] = tile
		}
	}
	return g, nil
}

// InBounds reports whether p indexes a tile of the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the tile at p. Out-of-range points read as walls.
func (g *Grid) At(p Point) Tile {
	if !g.InBounds(p) {
		return TileWall
	}
	return g.tiles[p.Y*g.Width+p.X]
}

// GetTile returns the tile at the given position.
func (g *Grid) GetTile(x, y int) Tile {
	return g.At(Point{X: x, Y: y})
}

// IsPassable returns true if the given position can be walked on.
func (g *Grid) IsPassable(x, y int) bool {
	return g.GetTile(x, y).IsPassable()
}

// Center returns the grid's integer center.
func (g *Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// FloorCount returns the number of floor tiles.
func (g *Grid) FloorCount() int {
	n := 0
	for _, t := range g.tiles {
		if t == TileFloor {
			n++
		}
	}
	return n
}

// Rows returns a copy of the grid as a slice of rows, indexed [y][x].
func (g *Grid) Rows() [][]Tile {
	rows := make([][]Tile, g.Height)
	for y := range rows {
		rows[y] = make([]Tile, g.Width)
		copy(rows[y], g.tiles[y*g.Width:(y+1)*g.Width])
	}
	return rows
}

// Equal reports whether both grids have the same size and tiles.
func (g *Grid) Equal(other *Grid) bool {
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

// String renders the grid with one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			sb.WriteRune(g.tiles[y*g.Width+x].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// interior reports whether (x, y) lies inside the protected border ring.
func (g *Grid) interior(x, y int) bool {
	return x > 0 && x < g.Width-1 && y > 0 && y < g.Height-1
}

func (g *Grid) set(x, y int, t Tile) {
	g.tiles[y*g.Width+x] = t
}
