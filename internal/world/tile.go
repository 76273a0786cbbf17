// Package world provides dungeon generation, spawn placement and field of view.
package world

// Tile represents a single map tile.
//
// The numeric values are part of the in-memory contract with callers:
// 0 is floor and 1 is wall.
type Tile uint8

const (
	// TileFloor represents a passable floor tile.
	TileFloor Tile = 0
	// TileWall represents an impassable wall tile.
	TileWall Tile = 1
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	switch t {
	case TileFloor:
		return '.'
	default:
		return '#'
	}
}

// tileFromRune is the inverse of Rune.
func tileFromRune(r rune) (Tile, bool) {
	switch r {
	case '.':
		return TileFloor, true
	case '#':
		return TileWall, true
	default:
		return TileWall, false
	}
}
