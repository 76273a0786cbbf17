// Package entity provides the explorer that moves through a dungeon.
package entity

import "github.com/samdwyer/dungeonsight/internal/world"

// Party represents the player's party of adventurers, displayed as a
// single symbol while exploring.
type Party struct {
	Pos    world.Point
	Symbol rune
}

// NewParty creates a new party at the given position.
func NewParty(pos world.Point) *Party {
	return &Party{
		Pos:    pos,
		Symbol: '&',
	}
}

// Move updates the party position by the given delta.
func (p *Party) Move(dx, dy int) {
	p.Pos = p.Pos.Add(dx, dy)
}

// Position returns the current x, y coordinates.
func (p *Party) Position() (int, int) {
	return p.Pos.X, p.Pos.Y
}
