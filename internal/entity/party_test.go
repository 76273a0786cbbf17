package entity

import (
	"testing"

	"github.com/samdwyer/dungeonsight/internal/world"
)

func TestPartyMove(t *testing.T) {
	p := NewParty(world.Point{X: 5, Y: 5})
	if p.Symbol != '&' {
		t.Errorf("Symbol = %q, want '&'", p.Symbol)
	}

	p.Move(1, 0)
	p.Move(0, -2)

	x, y := p.Position()
	if x != 6 || y != 3 {
		t.Errorf("Position = (%d, %d), want (6, 3)", x, y)
	}
}
