package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonsight/internal/entity"
	"github.com/samdwyer/dungeonsight/internal/world"
)

func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	s, err := Wrap(sim)
	if err != nil {
		t.Fatalf("Wrap failed: %v", err)
	}
	sim.SetSize(40, 20)
	t.Cleanup(s.Close)
	return s, sim
}

func cell(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func TestRenderFogOfWar(t *testing.T) {
	screen, sim := newSimScreen(t)
	g, err := world.ParseGrid(
		"#######",
		"#.....#",
		"#.###.#",
		"#.....#",
		"#######",
	)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}

	party := entity.NewParty(world.Point{X: 3, Y: 1})
	visible := world.VisibleSet{}
	visible.Add(world.Point{X: 3, Y: 1})
	visible.Add(world.Point{X: 4, Y: 1})
	explored := world.VisibleSet{}
	explored.Merge(visible)
	explored.Add(world.Point{X: 0, Y: 0})

	NewRenderer(screen).Render(View{
		Dungeon:  g,
		Party:    party,
		Visible:  visible,
		Explored: explored,
		Status:   "status",
	})

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"party", 3, 1, '&'},
		{"visible floor", 4, 1, '.'},
		{"remembered wall", 0, 0, '#'},
		{"status", 0, g.Height + 1, 's'},
	}
	for _, tt := range tests {
		if got := cell(sim, tt.x, tt.y); got != tt.want {
			t.Errorf("%s at (%d,%d) = %q, want %q", tt.name, tt.x, tt.y, got, tt.want)
		}
	}

	// Never-seen tiles stay blank.
	if got := cell(sim, 1, 3); got == '.' || got == '#' {
		t.Errorf("unseen tile drawn as %q", got)
	}
}

func TestRenderRevealAll(t *testing.T) {
	screen, sim := newSimScreen(t)
	g, _ := world.ParseGrid(
		"#####",
		"#...#",
		"#####",
	)

	NewRenderer(screen).Render(View{
		Dungeon:   g,
		Visible:   world.VisibleSet{},
		Explored:  world.VisibleSet{},
		RevealAll: true,
	})

	for y, row := range g.Rows() {
		for x, tile := range row {
			if got := cell(sim, x, y); got != tile.Rune() {
				t.Errorf("(%d,%d) = %q, want %q", x, y, got, tile.Rune())
			}
		}
	}
}
