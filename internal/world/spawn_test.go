package world

import (
	"errors"
	"testing"
)

func TestFindSpawnCenterFloor(t *testing.T) {
	g, _ := ParseGrid(
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	)
	p, err := FindSpawn(g)
	if err != nil {
		t.Fatalf("FindSpawn failed: %v", err)
	}
	if p != (Point{X: 2, Y: 2}) {
		t.Errorf("FindSpawn = %v, want center (2,2)", p)
	}
}

func TestFindSpawnNearest(t *testing.T) {
	g, _ := ParseGrid(
		"#########",
		"#.#######",
		"#########",
		"#########",
		"######.##",
		"#########",
		"#########",
		"#########",
		"#########",
	)
	// Center is (4,4); (6,4) is two steps away, (1,1) six.
	p, err := FindSpawn(g)
	if err != nil {
		t.Fatalf("FindSpawn failed: %v", err)
	}
	if p != (Point{X: 6, Y: 4}) {
		t.Errorf("FindSpawn = %v, want (6,4)", p)
	}
}

func TestFindSpawnNoFloor(t *testing.T) {
	tests := []struct {
		name string
		grid *Grid
	}{
		{"all walls", NewGrid(30, 30)},
		{"single wall", mustParse(t, "#")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FindSpawn(tc.grid)
			if !errors.Is(err, ErrNoWalkableTile) {
				t.Errorf("expected ErrNoWalkableTile, got %v", err)
			}
		})
	}
}

func mustParse(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := ParseGrid(rows...)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	return g
}
