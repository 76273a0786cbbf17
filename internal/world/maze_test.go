package world

import (
	"context"
	"testing"
)

// reachable counts floor tiles 4-connected to start.
// floodFill returns every floor tile 4-connected to start.
func floodFill(g *Grid, start Point) map[Point]bool {
	seen := map[Point]bool{start: true}
	queue := []Point{start}
	for head := 0; head < len(queue); head++ {
		for _, n := range queue[head].Neighbors() {
			if seen[n] || g.At(n) != TileFloor {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return seen
}

func reachable(g *Grid, start Point) int {
	return len(floodFill(g, start))
}

func TestMazeLayout(t *testing.T) {
	params := DefaultParams()
	params.Layout = LayoutMaze

	for seed := int64(1); seed <= 10; seed++ {
		res := newTestGenerator(seed, WithParams(params)).Generate(context.Background(), 31, 25)
		g := res.Grid

		assertWallBorder(t, g)
		if len(res.Rooms) != 0 {
			t.Errorf("seed %d: maze reported %d rooms", seed, len(res.Rooms))
		}

		for y := 1; y < g.Height-1; y += 2 {
			for x := 1; x < g.Width-1; x += 2 {
				if g.GetTile(x, y) != TileFloor {
					t.Fatalf("seed %d: maze cell (%d,%d) not carved", seed, x, y)
				}
			}
		}
		// Even-even positions are pillars and never carved.
		for y := 2; y < g.Height-1; y += 2 {
			for x := 2; x < g.Width-1; x += 2 {
				if g.GetTile(x, y) != TileWall {
					t.Fatalf("seed %d: pillar (%d,%d) carved", seed, x, y)
				}
			}
		}

		spawn, err := FindSpawn(g)
		if err != nil {
			t.Fatalf("seed %d: FindSpawn: %v", seed, err)
		}
		if got, want := reachable(g, spawn), g.FloorCount(); got != want {
			t.Errorf("seed %d: %d of %d floor tiles reachable", seed, got, want)
		}
	}
}

func TestMazeIsPerfect(t *testing.T) {
	params := DefaultParams()
	params.Layout = LayoutMaze
	g := newTestGenerator(42, WithParams(params)).Generate(context.Background(), 41, 41).Grid

	// A spanning tree over the cells: one passage fewer than cells.
	cells := 0
	for y := 1; y < g.Height-1; y += 2 {
		for x := 1; x < g.Width-1; x += 2 {
			cells++
		}
	}
	passages := g.FloorCount() - cells
	if passages != cells-1 {
		t.Errorf("expected %d passages for %d cells, got %d", cells-1, cells, passages)
	}
}

func TestLargeMazeDoesNotRecurse(t *testing.T) {
	if testing.Short() {
		t.Skip("large maze")
	}
	params := DefaultParams()
	params.Layout = LayoutMaze
	g := newTestGenerator(1, WithParams(params)).Generate(context.Background(), 501, 501).Grid

	assertWallBorder(t, g)
	if g.GetTile(499, 499) != TileFloor || g.GetTile(1, 1) != TileFloor {
		t.Error("maze did not reach the corners")
	}
}
