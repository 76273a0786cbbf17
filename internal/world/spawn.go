package world

import (
	"errors"
	"fmt"
)

// ErrNoWalkableTile is returned when a grid has no floor tile to spawn on.
// Generated grids always contain floor, so this signals a generator bug.
var ErrNoWalkableTile = errors.New("world: no walkable tile")

// FindSpawn returns the floor tile nearest the grid center, searching
// breadth-first over 4-connected neighbors.
func FindSpawn(grid *Grid) (Point, error) {
	start := grid.Center()
	if !grid.InBounds(start) {
		return Point{}, fmt.Errorf("find spawn in %dx%d grid: %w", grid.Width, grid.Height, ErrNoWalkableTile)
	}

	visited := make([]bool, grid.Width*grid.Height)
	visited[start.Y*grid.Width+start.X] = true
	queue := []Point{start}

	for head := 0; head < len(queue); head++ {
		p := queue[head]
		if grid.At(p) == TileFloor {
			return p, nil
		}
		for _, n := range p.Neighbors() {
			if !grid.InBounds(n) || visited[n.Y*grid.Width+n.X] {
				continue
			}
			visited[n.Y*grid.Width+n.X] = true
			queue = append(queue, n)
		}
	}

	return Point{}, fmt.Errorf("find spawn in %dx%d grid: %w", grid.Width, grid.Height, ErrNoWalkableTile)
}
