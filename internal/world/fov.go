package world

import (
	"cmp"
	"slices"
)

// DefaultFOVRadius is the sight radius used for exploration.
const DefaultFOVRadius = 8

// VisibleSet is a set of grid points.
type VisibleSet map[Point]struct{}

// Add inserts p into the set.
func (s VisibleSet) Add(p Point) {
	s[p] = struct{}{}
}

// Contains reports whether p is in the set.
func (s VisibleSet) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of points in the set.
func (s VisibleSet) Len() int {
	return len(s)
}

// Merge adds every point of other to s.
func (s VisibleSet) Merge(other VisibleSet) {
	for p := range other {
		s[p] = struct{}{}
	}
}

// Points returns the points in row-major order.
func (s VisibleSet) Points() []Point {
	points := make([]Point, 0, len(s))
	for p := range s {
		points = append(points, p)
	}
	slices.SortFunc(points, func(a, b Point) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return points
}

// ComputeVisible returns every tile visible from origin within a square of
// the given radius. A ray is cast to each in-bounds tile of the square; it
// reveals each cell it crosses and stops at the first wall that is not its
// target. The blocking wall itself is visible.
//
// An out-of-bounds origin sees nothing. A negative radius sees only the
// origin.
func ComputeVisible(grid *Grid, origin Point, radius int) VisibleSet {
	visible := make(VisibleSet)
	if !grid.InBounds(origin) {
		return visible
	}
	visible.Add(origin)

	// Clip the square to the grid so huge radii neither overflow nor scan
	// empty space.
	r := min(radius, max(grid.Width, grid.Height))
	x0, x1 := max(origin.X-r, 0), min(origin.X+r, grid.Width-1)
	y0, y1 := max(origin.Y-r, 0), min(origin.Y+r, grid.Height-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			target := Point{X: x, Y: y}
			for _, p := range Line(origin, target) {
				visible.Add(p)
				if grid.At(p) == TileWall && p != target {
					break
				}
			}
		}
	}
	return visible
}

// Line returns the Bresenham rasterization of the segment from a to b,
// including both endpoints, ordered from a.
func Line(a, b Point) []Point {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	points := make([]Point, 0, max(dx, -dy)+1)
	err := dx + dy
	x, y := a.X, a.Y
	for {
		points = append(points, Point{X: x, Y: y})
		if x == b.X && y == b.Y {
			return points
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
