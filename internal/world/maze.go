package world

// carveMaze carves a perfect maze of one-tile passages using a randomized
// backtracker. Maze cells sit on odd coordinates; the tile between two
// adjacent cells is opened when the walk moves between them.
//
// The walk keeps its own stack of cell indices instead of recursing, so
// large grids cannot exhaust the goroutine stack.
func carveMaze(b *Builder, rnd Random) {
	width, height := b.Width(), b.Height()

	start := Point{X: width / 2, Y: height / 2}
	if start.X%2 == 0 {
		start.X--
	}
	if start.Y%2 == 0 {
		start.Y--
	}

	visited := make([]bool, width*height)
	index := func(p Point) int { return p.Y*width + p.X }
	point := func(i int) Point { return Point{X: i % width, Y: i / width} }
	isCell := func(p Point) bool {
		return p.X > 0 && p.X < width-1 && p.Y > 0 && p.Y < height-1
	}

	visited[index(start)] = true
	b.carve(start.X, start.Y)
	stack := []int{index(start)}

	dirs := [4]Point{{0, -2}, {2, 0}, {0, 2}, {-2, 0}}
	for len(stack) > 0 {
		cur := point(stack[len(stack)-1])

		order := dirs
		shuffle(rnd, order[:])

		advanced := false
		for _, d := range order {
			next := cur.Add(d.X, d.Y)
			if !isCell(next) || visited[index(next)] {
				continue
			}
			visited[index(next)] = true
			b.carve(cur.X+d.X/2, cur.Y+d.Y/2)
			b.carve(next.X, next.Y)
			stack = append(stack, index(next))
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}
}

// shuffle permutes points in place (Fisher-Yates).
func shuffle(rnd Random, points []Point) {
	for i := len(points) - 1; i > 0; i-- {
		j := randomInRange(rnd, 0, i)
		points[i], points[j] = points[j], points[i]
	}
}
