package world

// Builder owns a grid while it is being carved. Once Grid is called the
// builder is finished and any further carving panics.
//
// All carving skips the outermost ring of tiles, so a finished grid always
// has a solid wall border.
type Builder struct {
	grid     *Grid
	rnd      Random
	minWidth int
	maxWidth int
	done     bool
}

// NewBuilder allocates a wall-filled grid (see NewGrid) to carve into.
// rnd decides corridor orientation.
func NewBuilder(width, height int, rnd Random) *Builder {
	return &Builder{
		grid:     NewGrid(width, height),
		rnd:      rnd,
		minWidth: MinCorridorWidth,
		maxWidth: MaxCorridorWidth,
	}
}

// Width returns the width of the grid being built.
func (b *Builder) Width() int { return b.grid.Width }

// Height returns the height of the grid being built.
func (b *Builder) Height() int { return b.grid.Height }

// Grid finishes the build and hands the grid to the caller.
func (b *Builder) Grid() *Grid {
	b.done = true
	return b.grid
}

func (b *Builder) setCorridorWidths(lo, hi int) {
	b.minWidth, b.maxWidth = lo, hi
}

// CarveRoom carves a size.Width x size.Height rectangle of floor centered
// on center.
func (b *Builder) CarveRoom(center Point, size Size) {
	room := RoomSpec{Center: center, Size: size}
	o := room.Origin()
	b.carveRectangle(o.X, o.Y, size.Width, size.Height)
}

// CarveCorridor carves an L-shaped corridor from start to end. A coin flip
// decides whether the horizontal or the vertical leg comes first. The width
// is clamped to the builder's corridor bounds and to the grid interior.
func (b *Builder) CarveCorridor(start, end Point, width int) {
	horizontalFirst := b.rnd.Float64() > 0.5
	width = clamp(width, b.minWidth, min(b.maxWidth, b.grid.Width-2, b.grid.Height-2))

	if horizontalFirst {
		b.carveHorizontalTunnel(start.X, end.X, start.Y, width)
		b.carveVerticalTunnel(start.Y, end.Y, end.X, width)
	} else {
		b.carveVerticalTunnel(start.Y, end.Y, start.X, width)
		b.carveHorizontalTunnel(start.X, end.X, end.Y, width)
	}
}

// carveRectangle sets all interior tiles within the rectangle to floor.
func (b *Builder) carveRectangle(x, y, width, height int) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			b.carve(col, row)
		}
	}
}

// widthOffsets returns the inclusive offset range that widens a centerline
// to the given width. Even widths put the extra cell on the high side.
func widthOffsets(width int) (int, int) {
	start := -((width - 1) / 2)
	return start, start + width - 1
}

// carveHorizontalTunnel carves a horizontal tunnel centered on row y.
func (b *Builder) carveHorizontalTunnel(x1, x2, y, width int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	lo, hi := widthOffsets(width)
	for off := lo; off <= hi; off++ {
		for x := x1; x <= x2; x++ {
			b.carve(x, y+off)
		}
	}
}

// carveVerticalTunnel carves a vertical tunnel centered on column x.
func (b *Builder) carveVerticalTunnel(y1, y2, x, width int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	lo, hi := widthOffsets(width)
	for off := lo; off <= hi; off++ {
		for y := y1; y <= y2; y++ {
			b.carve(x+off, y)
		}
	}
}

// carve turns one tile to floor unless it is part of the border.
func (b *Builder) carve(x, y int) {
	if b.done {
		panic("world: carving a finished grid")
	}
	if b.grid.interior(x, y) {
		b.grid.set(x, y, TileFloor)
	}
}
