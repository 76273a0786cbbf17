package world

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonsight/internal/logging"
	"github.com/samdwyer/dungeonsight/internal/telemetry"
)

// Result is a generated dungeon and the rooms that were carved into it.
type Result struct {
	Grid     *Grid
	Rooms    []RoomSpec // main rooms and branches, in carving order
	Branches int
	Loop     bool // a loop-closing corridor was carved
}

// Generator builds dungeons. A Generator is not safe for concurrent use
// because it draws from a single Random; use one per goroutine.
type Generator struct {
	params Params
	rnd    Random
	logger *log.Logger
	tracer trace.Tracer
}

// Option configures a Generator.
type Option func(*Generator)

// WithParams overrides the default layout parameters.
func WithParams(p Params) Option {
	return func(g *Generator) { g.params = p.sanitize() }
}

// WithLogger sets the logger used for generation diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithTracer sets the tracer used for generation spans.
func WithTracer(t trace.Tracer) Option {
	return func(g *Generator) { g.tracer = t }
}

// NewGenerator creates a generator drawing from rnd.
func NewGenerator(rnd Random, opts ...Option) *Generator {
	g := &Generator{
		params: DefaultParams(),
		rnd:    rnd,
		logger: logging.Discard(),
		tracer: telemetry.Tracer("world"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Params returns the generator's effective parameters.
func (g *Generator) Params() Params {
	return g.params
}

// GenerateDungeon builds a dungeon with default parameters.
func GenerateDungeon(ctx context.Context, width, height int, rnd Random) *Grid {
	return NewGenerator(rnd).Generate(ctx, width, height).Grid
}

// Generate creates a dungeon layout. Dimensions below the minimum grid
// size are raised to it. The returned grid always has a wall border and at
// least one floor tile.
func (g *Generator) Generate(ctx context.Context, width, height int) Result {
	_, span := g.tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	b := NewBuilder(width, height, g.rnd)
	b.setCorridorWidths(g.params.MinCorridorWidth, g.params.MaxCorridorWidth)

	var res Result
	switch g.params.Layout {
	case LayoutMaze:
		carveMaze(b, g.rnd)
	default:
		g.carveRooms(b, &res)
	}
	res.Grid = b.Grid()

	span.SetAttributes(
		attribute.String("dungeon.layout", string(g.params.Layout)),
		attribute.Int("dungeon.width", res.Grid.Width),
		attribute.Int("dungeon.height", res.Grid.Height),
		attribute.Int("dungeon.room_count", len(res.Rooms)),
		attribute.Int("dungeon.branch_count", res.Branches),
		attribute.Bool("dungeon.loop", res.Loop),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	g.logger.Debug("dungeon generated",
		"layout", g.params.Layout,
		"width", res.Grid.Width,
		"height", res.Grid.Height,
		"rooms", len(res.Rooms),
		"branches", res.Branches,
		"floor", res.Grid.FloorCount(),
	)
	return res
}

// carveRooms walks from the grid center, carving a room at each stop and a
// corridor to the next. Main steps alternate between the horizontal and
// vertical axis. Some rooms grow a single leaf branch.
func (g *Generator) carveRooms(b *Builder, res *Result) {
	p := g.params
	width, height := b.Width(), b.Height()
	current := Point{X: width / 2, Y: height / 2}

	for i := 0; i < p.RoomCount; i++ {
		size := g.fit(b, Size{
			Width:  randomInRange(g.rnd, p.MinRoomSize, p.MaxRoomSize),
			Height: randomInRange(g.rnd, p.MinRoomHeight, p.MaxRoomSize),
		})
		current = clampRoomCenter(current, size, width, height)
		b.CarveRoom(current, size)
		res.Rooms = append(res.Rooms, RoomSpec{Center: current, Size: size})

		if i == p.RoomCount-1 {
			break
		}

		corridorWidth := randomInRange(g.rnd, p.MinCorridorWidth, p.MaxCorridorWidth)
		next := g.step(current, i%2 == 0, p.MainStep, p.MainJitter, width, height)
		b.CarveCorridor(current, next, corridorWidth)

		if g.rnd.Float64() > 1-p.BranchProbability {
			branch := g.step(current, i%2 != 0, p.BranchStep, p.BranchJitter, width, height)
			branchSize := g.fit(b, Size{
				Width:  randomInRange(g.rnd, p.BranchRoomSize.Min, p.BranchRoomSize.Max),
				Height: randomInRange(g.rnd, p.BranchRoomSize.Min, p.BranchRoomSize.Max),
			})
			branch = clampRoomCenter(branch, branchSize, width, height)
			b.CarveCorridor(current, branch, corridorWidth)
			b.CarveRoom(branch, branchSize)
			res.Rooms = append(res.Rooms, RoomSpec{Center: branch, Size: branchSize})
			res.Branches++
		}

		current = next
	}

	if p.CloseLoop && len(res.Rooms) > 2 {
		last := res.Rooms[len(res.Rooms)-1]
		anchor := res.Rooms[len(res.Rooms)/2]
		b.CarveCorridor(last.Center, anchor.Center,
			randomInRange(g.rnd, p.MinCorridorWidth, p.MaxCorridorWidth))
		res.Loop = true
	}
}

// step offsets from by a signed major step along one axis and a jitter
// along the other, then keeps the result a margin away from the border.
func (g *Generator) step(from Point, horizontal bool, major Range, jitter, width, height int) Point {
	sign := randomSign(g.rnd)
	majorStep := randomInRange(g.rnd, major.Min, major.Max) * sign
	minorStep := randomInRange(g.rnd, -jitter, jitter)

	next := from
	if horizontal {
		next = next.Add(majorStep, minorStep)
	} else {
		next = next.Add(minorStep, majorStep)
	}

	margin := g.params.margin()
	return Point{
		X: clamp(next.X, margin, width-margin),
		Y: clamp(next.Y, margin, height-margin),
	}
}

// fit shrinks a room that would not fit inside the border at all.
func (g *Generator) fit(b *Builder, size Size) Size {
	return Size{
		Width:  min(size.Width, b.Width()-2),
		Height: min(size.Height, b.Height()-2),
	}
}
