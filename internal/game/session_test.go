package game

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/dungeonsight/internal/world"
)

// loopGrid is a ring corridor around a solid block. Its center (3,2) is
// wall, so the party spawns one step north at (3,1).
var loopGrid = []string{
	"#######",
	"#.....#",
	"#.###.#",
	"#.....#",
	"#######",
}

func newTestSession(t *testing.T, radius int, rows ...string) *Session {
	t.Helper()
	g, err := world.ParseGrid(rows...)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	s, err := NewSession(context.Background(), world.Result{Grid: g}, radius, nil)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

func TestNewSessionPlacesPartyOnSpawn(t *testing.T) {
	s := newTestSession(t, world.DefaultFOVRadius, loopGrid...)

	if got, want := s.Party().Pos, (world.Point{X: 3, Y: 1}); got != want {
		t.Errorf("party at %v, want %v", got, want)
	}
	if !s.Dungeon().IsPassable(s.Party().Pos.X, s.Party().Pos.Y) {
		t.Error("party spawned on an impassable tile")
	}
	if !s.Visible().Contains(s.Party().Pos) {
		t.Error("party cannot see its own tile")
	}
	if s.Explored().Len() != s.Visible().Len() {
		t.Errorf("explored %d tiles before moving, want %d", s.Explored().Len(), s.Visible().Len())
	}
	if s.Moves() != 0 {
		t.Errorf("Moves = %d, want 0", s.Moves())
	}
}

func TestNewSessionNoFloor(t *testing.T) {
	g := world.NewGrid(24, 24)
	_, err := NewSession(context.Background(), world.Result{Grid: g}, world.DefaultFOVRadius, nil)
	if !errors.Is(err, world.ErrNoWalkableTile) {
		t.Fatalf("NewSession error = %v, want ErrNoWalkableTile", err)
	}
}

func TestTryMoveIntoWall(t *testing.T) {
	s := newTestSession(t, world.DefaultFOVRadius, loopGrid...)
	start := s.Party().Pos

	if s.TryMove(context.Background(), 0, -1) {
		t.Error("TryMove into the border wall succeeded")
	}
	if s.TryMove(context.Background(), 0, 1) {
		t.Error("TryMove into the inner block succeeded")
	}
	if s.Party().Pos != start {
		t.Errorf("party moved to %v, want it to stay at %v", s.Party().Pos, start)
	}
	if s.Moves() != 0 {
		t.Errorf("Moves = %d after blocked moves, want 0", s.Moves())
	}
}

func TestTryMoveRevealsAroundCorner(t *testing.T) {
	s := newTestSession(t, world.DefaultFOVRadius, loopGrid...)
	ctx := context.Background()

	hidden := world.Point{X: 3, Y: 3}
	initial := s.Visible()
	if initial.Contains(hidden) {
		t.Fatalf("%v visible through the inner block", hidden)
	}

	moves := [][2]int{{1, 0}, {1, 0}, {0, 1}, {0, 1}}
	for _, m := range moves {
		if !s.TryMove(ctx, m[0], m[1]) {
			t.Fatalf("TryMove(%d, %d) from %v failed", m[0], m[1], s.Party().Pos)
		}
	}

	if got, want := s.Party().Pos, (world.Point{X: 5, Y: 3}); got != want {
		t.Errorf("party at %v, want %v", got, want)
	}
	if s.Moves() != len(moves) {
		t.Errorf("Moves = %d, want %d", s.Moves(), len(moves))
	}
	if !s.Visible().Contains(hidden) {
		t.Errorf("%v not visible from %v", hidden, s.Party().Pos)
	}
	for _, p := range initial.Points() {
		if !s.Explored().Contains(p) {
			t.Errorf("explored set forgot %v", p)
		}
	}
	if s.Explored().Len() <= initial.Len() {
		t.Errorf("explored %d tiles, want more than %d", s.Explored().Len(), initial.Len())
	}
}

func TestSessionRadiusZero(t *testing.T) {
	s := newTestSession(t, 0, loopGrid...)
	if s.Visible().Len() != 1 {
		t.Errorf("visible %d tiles with radius 0, want 1", s.Visible().Len())
	}
}

func TestSessionOnGeneratedDungeon(t *testing.T) {
	ctx := context.Background()
	gen := world.NewGenerator(world.NewRandom(7))
	res := gen.Generate(ctx, 60, 40)

	s, err := NewSession(ctx, res, world.DefaultFOVRadius, nil)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if len(s.Rooms()) == 0 {
		t.Error("session has no rooms for a rooms layout")
	}
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		s.TryMove(ctx, d[0], d[1])
		if !s.Dungeon().IsPassable(s.Party().Pos.X, s.Party().Pos.Y) {
			t.Fatalf("party walked onto a wall at %v", s.Party().Pos)
		}
	}
}
