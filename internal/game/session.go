package game

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonsight/internal/entity"
	"github.com/samdwyer/dungeonsight/internal/logging"
	"github.com/samdwyer/dungeonsight/internal/telemetry"
	"github.com/samdwyer/dungeonsight/internal/world"
)

// Session tracks a party exploring one dungeon: its position, what it can
// see now and everything it has seen before.
type Session struct {
	dungeon  *world.Grid
	rooms    []world.RoomSpec
	party    *entity.Party
	radius   int
	visible  world.VisibleSet
	explored world.VisibleSet
	moves    int
	logger   *log.Logger
}

// NewSession places a party on the dungeon's spawn tile and computes its
// first field of view.
func NewSession(ctx context.Context, res world.Result, radius int, logger *log.Logger) (*Session, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "dungeon.spawn")
	defer span.End()

	if logger == nil {
		logger = logging.Discard()
	}

	spawn, err := world.FindSpawn(res.Grid)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("place party: %w", err)
	}
	span.SetAttributes(
		attribute.Int("party.start_x", spawn.X),
		attribute.Int("party.start_y", spawn.Y),
	)

	s := &Session{
		dungeon:  res.Grid,
		rooms:    res.Rooms,
		party:    entity.NewParty(spawn),
		radius:   radius,
		explored: make(world.VisibleSet),
		logger:   logger,
	}
	s.updateFOV(ctx)
	return s, nil
}

// Dungeon returns the grid being explored.
func (s *Session) Dungeon() *world.Grid { return s.dungeon }

// Rooms returns the rooms carved into the dungeon, if any.
func (s *Session) Rooms() []world.RoomSpec { return s.rooms }

// Party returns the exploring party.
func (s *Session) Party() *entity.Party { return s.party }

// Visible returns the tiles visible from the party's position.
func (s *Session) Visible() world.VisibleSet { return s.visible }

// Explored returns every tile that has ever been visible.
func (s *Session) Explored() world.VisibleSet { return s.explored }

// Moves returns the number of successful moves.
func (s *Session) Moves() int { return s.moves }

// TryMove attempts to move the party by the given delta. Moves onto
// impassable tiles are ignored. Visibility is recomputed after every
// successful move.
func (s *Session) TryMove(ctx context.Context, dx, dy int) bool {
	next := s.party.Pos.Add(dx, dy)
	if !s.dungeon.IsPassable(next.X, next.Y) {
		return false
	}

	s.party.Move(dx, dy)
	s.moves++
	s.updateFOV(ctx)
	return true
}

func (s *Session) updateFOV(ctx context.Context) {
	_, span := telemetry.Tracer("game").Start(ctx, "fov.compute")
	defer span.End()

	s.visible = world.ComputeVisible(s.dungeon, s.party.Pos, s.radius)
	s.explored.Merge(s.visible)

	span.SetAttributes(
		attribute.Int("fov.radius", s.radius),
		attribute.Int("fov.visible", s.visible.Len()),
		attribute.Int("fov.explored", s.explored.Len()),
	)
	s.logger.Debug("FOV updated", "pos", s.party.Pos, "visible", s.visible.Len())
}
