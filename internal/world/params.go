package world

import "fmt"

// Layout selects the carving strategy used by a Generator.
type Layout string

const (
	// LayoutRooms carves a random walk of rooms joined by wide corridors.
	LayoutRooms Layout = "rooms"
	// LayoutMaze carves a one-tile maze with an iterative backtracker.
	LayoutMaze Layout = "maze"
)

// ParseLayout converts a layout name, accepting "" as LayoutRooms.
func ParseLayout(name string) (Layout, error) {
	switch Layout(name) {
	case "", LayoutRooms:
		return LayoutRooms, nil
	case LayoutMaze:
		return LayoutMaze, nil
	default:
		return "", fmt.Errorf("world: unknown layout %q", name)
	}
}

// Range is an inclusive integer range.
type Range struct {
	Min, Max int
}

func (r Range) ordered() Range {
	if r.Max < r.Min {
		r.Min, r.Max = r.Max, r.Min
	}
	return r
}

// Params tunes the room layout.
type Params struct {
	Layout Layout

	// RoomCount is the number of rooms on the main chain.
	RoomCount int

	MinRoomSize   int
	MaxRoomSize   int
	MinRoomHeight int // lower bound for main room heights

	MinCorridorWidth int
	MaxCorridorWidth int

	// MainStep is the magnitude of the major axis step between main rooms;
	// MainJitter bounds the minor axis offset in both directions.
	MainStep   Range
	MainJitter int

	BranchStep     Range
	BranchJitter   int
	BranchRoomSize Range

	// BranchProbability is the chance that a main room grows a leaf room.
	BranchProbability float64

	// CloseLoop joins the last room to the middle room with one extra corridor.
	CloseLoop bool
}

// DefaultParams returns the standard layout parameters.
func DefaultParams() Params {
	return Params{
		Layout:            LayoutRooms,
		RoomCount:         5,
		MinRoomSize:       MinRoomSize,
		MaxRoomSize:       MaxRoomSize,
		MinRoomHeight:     MinRoomSize - 2,
		MinCorridorWidth:  MinCorridorWidth,
		MaxCorridorWidth:  MaxCorridorWidth,
		MainStep:          Range{Min: 14, Max: 22},
		MainJitter:        6,
		BranchStep:        Range{Min: 10, Max: 18},
		BranchJitter:      4,
		BranchRoomSize:    Range{Min: MinRoomSize - 2, Max: MinRoomSize + 4},
		BranchProbability: 0.45,
		CloseLoop:         true,
	}
}

// sanitize repairs out-of-range values so generation always succeeds.
func (p Params) sanitize() Params {
	if p.Layout == "" {
		p.Layout = LayoutRooms
	}
	p.RoomCount = max(p.RoomCount, 1)

	p.MinRoomSize = max(p.MinRoomSize, 1)
	p.MaxRoomSize = max(p.MaxRoomSize, p.MinRoomSize)
	p.MinRoomHeight = clamp(p.MinRoomHeight, 1, p.MaxRoomSize)

	p.MinCorridorWidth = max(p.MinCorridorWidth, 1)
	p.MaxCorridorWidth = max(p.MaxCorridorWidth, p.MinCorridorWidth)

	p.MainStep = p.MainStep.ordered()
	p.BranchStep = p.BranchStep.ordered()
	p.BranchRoomSize = p.BranchRoomSize.ordered()
	p.BranchRoomSize.Min = max(p.BranchRoomSize.Min, 1)
	p.BranchRoomSize.Max = max(p.BranchRoomSize.Max, p.BranchRoomSize.Min)
	p.MainJitter = max(p.MainJitter, 0)
	p.BranchJitter = max(p.BranchJitter, 0)

	if p.BranchProbability < 0 {
		p.BranchProbability = 0
	}
	if p.BranchProbability > 1 {
		p.BranchProbability = 1
	}
	return p
}

// margin keeps walk targets far enough from the border for a full room.
func (p Params) margin() int {
	return p.MaxRoomSize + p.MaxCorridorWidth
}
