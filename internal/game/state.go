// Package game provides the exploration session and the interactive loop.
package game

// State represents the current view mode.
type State int

const (
	// StateExplore shows only what the party sees and remembers.
	StateExplore State = iota
	// StateMap reveals the whole dungeon.
	StateMap
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateMap:
		return "map"
	default:
		return "unknown"
	}
}

// Toggle switches between exploring and the full map.
func (s State) Toggle() State {
	if s == StateMap {
		return StateExplore
	}
	return StateMap
}
