package game

import "github.com/samdwyer/dungeonsight/internal/world"

// Config holds game configuration options.
type Config struct {
	Width, Height int
	FOVRadius     int
	Params        world.Params

	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64
}
