// Package config loads dungeonsight settings from YAML files and
// environment variables.
package config

import (
	"fmt"

	"github.com/samdwyer/dungeonsight/internal/world"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DUNGEONSIGHT_"

// Config holds all application configuration.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon
	// generation. A seed of 0 means a random seed will be generated.
	Seed     int64  `yaml:"seed" env:"SEED"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	World     WorldConfig     `yaml:"world"`
	FOV       FOVConfig       `yaml:"fov"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// WorldConfig controls dungeon size and layout.
type WorldConfig struct {
	Layout            string  `yaml:"layout" env:"LAYOUT"`
	Width             int     `yaml:"width" env:"WIDTH"`
	Height            int     `yaml:"height" env:"HEIGHT"`
	RoomCount         int     `yaml:"room_count" env:"ROOM_COUNT"`
	MinRoomSize       int     `yaml:"min_room_size" env:"MIN_ROOM_SIZE"`
	MaxRoomSize       int     `yaml:"max_room_size" env:"MAX_ROOM_SIZE"`
	MinCorridorWidth  int     `yaml:"min_corridor_width" env:"MIN_CORRIDOR_WIDTH"`
	MaxCorridorWidth  int     `yaml:"max_corridor_width" env:"MAX_CORRIDOR_WIDTH"`
	BranchProbability float64 `yaml:"branch_probability" env:"BRANCH_PROBABILITY"`
	CloseLoop         bool    `yaml:"close_loop" env:"CLOSE_LOOP"`
}

// FOVConfig controls visibility queries.
type FOVConfig struct {
	Radius int `yaml:"radius" env:"FOV_RADIUS"`
}

// TelemetryConfig controls trace export.
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled" env:"TELEMETRY"`
	Endpoint string `yaml:"endpoint" env:"TELEMETRY_ENDPOINT"`
}

// Default returns the built-in configuration.
func Default() Config {
	p := world.DefaultParams()
	return Config{
		LogLevel: "info",
		World: WorldConfig{
			Layout:            string(p.Layout),
			Width:             world.DefaultWidth,
			Height:            world.DefaultHeight,
			RoomCount:         p.RoomCount,
			MinRoomSize:       p.MinRoomSize,
			MaxRoomSize:       p.MaxRoomSize,
			MinCorridorWidth:  p.MinCorridorWidth,
			MaxCorridorWidth:  p.MaxCorridorWidth,
			BranchProbability: p.BranchProbability,
			CloseLoop:         p.CloseLoop,
		},
		FOV: FOVConfig{
			Radius: world.DefaultFOVRadius,
		},
	}
}

// Validate checks values that cannot be repaired by clamping.
func (c Config) Validate() error {
	if _, err := world.ParseLayout(c.World.Layout); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.World.BranchProbability < 0 || c.World.BranchProbability > 1 {
		return fmt.Errorf("config: branch_probability %v outside [0, 1]", c.World.BranchProbability)
	}
	if c.FOV.Radius < 0 {
		return fmt.Errorf("config: fov radius %d is negative", c.FOV.Radius)
	}
	return nil
}

// Params converts the world section into generator parameters. Zero
// sizes keep the generator defaults.
func (c Config) Params() world.Params {
	p := world.DefaultParams()
	if layout, err := world.ParseLayout(c.World.Layout); err == nil {
		p.Layout = layout
	}
	if c.World.RoomCount > 0 {
		p.RoomCount = c.World.RoomCount
	}
	if c.World.MinRoomSize > 0 {
		p.MinRoomSize = c.World.MinRoomSize
		p.MinRoomHeight = max(c.World.MinRoomSize-2, 1)
		p.BranchRoomSize = world.Range{Min: p.MinRoomHeight, Max: c.World.MinRoomSize + 4}
	}
	if c.World.MaxRoomSize > 0 {
		p.MaxRoomSize = c.World.MaxRoomSize
	}
	if c.World.MinCorridorWidth > 0 {
		p.MinCorridorWidth = c.World.MinCorridorWidth
	}
	if c.World.MaxCorridorWidth > 0 {
		p.MaxCorridorWidth = c.World.MaxCorridorWidth
	}
	p.BranchProbability = c.World.BranchProbability
	p.CloseLoop = c.World.CloseLoop
	return p
}
