package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeonsight/internal/render"
	"github.com/samdwyer/dungeonsight/internal/world"
)

var (
	flagX      int
	flagY      int
	flagRadius int
)

var fovCmd = &cobra.Command{
	Use:   "fov",
	Short: "Print the tiles visible from a point",
	Long: `Generate a dungeon and print only the tiles visible from a viewpoint.
The viewpoint defaults to the spawn tile and is drawn as '@'.

Examples:
  dungeonsight fov --seed 42
  dungeonsight fov --seed 42 --x 5 --y 9 --radius 4`,
	Args: cobra.NoArgs,
	RunE: runFOV,
}

func init() {
	addGridFlags(fovCmd)
	fovCmd.Flags().IntVar(&flagX, "x", -1, "Viewpoint column (-1 = spawn)")
	fovCmd.Flags().IntVar(&flagY, "y", -1, "Viewpoint row (-1 = spawn)")
	fovCmd.Flags().IntVar(&flagRadius, "radius", -1, "View radius (-1 = config radius)")
}

func runFOV(cmd *cobra.Command, args []string) error {
	params, err := generatorParams()
	if err != nil {
		return err
	}
	width, height := gridSize()
	res := newGenerator(cfg.Seed, params).Generate(cmd.Context(), width, height)

	origin := world.Point{X: flagX, Y: flagY}
	if flagX < 0 || flagY < 0 {
		if origin, err = world.FindSpawn(res.Grid); err != nil {
			return err
		}
	}
	radius := cfg.FOV.Radius
	if flagRadius >= 0 {
		radius = flagRadius
	}

	visible := world.ComputeVisible(res.Grid, origin, radius)
	logger.Info("computed field of view", "origin", origin, "radius", radius, "visible", visible.Len())

	out := cmd.OutOrStdout()
	fmt.Fprint(out, render.Grid(res.Grid, render.Options{
		Color:   flagColor,
		Visible: visible,
		Marker:  &origin,
	}))
	fmt.Fprintf(out, "seed %d, %d tiles visible from %v\n", cfg.Seed, visible.Len(), origin)
	return nil
}
