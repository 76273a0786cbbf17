package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/samdwyer/dungeonsight/internal/render"
	"github.com/samdwyer/dungeonsight/internal/world"
)

var (
	flagWidth  int
	flagHeight int
	flagLayout string
	flagColor  bool
	flagCount  int
	flagSpawn  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print dungeons as ASCII",
	Long: `Generate one or more dungeons and print them, '#' for wall and '.' for floor.

Dungeon N of a batch uses seed+N, so any single dungeon can be
reproduced later with --seed.

Examples:
  dungeonsight generate --seed 42
  dungeonsight generate --width 80 --height 40 --spawn
  dungeonsight generate --layout maze --count 3`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addGridFlags(generateCmd)
	generateCmd.Flags().IntVar(&flagCount, "count", 1, "Number of dungeons to generate")
	generateCmd.Flags().BoolVar(&flagSpawn, "spawn", false, "Mark the spawn tile with '@'")
}

// addGridFlags registers the flags shared by commands that build a dungeon.
func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width (0 = config width)")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height (0 = config height)")
	cmd.Flags().StringVar(&flagLayout, "layout", "", "Layout: rooms or maze (default: config layout)")
	cmd.Flags().BoolVar(&flagColor, "color", term.IsTerminal(int(os.Stdout.Fd())), "Color tiles with ANSI escapes")
}

// gridSize returns the requested size, falling back to the config.
func gridSize() (int, int) {
	width, height := cfg.World.Width, cfg.World.Height
	if flagWidth > 0 {
		width = flagWidth
	}
	if flagHeight > 0 {
		height = flagHeight
	}
	return width, height
}

// generatorParams returns the layout parameters with the --layout override.
func generatorParams() (world.Params, error) {
	params := cfg.Params()
	if flagLayout != "" {
		layout, err := world.ParseLayout(flagLayout)
		if err != nil {
			return params, err
		}
		params.Layout = layout
	}
	return params, nil
}

// newGenerator builds a generator for one seed.
func newGenerator(seed int64, params world.Params) *world.Generator {
	return world.NewGenerator(world.NewRandom(seed),
		world.WithParams(params),
		world.WithLogger(logger),
	)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if flagCount < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", flagCount)
	}
	params, err := generatorParams()
	if err != nil {
		return err
	}
	width, height := gridSize()

	maps := make([]string, flagCount)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range maps {
		seed := cfg.Seed + int64(i)
		g.Go(func() error {
			res := newGenerator(seed, params).Generate(ctx, width, height)

			opts := render.Options{Color: flagColor}
			if flagSpawn {
				spawn, err := world.FindSpawn(res.Grid)
				if err != nil {
					return fmt.Errorf("dungeon %d (seed %d): %w", i, seed, err)
				}
				opts.Marker = &spawn
			}
			maps[i] = render.Grid(res.Grid, opts)

			logger.Debug("generated dungeon", "seed", seed, "rooms", len(res.Rooms), "floor", res.Grid.FloorCount())
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, m := range maps {
		if flagCount > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "seed %d\n", cfg.Seed+int64(i))
		}
		fmt.Fprint(out, m)
	}
	return nil
}
