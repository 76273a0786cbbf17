package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeonsight/internal/game"
	"github.com/samdwyer/dungeonsight/internal/logging"
	"github.com/samdwyer/dungeonsight/internal/ui"
)

var flagLogFile string

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Walk a dungeon in the terminal",
	Long: `Explore a generated dungeon. Only tiles in sight are drawn; tiles seen
before stay on screen, dimmed.

Controls:
  Arrows     - Move
  M          - Toggle the full map
  N          - New dungeon
  Q/Esc      - Quit

Examples:
  dungeonsight explore
  dungeonsight explore --seed 7 --width 60 --height 30
  dungeonsight explore --log-file explore.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runExplore,
}

func init() {
	addGridFlags(exploreCmd)
	exploreCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while the screen is in use")
}

func runExplore(cmd *cobra.Command, args []string) error {
	params, err := generatorParams()
	if err != nil {
		return err
	}
	width, height := gridSize()

	// The terminal belongs to tcell; logs go to a file or nowhere.
	gameLogger := logging.Discard()
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		if gameLogger, err = logging.New(f, cfg.LogLevel); err != nil {
			return err
		}
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	g := game.New(game.Config{
		Width:     width,
		Height:    height,
		FOVRadius: cfg.FOV.Radius,
		Params:    params,
		Seed:      cfg.Seed,
	}, screen, gameLogger)

	if err := g.Run(cmd.Context()); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
