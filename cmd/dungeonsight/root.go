package main

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeonsight/internal/config"
	"github.com/samdwyer/dungeonsight/internal/logging"
	"github.com/samdwyer/dungeonsight/internal/telemetry"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string

	// Set up by the root command before any subcommand runs.
	cfg      config.Config
	logger   *log.Logger
	shutdown func(context.Context) error
)

var rootCmd = &cobra.Command{
	Use:   "dungeonsight",
	Short: "Procedural dungeons with line-of-sight visibility",
	Long: `dungeonsight carves dungeons out of solid rock, places an explorer on
the floor nearest the center and computes what it can see.

Available commands:
  generate - Print dungeons as ASCII
  fov      - Print the tiles visible from a point
  explore  - Walk a dungeon in the terminal

Examples:
  dungeonsight generate --seed 42
  dungeonsight generate --layout maze --width 41 --height 21 --count 4
  dungeonsight fov --seed 42 --radius 6
  dungeonsight explore --seed 7`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config seed, or random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(fovCmd)
	rootCmd.AddCommand(exploreCmd)
}

// setup loads configuration, builds the logger and starts telemetry.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger, err = logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	if dotenvErr != nil {
		logger.Debug(".env file not loaded", "error", dotenvErr)
	}

	shutdown, err = telemetry.Setup(cmd.Context(), telemetry.Options{
		Enabled:  cfg.Telemetry.Enabled,
		Endpoint: cfg.Telemetry.Endpoint,
	})
	if err != nil {
		// Continue without telemetry; generation still works.
		logger.Warn("telemetry setup failed, running without traces", "error", err)
		shutdown = nil
	}
	return nil
}

// teardown flushes pending spans.
func teardown(cmd *cobra.Command, args []string) error {
	if shutdown == nil {
		return nil
	}
	if err := shutdown(context.WithoutCancel(cmd.Context())); err != nil {
		logger.Error("error shutting down telemetry", "error", err)
	}
	return nil
}
