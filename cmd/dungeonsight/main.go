// dungeonsight generates procedural dungeons and explores them with a
// field of view.
//
// Usage:
//
//	dungeonsight generate    - Print one or more dungeons as ASCII
//	dungeonsight fov         - Print what is visible from a tile
//	dungeonsight explore     - Walk a dungeon in the terminal
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.dungeonsight/config.yaml)
//	--seed <value>      - RNG seed for reproducible dungeons
//	--log-level <level> - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
)

// dotenvErr is reported once a logger exists.
var dotenvErr error

func main() {
	// Load .env file for local development.
	// Missing is fine; env vars might be set directly.
	dotenvErr = godotenv.Load()

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_DUNGEONSIGHT_API_KEY")
	if apiKey == "" {
		return
	}

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	// Construct the headers here; the .env file may hold an unexpanded
	// variable reference.
	dataset := os.Getenv("HONEYCOMB_DUNGEONSIGHT_DATASET")
	if dataset == "" {
		dataset = "dungeonsight" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
