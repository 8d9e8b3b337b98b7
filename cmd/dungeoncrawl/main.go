// Package main is the entry point for DungeonCrawl.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeoncrawl/internal/game"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if errors.Is(err, telemetry.ErrNoEndpoint) {
		log.Printf("Note: telemetry disabled: %v", err)
	} else if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("World will be built without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// The preview owns the terminal, so structured logs only go to stderr
	// when it is off.
	var opts []game.Option
	if !cfg.Preview {
		opts = append(opts, game.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))))
	}

	w, err := game.NewGameWorld(cfg, game.Textures{Ground: cfg.GroundTexture, Wall: cfg.WallTexture}, opts...)
	if err != nil {
		log.Fatalf("Failed to create world: %v", err)
	}
	if err := w.Init(ctx); err != nil {
		log.Fatalf("Failed to build world: %v", err)
	}

	if !cfg.Preview {
		length, width := w.WorldSize()
		fmt.Printf("world %dx%d seed %d: %d vertices, %d warnings\n",
			length, width, w.Seed(), w.VertexCount(), len(w.Warnings()))
		return
	}

	p, err := game.NewPreview(w)
	if err != nil {
		log.Fatalf("Failed to open preview: %v", err)
	}
	if err := p.Run(ctx); err != nil {
		log.Fatalf("Preview error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// Variables already set in the environment win.
func setupOTelEnv() {
	if endpoint := os.Getenv("DUNGEONCRAWL_OTLP_ENDPOINT"); endpoint != "" && os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", endpoint)
	}

	// The .env file may have an unexpanded variable reference that doesn't
	// work, so we construct the header properly here
	apiKey := os.Getenv("DUNGEONCRAWL_OTLP_API_KEY")
	dataset := os.Getenv("DUNGEONCRAWL_OTLP_DATASET")
	if dataset == "" {
		dataset = "dungeoncrawl" // default dataset name
	}
	if apiKey != "" && os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
